package logging

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
)

const defaultBufferLimit = 1000

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

func (l logLevel) String() string {
	switch l {
	case levelDebug:
		return "DBG"
	case levelWarn:
		return "WRN"
	case levelError:
		return "ERR"
	default:
		return "INF"
	}
}

type bufferedEntry struct {
	ctx    context.Context
	level  logLevel
	msg    string
	fields []interface{}
}

// EventBuffer stores log entries emitted while the terminal is owned by the
// tour UI. Entries are replayed to a real logger once the UI exits.
type EventBuffer struct {
	mu     sync.Mutex
	limit  int
	events []bufferedEntry
}

// NewEventBuffer creates a buffer with the provided capacity (defaults to 1000).
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{
		limit:  limit,
		events: make([]bufferedEntry, 0, limit),
	}
}

func (b *EventBuffer) add(entry bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == b.limit {
		copy(b.events, b.events[1:])
		b.events[len(b.events)-1] = entry
		return
	}
	b.events = append(b.events, entry)
}

// Len returns the number of buffered entries.
func (b *EventBuffer) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Recent returns up to n of the most recent messages, oldest first, rendered
// as "level msg key=value ...".
func (b *EventBuffer) Recent(n int) []string {
	if b == nil || n <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	start := len(b.events) - n
	if start < 0 {
		start = 0
	}
	lines := make([]string, 0, len(b.events)-start)
	for _, entry := range b.events[start:] {
		var sb strings.Builder
		sb.WriteString(entry.level.String())
		sb.WriteString(" ")
		sb.WriteString(entry.msg)
		for i := 0; i+1 < len(entry.fields); i += 2 {
			fmt.Fprintf(&sb, " %v=%v", entry.fields[i], entry.fields[i+1])
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Flush replays buffered events using the provided logger, preserving ordering.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	events := make([]bufferedEntry, len(b.events))
	copy(events, b.events)
	b.events = b.events[:0]
	b.mu.Unlock()

	for _, entry := range events {
		switch entry.level {
		case levelDebug:
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case levelWarn:
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case levelError:
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}
