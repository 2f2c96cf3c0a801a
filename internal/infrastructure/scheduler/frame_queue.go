// Package scheduler provides the "run on next frame" primitive used by the
// tour's start retry loop.
package scheduler

import "github.com/alexisbeaulieu97/walkthrough/internal/ports"

// FrameQueue collects callbacks scheduled for the next frame. The host calls
// Tick once per paint frame, on the same goroutine that schedules work.
type FrameQueue struct {
	pending []func()
	frame   uint64
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// NextFrame schedules fn to run on the following Tick.
func (q *FrameQueue) NextFrame(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Tick advances one frame and runs the callbacks scheduled before it.
// Callbacks scheduled while ticking run on the next Tick. It returns the
// number of callbacks run.
func (q *FrameQueue) Tick() int {
	q.frame++
	due := q.pending
	q.pending = nil
	for _, fn := range due {
		fn()
	}
	return len(due)
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frame returns the number of frames ticked so far.
func (q *FrameQueue) Frame() uint64 {
	return q.frame
}

var _ ports.FrameScheduler = (*FrameQueue)(nil)
