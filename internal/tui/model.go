// Package tui hosts a tour on top of a mock terminal application screen.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/walkthrough/internal/application/navigation"
	"github.com/alexisbeaulieu97/walkthrough/internal/config"
	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
	"github.com/alexisbeaulieu97/walkthrough/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/walkthrough/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/walkthrough/internal/infrastructure/overlay"
	"github.com/alexisbeaulieu97/walkthrough/internal/infrastructure/scheduler"
	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
	"github.com/alexisbeaulieu97/walkthrough/internal/tui/components"
)

// footerHeight is the number of rows reserved below the layout for the
// status and help lines.
const footerHeight = 2

// FrameMsg advances the frame loop by one frame.
type FrameMsg struct {
	Time time.Time
}

// Options configures a Model.
type Options struct {
	Tour   *config.Tour
	From   string
	Logger ports.Logger
	// Logs, when set, is the buffer behind Logger; its latest entry is
	// shown in the status line.
	Logs *logging.EventBuffer
}

// session holds state shared between copies of the Model and the event
// subscription.
type session struct {
	lastEvent string
	lastStep  string
	starts    int
	stops     int
	unmounted string
	notice    string
}

// Model contains the Bubbletea state for the tour host.
type Model struct {
	ctx    context.Context
	tour   *config.Tour
	from   string
	logger ports.Logger
	logs   *logging.EventBuffer

	registry     *tour.Registry
	navigator    *navigation.Navigator
	controller   *overlay.Controller
	frames       *scheduler.FrameQueue
	publisher    *events.LoggingPublisher
	subscription ports.Subscription
	session      *session

	widgets  []*widget
	keys     keyMap
	help     help.Model
	progress components.Progress
	styles   styles
	interval time.Duration

	width    int
	height   int
	mounted  bool
	quitting bool
}

// NewModel wires the tour core for the given definition. Widgets are mounted
// on the first window size message.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	if opts.Tour == nil {
		return Model{}, errors.New("tui: tour definition is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	settings := opts.Tour.Settings

	registry := tour.NewRegistry()
	frames := scheduler.NewFrameQueue()
	publisher := events.NewLoggingPublisher(logger)
	controller := overlay.NewController(settings.Engine(), settings.AnimatorOptions(), logger)

	navigator, err := navigation.New(navigation.Options{
		Registry:      registry,
		Scheduler:     frames,
		Publisher:     publisher,
		Mover:         controller,
		Logger:        logger,
		MaxStartTries: settings.MaxStartTries,
	})
	if err != nil {
		return Model{}, err
	}

	s := &session{}
	subscription, err := publisher.Subscribe(events.AllEvents, func(_ context.Context, event ports.DomainEvent) error {
		s.lastEvent = event.EventType()
		if step, ok := navigation.StepFromEvent(event); ok {
			s.lastStep = step.Name
		}
		switch event.EventType() {
		case ports.EventStart:
			s.starts++
		case ports.EventStop:
			s.stops++
		}
		return nil
	})
	if err != nil {
		return Model{}, err
	}

	from := opts.From
	if from == "" {
		from = opts.Tour.StartAt
	}

	return Model{
		ctx:          ctx,
		tour:         opts.Tour,
		from:         from,
		logger:       logger.With("component", "tui"),
		logs:         opts.Logs,
		registry:     registry,
		navigator:    navigator,
		controller:   controller,
		frames:       frames,
		publisher:    publisher,
		subscription: subscription,
		session:      s,
		widgets:      newWidgets(opts.Tour.Steps),
		keys:         newKeyMap(),
		help:         help.New(),
		progress:     components.NewProgress(0),
		styles:       newStyles(settings.BackdropColor),
		interval:     settings.FrameInterval(),
	}, nil
}

// Init requests the tour start and begins the frame loop. No widget is
// mounted yet, so the start waits on the frame queue until steps register.
func (m Model) Init() tea.Cmd {
	m.navigator.Start(m.ctx, m.from)
	return frameCmd(m.interval)
}

// History returns the names of the steps visited during the session.
func (m Model) History() []string {
	return m.navigator.History()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return FrameMsg{Time: t} })
}

func (m Model) layout() tour.Size {
	height := m.height - footerHeight
	if height < 0 {
		height = 0
	}
	return tour.Size{Width: float64(m.width), Height: float64(height)}
}

func (m *Model) mountWidgets() {
	for _, w := range m.widgets {
		w.mount(m.navigator)
	}
	m.mounted = true
	m.logger.Debug(m.ctx, "widgets mounted", "count", len(m.widgets))
}

func (m *Model) toggleMount() {
	if name := m.session.unmounted; name != "" {
		if w := findWidget(m.widgets, name); w != nil {
			w.mount(m.navigator)
			m.navigator.Refresh(m.ctx)
		}
		m.session.unmounted = ""
		m.session.notice = "remounted " + name
		return
	}

	current, ok := m.navigator.CurrentStep()
	if !ok {
		return
	}
	w := findWidget(m.widgets, current.Name)
	if w == nil || !w.mounted {
		return
	}
	w.unmount(m.navigator)
	m.session.unmounted = w.name()
	m.session.notice = "unmounted " + w.name()
}

func (m *Model) close() {
	m.quitting = true
	m.navigator.Detach()
	if m.subscription != nil {
		m.subscription.Unsubscribe()
	}
}
