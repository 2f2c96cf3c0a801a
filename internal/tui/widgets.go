package tui

import (
	"context"

	"github.com/alexisbeaulieu97/walkthrough/internal/application/navigation"
	"github.com/alexisbeaulieu97/walkthrough/internal/config"
	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
)

// widget is a mock element of the host screen. It registers its tour step
// while mounted and measures to its declared region.
type widget struct {
	def     config.Step
	mounted bool
	presses int
}

func newWidgets(defs []config.Step) []*widget {
	widgets := make([]*widget, 0, len(defs))
	for _, def := range defs {
		widgets = append(widgets, &widget{def: def})
	}
	return widgets
}

func (w *widget) name() string {
	return w.def.Name
}

func (w *widget) label() string {
	if w.def.Label != "" {
		return w.def.Label
	}
	return w.def.Name
}

// Measure implements tour.Target.
func (w *widget) Measure(context.Context) (tour.Rect, error) {
	if !w.mounted {
		return tour.Rect{}, tour.ErrMeasurementUnavailable
	}
	return w.def.Target.Rect(), nil
}

// mount lays the widget out and registers its step through the capability.
func (w *widget) mount(capability navigation.Capability) {
	w.mounted = true
	capability.Register(w.step())
}

func (w *widget) unmount(capability navigation.Capability) {
	w.mounted = false
	capability.Unregister(w.name())
}

func (w *widget) step() tour.Step {
	step := w.def.TourStep(w)
	step.OnSelect = func() { w.presses++ }
	return step
}

func findWidget(widgets []*widget, name string) *widget {
	for _, w := range widgets {
		if w.name() == name {
			return w
		}
	}
	return nil
}
