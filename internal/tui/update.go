package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.controller.SetLayout(m.layout())
		if !m.mounted {
			m.mountWidgets()
		} else {
			m.navigator.Refresh(m.ctx)
		}
		return m, nil

	case FrameMsg:
		m.frames.Tick()
		m.controller.Advance(m.interval)
		if m.quitting {
			return m, nil
		}
		return m, frameCmd(m.interval)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.navigator.Stop(m.ctx)
		m.controller.Reset()
		m.navigator.Start(m.ctx, "")
		m.session.notice = ""
		return m, nil

	case key.Matches(msg, m.keys.Unmount):
		m.toggleMount()
		return m, nil
	}

	view := m.navigator.View()
	if !view.Visible {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		if _, ok := m.navigator.Next(m.ctx); !ok && view.IsLastStep {
			m.navigator.Stop(m.ctx)
		}
	case key.Matches(msg, m.keys.Prev):
		m.navigator.Prev(m.ctx)
	case key.Matches(msg, m.keys.Skip):
		m.navigator.Stop(m.ctx)
	case key.Matches(msg, m.keys.Select):
		if m.navigator.Select(m.ctx) && view.Current != nil {
			if w := findWidget(m.widgets, view.Current.Name); w != nil {
				m.session.notice = fmt.Sprintf("pressed %s (%d)", w.label(), w.presses)
			}
		}
	case key.Matches(msg, m.keys.Jump):
		index := int(msg.String()[0] - '1')
		if index >= 0 && index < len(m.tour.Steps) {
			m.navigator.JumpToName(m.ctx, m.tour.Steps[index].Name)
		}
	}

	return m, nil
}
