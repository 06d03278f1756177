package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openadas/adas-display/internal/model"
)

// Update handles messages. Everything that mutates the controller passes
// through here, keeping the single-scheduling-context contract.
func (m *DisplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		m.ctrl.OnTick()
		snap := m.ctrl.Snapshot()
		if snap.ActivePage == model.PageDashboard {
			m.recordSpeed(snap.Dashboard.SpeedKph)
		}
		m.publish()
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *DisplayModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		m.ctrl.RequestExit()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPage):
		m.ctrl.Advance()
		m.publish()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.ctrl.Retreat()
		m.publish()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}
