package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openadas/adas-display/internal/model"
)

// View renders the active page plus the status line.
func (m *DisplayModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing display..."
	}

	snap := m.ctrl.Snapshot()

	var body string
	switch snap.ActivePage {
	case model.PageDashboard:
		body = m.renderDashboard(snap.Dashboard)
	case model.PageRearView:
		body = m.renderRearView()
	case model.PageNavigation:
		body = m.renderNavigation(snap.Navigation)
	}

	if m.showHelp {
		body = lipgloss.JoinVertical(lipgloss.Center, body, m.renderHelp())
	}

	contentHeight := m.height - 1
	if contentHeight < 1 {
		contentHeight = 1
	}
	content := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusLine(snap.ActivePage))
}

func (m *DisplayModel) renderRearView() string {
	return titleStyle.Render("REAR VIEW CAMERA FEED")
}

func (m *DisplayModel) renderNavigation(nav model.NavigationState) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("RACE NAVIGATION MAP"),
		"",
		okStyle.Render(fmt.Sprintf("LAP: %d/%d", nav.LapCurrent, nav.LapTotal)),
	)
}

func (m *DisplayModel) renderHelp() string {
	lines := []string{
		"",
		"→/l/tab: next page",
		"←/h/shift+tab: previous page",
		"?: toggle help",
		"q: quit",
	}
	return helpStyle.Render(strings.Join(lines, "\n"))
}

// renderStatusLine renders the page indicator and key hints at the bottom
// of the screen, degrading gracefully on narrow terminals.
func (m *DisplayModel) renderStatusLine(page model.Page) string {
	left := fmt.Sprintf("[%s %d/3]", page, int(page)+1)

	var hints string
	switch {
	case m.width < 40:
		hints = "←→ • q"
	case m.width < 72:
		hints = "←/→: Page • q: Quit"
	default:
		hints = "←/→: Switch Page • ?: Help • q: Quit"
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hints) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + hints

	return statusStyle.Width(m.width).Render(" " + line)
}
