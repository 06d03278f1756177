package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openadas/adas-display/internal/controller"
	"github.com/openadas/adas-display/internal/feed"
	"github.com/openadas/adas-display/internal/model"
)

// speedHistorySize bounds the dashboard speed chart. History lives entirely
// in the presentation layer; the controller itself stays memoryless.
const speedHistorySize = 48

// TickMsg represents one periodic refresh interval elapsing.
type TickMsg time.Time

// DisplayModel is the Bubble Tea model driving the instrument display. It
// is the single scheduling context for the controller: key and tick
// messages arrive serially through Update.
type DisplayModel struct {
	ctrl *controller.Controller
	hub  *feed.Hub
	keys KeyMap

	tickInterval time.Duration
	width        int
	height       int
	showHelp     bool

	speedHistory []float64
}

// NewDisplayModel wires a controller and an optional snapshot hub into the
// display. A zero interval falls back to the default one-second tick.
func NewDisplayModel(ctrl *controller.Controller, hub *feed.Hub, tickInterval time.Duration) *DisplayModel {
	if tickInterval <= 0 {
		tickInterval = model.DefaultTickInterval
	}
	return &DisplayModel{
		ctrl:         ctrl,
		hub:          hub,
		keys:         DefaultKeyMap(),
		tickInterval: tickInterval,
		speedHistory: make([]float64, 0, speedHistorySize),
	}
}

func (m *DisplayModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *DisplayModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// publish pushes the current controller state to concurrent readers.
func (m *DisplayModel) publish() {
	if m.hub != nil {
		m.hub.Publish(m.ctrl.Snapshot())
	}
}

func (m *DisplayModel) recordSpeed(kph int) {
	if len(m.speedHistory) == speedHistorySize {
		copy(m.speedHistory, m.speedHistory[1:])
		m.speedHistory = m.speedHistory[:speedHistorySize-1]
	}
	m.speedHistory = append(m.speedHistory, float64(kph))
}
