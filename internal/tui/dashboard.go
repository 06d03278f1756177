package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/openadas/adas-display/internal/model"
)

// renderDashboard lays out the primary page: warning banners on top, the
// speed readout and its recent history in the middle, sign recognition and
// light status at the bottom.
func (m *DisplayModel) renderDashboard(d model.DashboardState) string {
	ldw := okStyle.Render("LDW: OK")
	if d.LaneDeparture {
		ldw = alertStyle.Render("LDW: WARNING!")
	}
	bsd := okStyle.Render("BSD: OK")
	if d.BlindSpot {
		bsd = warnStyle.Render("BSD: OBJECT!")
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, ldw, "    ", bsd)

	speed := speedStyle.Render(fmt.Sprintf("SPEED: %d km/h", d.SpeedKph))

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		okStyle.Render(fmt.Sprintf("TSR: %s", d.TrafficSign)),
		"    ",
		okStyle.Render(fmt.Sprintf("Auto Light: %s", onOff(d.AutoLight))),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		top,
		speed,
		m.renderSpeedChart(),
		"",
		bottom,
	)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// renderSpeedChart draws recent speed samples as a bar graph. Bars show the
// offset above the minimum simulated speed so the [60, 120] band uses the
// full chart height.
func (m *DisplayModel) renderSpeedChart() string {
	if len(m.speedHistory) == 0 {
		return mutedStyle.Render("awaiting samples")
	}

	chartWidth := m.width / 2
	if chartWidth < 24 {
		chartWidth = 24
	}
	maxBars := chartWidth / 2
	history := m.speedHistory
	if len(history) > maxBars {
		history = history[len(history)-maxBars:]
	}

	bc := barchart.New(chartWidth, 5,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
		barchart.WithMaxValue(float64(model.SpeedMaxKph-model.SpeedMinKph+1)),
	)
	for _, kph := range history {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "KPH", Value: kph - model.SpeedMinKph + 1, Style: chartStyle},
			},
		})
	}
	bc.Draw()

	return bc.View()
}
