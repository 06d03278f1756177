package model

import (
	"fmt"
	"strconv"
)

// Page identifies one of the three mutually exclusive display modes.
// The order is fixed and cyclic: Dashboard, RearView, Navigation.
type Page int

const (
	PageDashboard Page = iota
	PageRearView
	PageNavigation

	pageCount
)

// Next returns the cyclic successor: Dashboard → RearView → Navigation → Dashboard.
func (p Page) Next() Page {
	return (p + 1) % pageCount
}

// Prev returns the cyclic predecessor.
func (p Page) Prev() Page {
	return (p + pageCount - 1) % pageCount
}

func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageRearView:
		return "Rear View"
	case PageNavigation:
		return "Navigation"
	}
	return "Page(" + strconv.Itoa(int(p)) + ")"
}

// MarshalJSON encodes the page as its display name so API and uplink
// consumers do not depend on internal ordering.
func (p Page) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

func (p *Page) UnmarshalJSON(data []byte) error {
	name, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("page: %w", err)
	}
	for candidate := PageDashboard; candidate < pageCount; candidate++ {
		if candidate.String() == name {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("page: unknown name %q", name)
}

// TrafficSign is the last sign reported by the simulated recognition unit.
type TrafficSign int

const (
	SignNone TrafficSign = iota
	SignSpeed50
	SignStop
	SignYield

	// TrafficSignCount is the size of the sign domain, used when sampling.
	TrafficSignCount
)

func (s TrafficSign) String() string {
	switch s {
	case SignNone:
		return "No Sign"
	case SignSpeed50:
		return "Speed 50"
	case SignStop:
		return "Stop Sign"
	case SignYield:
		return "Yield"
	}
	return "TrafficSign(" + strconv.Itoa(int(s)) + ")"
}

func (s TrafficSign) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

func (s *TrafficSign) UnmarshalJSON(data []byte) error {
	name, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("traffic sign: %w", err)
	}
	for candidate := SignNone; candidate < TrafficSignCount; candidate++ {
		if candidate.String() == name {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("traffic sign: unknown name %q", name)
}

// DashboardState holds the synthetic readings shown on the dashboard page.
// Every field is independently resampled on each refresh tick; fields carry
// no memory of previous values and no cross-field correlation.
type DashboardState struct {
	LaneDeparture bool        `json:"lane_departure"`
	BlindSpot     bool        `json:"blind_spot"`
	SpeedKph      int         `json:"speed_kph"`
	TrafficSign   TrafficSign `json:"traffic_sign"`
	AutoLight     bool        `json:"auto_light"`
}

// NavigationState holds the race navigation placeholders. Both counters
// start at zero and nothing in the system mutates them; the page renders
// them as-is.
type NavigationState struct {
	LapCurrent int `json:"lap_current"`
	LapTotal   int `json:"lap_total"`
}

// Snapshot is a read-only copy of the full display state, handed to the
// presentation layer, the HTTP API, and the uplink.
type Snapshot struct {
	ActivePage Page            `json:"active_page"`
	Dashboard  DashboardState  `json:"dashboard"`
	Navigation NavigationState `json:"navigation"`
}
