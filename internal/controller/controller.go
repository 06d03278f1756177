// Package controller owns the display state machine: which page is active,
// how directional input moves between pages, and how the periodic tick
// regenerates the dashboard's synthetic readings.
//
// The controller is not internally synchronized. It must be driven from a
// single scheduling context (here, the Bubble Tea update loop); concurrent
// readers work from published Snapshot copies instead.
package controller

import (
	"errors"
	"sync"

	"github.com/openadas/adas-display/internal/model"
)

// Resample probabilities for the dashboard's warning and status fields.
const (
	laneDepartureProb = 0.10
	blindSpotProb     = 0.05
	autoLightProb     = 0.5
)

// Sampler provides the random draws behind the synthetic readings.
// Implementations must return Float64 in [0, 1) and IntN in [0, n).
type Sampler interface {
	Float64() float64
	IntN(n int) int
}

// Event is an external input delivered to the controller.
type Event int

const (
	EventNext Event = iota
	EventPrevious
	EventQuit
	EventTick
)

// ErrUnknownEvent is returned by Handle for events outside the known set.
// State is never mutated on this path.
var ErrUnknownEvent = errors.New("controller: unknown event")

// Controller maintains the active page and the dashboard's synthetic
// readings, responding to navigation input and periodic ticks.
type Controller struct {
	sampler Sampler
	state   model.Snapshot

	exitOnce sync.Once
	done     chan struct{}
}

// New creates a controller starting on the dashboard page with zeroed
// readings. A nil sampler falls back to math/rand.
func New(sampler Sampler) *Controller {
	if sampler == nil {
		sampler = mathSampler{}
	}
	return &Controller{
		sampler: sampler,
		done:    make(chan struct{}),
	}
}

// Advance moves to the cyclic successor page. It always succeeds.
func (c *Controller) Advance() {
	c.state.ActivePage = c.state.ActivePage.Next()
}

// Retreat moves to the cyclic predecessor page. It always succeeds.
func (c *Controller) Retreat() {
	c.state.ActivePage = c.state.ActivePage.Prev()
}

// RequestExit signals the host to terminate by closing Done. The controller
// holds no shutdown logic beyond raising this signal; calling it more than
// once is safe.
func (c *Controller) RequestExit() {
	c.exitOnce.Do(func() { close(c.done) })
}

// Done is closed once RequestExit has been called.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// OnTick resamples every dashboard field independently. Only the dashboard
// page refreshes; while any other page is active the tick is a no-op and
// all state is left untouched.
func (c *Controller) OnTick() {
	if c.state.ActivePage != model.PageDashboard {
		return
	}

	d := &c.state.Dashboard
	d.LaneDeparture = c.sampler.Float64() < laneDepartureProb
	d.BlindSpot = c.sampler.Float64() < blindSpotProb
	d.SpeedKph = model.SpeedMinKph + c.sampler.IntN(model.SpeedMaxKph-model.SpeedMinKph+1)
	d.TrafficSign = model.TrafficSign(c.sampler.IntN(int(model.TrafficSignCount)))
	d.AutoLight = c.sampler.Float64() < autoLightProb
}

// Snapshot returns a copy of the current state. Pure read, no side effects.
func (c *Controller) Snapshot() model.Snapshot {
	return c.state
}

// Handle dispatches an external event onto the matching operation. Events
// outside {Next, Previous, Quit, Tick} are rejected with ErrUnknownEvent
// without mutating state.
func (c *Controller) Handle(ev Event) error {
	switch ev {
	case EventNext:
		c.Advance()
	case EventPrevious:
		c.Retreat()
	case EventQuit:
		c.RequestExit()
	case EventTick:
		c.OnTick()
	default:
		return ErrUnknownEvent
	}
	return nil
}
