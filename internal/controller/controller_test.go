package controller

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/openadas/adas-display/internal/model"
)

// seededSampler gives tests a deterministic but realistic draw sequence.
type seededSampler struct{ r *rand.Rand }

func newSeededSampler(seed uint64) seededSampler {
	return seededSampler{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s seededSampler) Float64() float64 { return s.r.Float64() }
func (s seededSampler) IntN(n int) int   { return s.r.IntN(n) }

// maxSampler always returns the maximum draw: Float64 just under 1 and
// IntN's highest value. Exercises the upper boundary of each distribution.
type maxSampler struct{}

func (maxSampler) Float64() float64 { return 0.9999999999 }
func (maxSampler) IntN(n int) int   { return n - 1 }

// minSampler always returns the minimum draw.
type minSampler struct{}

func (minSampler) Float64() float64 { return 0 }
func (minSampler) IntN(int) int     { return 0 }

func TestNewStartsOnDashboard(t *testing.T) {
	t.Parallel()

	c := New(nil)
	snap := c.Snapshot()
	if snap.ActivePage != model.PageDashboard {
		t.Fatalf("initial page = %v, want Dashboard", snap.ActivePage)
	}
	if snap.Dashboard != (model.DashboardState{}) {
		t.Fatalf("initial dashboard = %+v, want zero", snap.Dashboard)
	}
	if snap.Navigation.LapCurrent != 0 || snap.Navigation.LapTotal != 0 {
		t.Fatalf("initial laps = %+v, want 0/0", snap.Navigation)
	}
}

func TestAdvanceWalksTheCarousel(t *testing.T) {
	t.Parallel()

	c := New(newSeededSampler(1))
	want := []model.Page{model.PageRearView, model.PageNavigation, model.PageDashboard}
	for i, w := range want {
		c.Advance()
		if got := c.Snapshot().ActivePage; got != w {
			t.Fatalf("advance %d: page = %v, want %v", i+1, got, w)
		}
	}
}

func TestRetreatWrapsBackward(t *testing.T) {
	t.Parallel()

	c := New(newSeededSampler(1))
	c.Retreat()
	if got := c.Snapshot().ActivePage; got != model.PageNavigation {
		t.Fatalf("retreat from Dashboard = %v, want Navigation", got)
	}
}

func TestRetreatInvertsAdvance(t *testing.T) {
	t.Parallel()

	for _, start := range []model.Page{model.PageDashboard, model.PageRearView, model.PageNavigation} {
		c := New(newSeededSampler(1))
		for c.Snapshot().ActivePage != start {
			c.Advance()
		}
		c.Advance()
		c.Retreat()
		if got := c.Snapshot().ActivePage; got != start {
			t.Errorf("advance+retreat from %v = %v, want %v", start, got, start)
		}
	}
}

func TestPageDomainClosedUnderArbitrarySequences(t *testing.T) {
	t.Parallel()

	c := New(newSeededSampler(7))
	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 1000; i++ {
		if r.IntN(2) == 0 {
			c.Advance()
		} else {
			c.Retreat()
		}
		p := c.Snapshot().ActivePage
		if p != model.PageDashboard && p != model.PageRearView && p != model.PageNavigation {
			t.Fatalf("step %d: page escaped domain: %v", i, p)
		}
	}
}

func TestTickResamplesWithinBounds(t *testing.T) {
	t.Parallel()

	c := New(newSeededSampler(42))
	for i := 0; i < 10000; i++ {
		c.OnTick()
		d := c.Snapshot().Dashboard
		if d.SpeedKph < model.SpeedMinKph || d.SpeedKph > model.SpeedMaxKph {
			t.Fatalf("tick %d: speed = %d, want within [%d, %d]",
				i, d.SpeedKph, model.SpeedMinKph, model.SpeedMaxKph)
		}
		if d.TrafficSign < model.SignNone || d.TrafficSign >= model.TrafficSignCount {
			t.Fatalf("tick %d: traffic sign out of domain: %d", i, d.TrafficSign)
		}
	}
}

func TestTickOffDashboardIsNoOp(t *testing.T) {
	t.Parallel()

	for _, page := range []model.Page{model.PageRearView, model.PageNavigation} {
		c := New(newSeededSampler(3))
		c.OnTick() // populate dashboard while active
		for c.Snapshot().ActivePage != page {
			c.Advance()
		}
		before := c.Snapshot()
		for i := 0; i < 100; i++ {
			c.OnTick()
		}
		after := c.Snapshot()
		if after.Dashboard != before.Dashboard {
			t.Errorf("page %v: dashboard changed across ticks: %+v -> %+v",
				page, before.Dashboard, after.Dashboard)
		}
		if after.Navigation != before.Navigation {
			t.Errorf("page %v: navigation changed across ticks: %+v -> %+v",
				page, before.Navigation, after.Navigation)
		}
	}
}

func TestTickUpperBoundary(t *testing.T) {
	t.Parallel()

	c := New(maxSampler{})
	c.OnTick()
	d := c.Snapshot().Dashboard

	if d.LaneDeparture {
		t.Error("lane departure = true, want false at max draw")
	}
	if d.BlindSpot {
		t.Error("blind spot = true, want false at max draw")
	}
	if d.AutoLight {
		t.Error("auto light = true, want false at max draw")
	}
	if d.SpeedKph != model.SpeedMaxKph {
		t.Errorf("speed = %d, want %d", d.SpeedKph, model.SpeedMaxKph)
	}
	if d.TrafficSign != model.SignYield {
		t.Errorf("traffic sign = %v, want Yield", d.TrafficSign)
	}
}

func TestTickLowerBoundary(t *testing.T) {
	t.Parallel()

	c := New(minSampler{})
	c.OnTick()
	d := c.Snapshot().Dashboard

	if !d.LaneDeparture {
		t.Error("lane departure = false, want true at min draw")
	}
	if !d.BlindSpot {
		t.Error("blind spot = false, want true at min draw")
	}
	if !d.AutoLight {
		t.Error("auto light = false, want true at min draw")
	}
	if d.SpeedKph != model.SpeedMinKph {
		t.Errorf("speed = %d, want %d", d.SpeedKph, model.SpeedMinKph)
	}
	if d.TrafficSign != model.SignNone {
		t.Errorf("traffic sign = %v, want No Sign", d.TrafficSign)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	c := New(newSeededSampler(9))
	c.OnTick()
	snap := c.Snapshot()
	snap.Dashboard.SpeedKph = -1
	snap.ActivePage = model.PageNavigation

	if got := c.Snapshot(); got.Dashboard.SpeedKph == -1 || got.ActivePage == model.PageNavigation {
		t.Fatal("mutating a snapshot leaked into controller state")
	}
}

func TestHandleDispatchesKnownEvents(t *testing.T) {
	t.Parallel()

	c := New(newSeededSampler(5))
	if err := c.Handle(EventNext); err != nil {
		t.Fatalf("Handle(Next): %v", err)
	}
	if got := c.Snapshot().ActivePage; got != model.PageRearView {
		t.Fatalf("after Next: page = %v, want RearView", got)
	}
	if err := c.Handle(EventPrevious); err != nil {
		t.Fatalf("Handle(Previous): %v", err)
	}
	if got := c.Snapshot().ActivePage; got != model.PageDashboard {
		t.Fatalf("after Previous: page = %v, want Dashboard", got)
	}
	if err := c.Handle(EventTick); err != nil {
		t.Fatalf("Handle(Tick): %v", err)
	}
	if err := c.Handle(EventQuit); err != nil {
		t.Fatalf("Handle(Quit): %v", err)
	}
	select {
	case <-c.Done():
	default:
		t.Fatal("Done not closed after Quit event")
	}
}

func TestHandleRejectsUnknownEventWithoutMutation(t *testing.T) {
	t.Parallel()

	c := New(newSeededSampler(5))
	c.OnTick()
	before := c.Snapshot()

	err := c.Handle(Event(99))
	if !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("Handle(99) = %v, want ErrUnknownEvent", err)
	}
	if got := c.Snapshot(); got != before {
		t.Fatalf("unknown event mutated state: %+v -> %+v", before, got)
	}
	select {
	case <-c.Done():
		t.Fatal("unknown event raised exit signal")
	default:
	}
}

func TestRequestExitIsIdempotent(t *testing.T) {
	t.Parallel()

	c := New(nil)
	c.RequestExit()
	c.RequestExit() // must not panic on double close

	select {
	case <-c.Done():
	default:
		t.Fatal("Done not closed after RequestExit")
	}
}
