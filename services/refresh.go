package services

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// PullThreshold is the drag distance in pixels that commits a refresh
const PullThreshold = 80.0

// GestureState is the pull-to-refresh state machine's current state
type GestureState int

const (
	GestureIdle GestureState = iota
	GesturePulling
	GestureRefreshing
)

func (s GestureState) String() string {
	switch s {
	case GesturePulling:
		return "pulling"
	case GestureRefreshing:
		return "refreshing"
	default:
		return "idle"
	}
}

// RefreshFunc performs the actual re-fetch when a pull commits
type RefreshFunc func(ctx context.Context) error

// PullToRefresh tracks the touch-drag gesture that triggers a feed re-fetch.
// It only arms in mobile mode, only when the feed is scrolled to the top, and
// never while a fetch is already in flight, so a programmatic refresh
// suppresses the indicator instead of flickering it.
type PullToRefresh struct {
	mu sync.Mutex

	state    GestureState
	startY   float64
	distance float64
	mobile   bool
	inFlight bool

	refresh RefreshFunc
}

func NewPullToRefresh(refresh RefreshFunc) *PullToRefresh {
	return &PullToRefresh{refresh: refresh}
}

// SetMobile toggles the mobile-viewport mode the gesture requires
func (p *PullToRefresh) SetMobile(mobile bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mobile = mobile
}

// SetFetchInFlight marks a programmatic fetch; the gesture stays disarmed and
// an in-progress pull is abandoned.
func (p *PullToRefresh) SetFetchInFlight(inFlight bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = inFlight
	if inFlight && p.state == GesturePulling {
		p.state = GestureIdle
		p.distance = 0
	}
}

// State returns the machine's current state
func (p *PullToRefresh) State() GestureState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// PullDistance returns the current drag distance, for indicator rendering
func (p *PullToRefresh) PullDistance() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.distance
}

// TouchStart arms the gesture. It reports whether pulling began.
func (p *PullToRefresh) TouchStart(y float64, atTop bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != GestureIdle || !p.mobile || !atTop || p.inFlight {
		return false
	}
	p.state = GesturePulling
	p.startY = y
	p.distance = 0
	return true
}

// TouchMove updates the drag distance and returns it. Upward drags clamp to 0.
func (p *PullToRefresh) TouchMove(y float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != GesturePulling {
		return 0
	}
	p.distance = y - p.startY
	if p.distance < 0 {
		p.distance = 0
	}
	return p.distance
}

// TouchEnd releases the gesture. A drag at or beyond the threshold runs the
// refresh and reports true; anything shorter just returns to idle.
func (p *PullToRefresh) TouchEnd(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.state != GesturePulling {
		p.mu.Unlock()
		return false, nil
	}

	committed := p.distance >= PullThreshold
	if !committed {
		p.state = GestureIdle
		p.distance = 0
		p.mu.Unlock()
		return false, nil
	}

	p.state = GestureRefreshing
	p.inFlight = true
	p.mu.Unlock()

	log.Debug("Pull-to-refresh committed, re-fetching feed")
	err := p.refresh(ctx)

	p.mu.Lock()
	p.state = GestureIdle
	p.distance = 0
	p.inFlight = false
	p.mu.Unlock()

	return true, err
}
