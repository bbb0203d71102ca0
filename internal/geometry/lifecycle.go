package geometry

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrInvalidTransition = errors.New("invalid window lifecycle transition")
)

type State int

const (
	StateUnconstructed State = iota
	StateConstructed
	StateShowing
	StateCloseRequested
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUnconstructed:
		return "unconstructed"
	case StateConstructed:
		return "constructed"
	case StateShowing:
		return "showing"
	case StateCloseRequested:
		return "close-requested"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Lifecycle owns the geometry round-trip of exactly one window.
type Lifecycle struct {
	log    *slog.Logger
	store  Store
	target Target

	state State
}

func NewLifecycle(log *slog.Logger, store Store, target Target) *Lifecycle {
	return &Lifecycle{
		log:    log,
		store:  store,
		target: target,
	}
}

func (l *Lifecycle) State() State {
	return l.state
}

func (l *Lifecycle) advance(allowed []State, to State) error {
	for _, from := range allowed {
		if l.state == from {
			l.log.Debug("Advancing window lifecycle", "from", l.state, "to", to)

			l.state = to

			return nil
		}
	}

	return fmt.Errorf("%w: %v to %v", ErrInvalidTransition, l.state, to)
}

// OnConstructed restores the stored geometry. It must run before the window
// is shown.
func (l *Lifecycle) OnConstructed() error {
	if err := l.advance([]State{StateUnconstructed}, StateConstructed); err != nil {
		return err
	}

	g := Load(l.store)

	l.log.Debug("Restoring window geometry", "width", g.Width, "height", g.Height, "maximized", g.Maximized)

	Apply(l.target, g)

	return nil
}

func (l *Lifecycle) OnShown() error {
	// Presenting an already visible window again is fine
	if l.state == StateShowing {
		return nil
	}

	return l.advance([]State{StateConstructed}, StateShowing)
}

// OnCloseRequest persists the current geometry. It returns whether the close
// should be stopped, which is never the case: failing to save must not keep
// the user from closing the window.
func (l *Lifecycle) OnCloseRequest() (stop bool) {
	if err := l.advance([]State{StateConstructed, StateShowing}, StateCloseRequested); err != nil {
		l.log.Warn("Ignoring close request in unexpected state", "err", err)

		return false
	}

	g := Capture(l.target)

	l.log.Debug("Saving window geometry", "width", g.Width, "height", g.Height, "maximized", g.Maximized)

	if err := Save(l.store, g); err != nil {
		l.log.Warn("Failed to save window state", "err", err)
	}

	return false
}

func (l *Lifecycle) OnDestroyed() error {
	if l.state == StateDestroyed {
		return fmt.Errorf("%w: %v to %v", ErrInvalidTransition, l.state, StateDestroyed)
	}

	l.log.Debug("Advancing window lifecycle", "from", l.state, "to", StateDestroyed)

	l.state = StateDestroyed

	return nil
}
