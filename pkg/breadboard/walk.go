package breadboard

import (
	"errors"
	"fmt"
)

// Walk errors.
var (
	ErrNoPlaces        = errors.New("breadboard has no places")
	ErrUnknownPlace    = errors.New("unknown place")
	ErrNoAffordance    = errors.New("no such affordance")
	ErrNotConnected    = errors.New("affordance has no connection")
	ErrUnresolvedPlace = errors.New("connection does not resolve")
)

// Walker clicks through a breadboard by following affordance connections.
type Walker struct {
	board   *Breadboard
	start   ID
	current ID
	history []Step
}

// Step records one followed affordance.
type Step struct {
	From       ID
	Affordance string
	To         ID
}

// NewWalker starts a walk at the given place. A zero start means the first
// place of the board.
func NewWalker(b *Breadboard, start ID) (*Walker, error) {
	if len(b.Places) == 0 {
		return nil, ErrNoPlaces
	}
	if start == 0 {
		start = b.Places[0].ID
	}
	if b.FindPlace(start) == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlace, start)
	}
	return &Walker{board: b, start: start, current: start}, nil
}

// Current returns the place the walk is at.
func (w *Walker) Current() *Place {
	return w.board.FindPlace(w.current)
}

// Follow takes the affordance at index i (zero based) of the current place.
func (w *Walker) Follow(i int) (*Place, error) {
	p := w.Current()
	if p == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlace, w.current)
	}
	if i < 0 || i >= len(p.Affordances) {
		return nil, fmt.Errorf("%w: %d", ErrNoAffordance, i+1)
	}
	a := p.Affordances[i]
	if a.ConnectsTo == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotConnected, a.Name)
	}
	dest := w.board.FindPlace(*a.ConnectsTo)
	if dest == nil {
		return nil, fmt.Errorf("%w: %q -> %d", ErrUnresolvedPlace, a.Name, *a.ConnectsTo)
	}

	w.history = append(w.history, Step{From: p.ID, Affordance: a.Name, To: dest.ID})
	w.current = dest.ID
	return dest, nil
}

// Back undoes the last step. It reports false when there is nothing to undo.
func (w *Walker) Back() bool {
	if len(w.history) == 0 {
		return false
	}
	last := w.history[len(w.history)-1]
	w.history = w.history[:len(w.history)-1]
	w.current = last.From
	return true
}

// Reset returns to the start place and clears the history.
func (w *Walker) Reset() {
	w.current = w.start
	w.history = nil
}

// History returns the steps taken so far.
func (w *Walker) History() []Step {
	return w.history
}
