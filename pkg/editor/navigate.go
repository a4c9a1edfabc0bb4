package editor

import (
	"go.uber.org/zap"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

// navigateToPlace follows a connection. The place the selection is on is
// pushed onto the trail first. Targets that do not exist are refused.
func (e *Editor) navigateToPlace(target breadboard.ID) bool {
	if e.board.FindPlace(target) == nil {
		e.showMessage("Connection target no longer exists", MsgWarning)
		e.logger.Warn("navigate to missing place", zap.Uint32("place", uint32(target)))
		return false
	}
	if owner, ok := e.selection.OwningPlace(); ok && e.board.FindPlace(owner) != nil {
		e.trail.Push(owner)
	}
	e.selection = PlaceSelection(target)
	return true
}

// navigateBack returns to the most recent place on the trail that still
// exists. An empty trail leaves the selection alone.
func (e *Editor) navigateBack() bool {
	for {
		id, ok := e.trail.Pop()
		if !ok {
			return false
		}
		if e.board.FindPlace(id) != nil {
			e.selection = PlaceSelection(id)
			return true
		}
	}
}

// navigablePlaces lists the places vertical and horizontal movement step
// through. The collapsed, filtered view only offers the places connected to
// the current one.
func (e *Editor) navigablePlaces() []breadboard.ID {
	if e.collapsed && e.filter {
		if owner, ok := e.selection.OwningPlace(); ok && e.board.FindPlace(owner) != nil {
			connected := e.board.ConnectedPlaces(owner)
			var ids []breadboard.ID
			for _, p := range e.board.Places {
				if connected[p.ID] {
					ids = append(ids, p.ID)
				}
			}
			return ids
		}
	}
	return e.placeIDs()
}

// ensureSelection selects the first place when nothing valid is selected.
// It reports true when it changed the selection.
func (e *Editor) ensureSelection() bool {
	if e.selection.Resolves(e.board) {
		return false
	}
	e.selectFirstPlace()
	return true
}

// stepPlace moves to the place delta positions away from the current place.
// Boundaries are no-ops.
func (e *Editor) stepPlace(delta int) {
	owner, _ := e.selection.OwningPlace()
	ids := e.navigablePlaces()
	for i, id := range ids {
		if id != owner {
			continue
		}
		next := i + delta
		if next >= 0 && next < len(ids) {
			e.selection = PlaceSelection(ids[next])
		}
		return
	}
}

func (e *Editor) moveUp() {
	if e.ensureSelection() {
		return
	}
	if e.collapsed || e.selection.IsPlace() {
		e.stepPlace(-1)
		return
	}
	p := e.board.FindPlace(e.selection.Place)
	idx := p.AffordanceIndex(e.selection.Affordance)
	if idx > 0 {
		e.selection = AffordanceSelection(p.ID, p.Affordances[idx-1].ID)
		return
	}
	e.selection = PlaceSelection(p.ID)
}

func (e *Editor) moveDown() {
	if e.ensureSelection() {
		return
	}
	if e.collapsed {
		e.stepPlace(1)
		return
	}
	p := e.board.FindPlace(e.selection.Place)
	if e.selection.IsPlace() {
		if len(p.Affordances) > 0 {
			e.selection = AffordanceSelection(p.ID, p.Affordances[0].ID)
			return
		}
		e.stepPlace(1)
		return
	}
	idx := p.AffordanceIndex(e.selection.Affordance)
	if idx+1 < len(p.Affordances) {
		e.selection = AffordanceSelection(p.ID, p.Affordances[idx+1].ID)
		return
	}
	e.stepPlace(1)
}

func (e *Editor) moveLeft() {
	if e.ensureSelection() {
		return
	}
	if e.selection.IsAffordance() {
		e.selection = PlaceSelection(e.selection.Place)
		return
	}
	e.stepPlace(-1)
}

func (e *Editor) moveRight() {
	if e.ensureSelection() {
		return
	}
	e.stepPlace(1)
}
