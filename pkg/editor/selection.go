package editor

import (
	"fmt"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

// SelectionKind tags a Selection.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectPlace
	SelectAffordance
)

// Selection is the focused entity: nothing, a place, or an affordance
// addressed through its owning place.
type Selection struct {
	Kind       SelectionKind
	Place      breadboard.ID
	Affordance breadboard.ID
}

// NoSelection returns the empty selection.
func NoSelection() Selection { return Selection{} }

// PlaceSelection selects a place.
func PlaceSelection(id breadboard.ID) Selection {
	return Selection{Kind: SelectPlace, Place: id}
}

// AffordanceSelection selects an affordance of a place.
func AffordanceSelection(place, affordance breadboard.ID) Selection {
	return Selection{Kind: SelectAffordance, Place: place, Affordance: affordance}
}

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool { return s.Kind == SelectNone }

// IsPlace reports whether a place is selected.
func (s Selection) IsPlace() bool { return s.Kind == SelectPlace }

// IsAffordance reports whether an affordance is selected.
func (s Selection) IsAffordance() bool { return s.Kind == SelectAffordance }

// OwningPlace returns the selected place, or the place owning the selected
// affordance.
func (s Selection) OwningPlace() (breadboard.ID, bool) {
	if s.Kind == SelectNone {
		return 0, false
	}
	return s.Place, true
}

// Resolves reports whether every id of the selection exists in b.
func (s Selection) Resolves(b *breadboard.Breadboard) bool {
	switch s.Kind {
	case SelectPlace:
		return b.FindPlace(s.Place) != nil
	case SelectAffordance:
		return b.FindAffordance(s.Place, s.Affordance) != nil
	}
	return false
}

func (s Selection) String() string {
	switch s.Kind {
	case SelectPlace:
		return fmt.Sprintf("place(%d)", s.Place)
	case SelectAffordance:
		return fmt.Sprintf("affordance(%d/%d)", s.Place, s.Affordance)
	}
	return "none"
}

// Trail is the back-navigation stack of place ids.
type Trail struct {
	ids []breadboard.ID
}

// Push adds a place id on top of the trail.
func (t *Trail) Push(id breadboard.ID) {
	t.ids = append(t.ids, id)
}

// Pop removes the top id. It reports false when the trail is empty.
func (t *Trail) Pop() (breadboard.ID, bool) {
	if len(t.ids) == 0 {
		return 0, false
	}
	id := t.ids[len(t.ids)-1]
	t.ids = t.ids[:len(t.ids)-1]
	return id, true
}

// Len returns the depth of the trail.
func (t *Trail) Len() int { return len(t.ids) }

// Clear empties the trail.
func (t *Trail) Clear() { t.ids = nil }

// IDs returns a copy of the trail, bottom first.
func (t *Trail) IDs() []breadboard.ID {
	out := make([]breadboard.ID, len(t.ids))
	copy(out, t.ids)
	return out
}
