// Package breadboard provides the UX flow graph: places, the affordances
// attached to them and the connections those affordances make.
package breadboard

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ID identifies a place or an affordance. Zero is never allocated.
type ID uint32

// Sentinel errors reported by Validate.
var (
	ErrDuplicatePlaceID      = errors.New("duplicate place id")
	ErrDuplicateAffordanceID = errors.New("duplicate affordance id")
)

// Affordance is an action available at a place.
type Affordance struct {
	ID         ID
	Name       string
	ConnectsTo *ID // destination place, may not resolve
}

// Place is a node of the breadboard.
type Place struct {
	ID          ID
	Name        string
	Group       *string
	Affordances []Affordance
}

// Breadboard is the whole flow document.
type Breadboard struct {
	Name             string
	Created          string
	Places           []Place
	NextPlaceID      ID
	NextAffordanceID ID
}

// Connection pairs an affordance with the place that owns it.
type Connection struct {
	Place      *Place
	Affordance *Affordance
}

// New creates an empty breadboard.
func New(name string) *Breadboard {
	return &Breadboard{
		Name:             name,
		Created:          time.Now().UTC().Format(time.RFC3339),
		Places:           make([]Place, 0),
		NextPlaceID:      1,
		NextAffordanceID: 1,
	}
}

// NewPlace creates a place with a fresh id and appends it.
func (b *Breadboard) NewPlace(name string) *Place {
	b.AddPlace(Place{ID: b.GeneratePlaceID(), Name: name})
	return &b.Places[len(b.Places)-1]
}

// NewAffordance creates an affordance with a fresh id on the given place.
// It returns nil, without consuming an id, if the place is unknown.
func (b *Breadboard) NewAffordance(placeID ID, name string) *Affordance {
	p := b.FindPlace(placeID)
	if p == nil {
		return nil
	}
	p.AddAffordance(Affordance{ID: b.GenerateAffordanceID(), Name: name})
	return &p.Affordances[len(p.Affordances)-1]
}

// AddPlace appends a place.
func (b *Breadboard) AddPlace(p Place) {
	if p.Affordances == nil {
		p.Affordances = make([]Affordance, 0)
	}
	b.Places = append(b.Places, p)
}

// AddAffordanceTo appends an affordance to a place. Unknown places are ignored.
func (b *Breadboard) AddAffordanceTo(placeID ID, a Affordance) bool {
	p := b.FindPlace(placeID)
	if p == nil {
		return false
	}
	p.AddAffordance(a)
	return true
}

// FindPlace returns the place with the given id, or nil.
// The pointer is only valid until the place list is next modified.
func (b *Breadboard) FindPlace(id ID) *Place {
	for i := range b.Places {
		if b.Places[i].ID == id {
			return &b.Places[i]
		}
	}
	return nil
}

// PlaceIndex returns the index of a place, or -1 if not found.
func (b *Breadboard) PlaceIndex(id ID) int {
	for i := range b.Places {
		if b.Places[i].ID == id {
			return i
		}
	}
	return -1
}

// FindAffordance returns an affordance addressed by its owning place.
func (b *Breadboard) FindAffordance(placeID, affordanceID ID) *Affordance {
	p := b.FindPlace(placeID)
	if p == nil {
		return nil
	}
	return p.FindAffordance(affordanceID)
}

// DeletePlace removes a place. Affordances elsewhere that point at it keep
// their stale ConnectsTo value.
func (b *Breadboard) DeletePlace(id ID) bool {
	idx := b.PlaceIndex(id)
	if idx < 0 {
		return false
	}
	b.Places = append(b.Places[:idx], b.Places[idx+1:]...)
	return true
}

// DeleteAffordance removes an affordance from its owning place.
func (b *Breadboard) DeleteAffordance(placeID, affordanceID ID) bool {
	p := b.FindPlace(placeID)
	if p == nil {
		return false
	}
	return p.DeleteAffordance(affordanceID)
}

// IncomingConnections returns every affordance that connects to placeID, in
// place-then-affordance order.
func (b *Breadboard) IncomingConnections(placeID ID) []Connection {
	var result []Connection
	for i := range b.Places {
		p := &b.Places[i]
		for j := range p.Affordances {
			a := &p.Affordances[j]
			if a.ConnectsTo != nil && *a.ConnectsTo == placeID {
				result = append(result, Connection{Place: p, Affordance: a})
			}
		}
	}
	return result
}

// OutgoingConnections returns the destinations of a place's affordances.
func (b *Breadboard) OutgoingConnections(placeID ID) []ID {
	p := b.FindPlace(placeID)
	if p == nil {
		return nil
	}
	var result []ID
	for _, a := range p.Affordances {
		if a.ConnectsTo != nil {
			result = append(result, *a.ConnectsTo)
		}
	}
	return result
}

// ConnectedPlaces returns placeID together with every place it connects to
// and every place connecting to it.
func (b *Breadboard) ConnectedPlaces(placeID ID) map[ID]bool {
	set := map[ID]bool{placeID: true}
	for _, dest := range b.OutgoingConnections(placeID) {
		set[dest] = true
	}
	for _, c := range b.IncomingConnections(placeID) {
		set[c.Place.ID] = true
	}
	return set
}

// DanglingConnections returns affordances whose destination does not exist.
func (b *Breadboard) DanglingConnections() []Connection {
	var result []Connection
	for i := range b.Places {
		p := &b.Places[i]
		for j := range p.Affordances {
			a := &p.Affordances[j]
			if a.ConnectsTo != nil && b.FindPlace(*a.ConnectsTo) == nil {
				result = append(result, Connection{Place: p, Affordance: a})
			}
		}
	}
	return result
}

// GeneratePlaceID returns the next place id and advances the counter.
func (b *Breadboard) GeneratePlaceID() ID {
	id := b.NextPlaceID
	b.NextPlaceID++
	return id
}

// GenerateAffordanceID returns the next affordance id and advances the counter.
func (b *Breadboard) GenerateAffordanceID() ID {
	id := b.NextAffordanceID
	b.NextAffordanceID++
	return id
}

// SyncIDCounters resets both counters to one past the highest id present.
// Call it once after loading.
func (b *Breadboard) SyncIDCounters() {
	var maxPlace, maxAffordance ID
	for _, p := range b.Places {
		if p.ID > maxPlace {
			maxPlace = p.ID
		}
		for _, a := range p.Affordances {
			if a.ID > maxAffordance {
				maxAffordance = a.ID
			}
		}
	}
	b.NextPlaceID = maxPlace + 1
	b.NextAffordanceID = maxAffordance + 1
}

// AffordanceCount returns the number of affordances across all places.
func (b *Breadboard) AffordanceCount() int {
	n := 0
	for _, p := range b.Places {
		n += len(p.Affordances)
	}
	return n
}

// Validate checks id uniqueness. Dangling connections are not errors.
func (b *Breadboard) Validate() error {
	var errs []error
	seen := make(map[ID]bool)
	for _, p := range b.Places {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicatePlaceID, p.ID))
		}
		seen[p.ID] = true

		affSeen := make(map[ID]bool)
		for _, a := range p.Affordances {
			if affSeen[a.ID] {
				errs = append(errs, fmt.Errorf("%w: %d in place %d", ErrDuplicateAffordanceID, a.ID, p.ID))
			}
			affSeen[a.ID] = true
		}
	}
	return errors.Join(errs...)
}

// String returns a short summary of the breadboard.
func (b *Breadboard) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Breadboard: %s\n", b.Name))
	sb.WriteString(fmt.Sprintf("  Created: %s\n", b.Created))
	sb.WriteString(fmt.Sprintf("  Places: %d\n", len(b.Places)))
	sb.WriteString(fmt.Sprintf("  Affordances: %d\n", b.AffordanceCount()))
	return sb.String()
}

// WithGroup sets the place group.
func (p Place) WithGroup(group string) Place {
	p.Group = &group
	return p
}

// AddAffordance appends an affordance to the place.
func (p *Place) AddAffordance(a Affordance) {
	p.Affordances = append(p.Affordances, a)
}

// FindAffordance returns the affordance with the given id, or nil.
func (p *Place) FindAffordance(id ID) *Affordance {
	for i := range p.Affordances {
		if p.Affordances[i].ID == id {
			return &p.Affordances[i]
		}
	}
	return nil
}

// AffordanceIndex returns the index of an affordance, or -1 if not found.
func (p *Place) AffordanceIndex(id ID) int {
	for i := range p.Affordances {
		if p.Affordances[i].ID == id {
			return i
		}
	}
	return -1
}

// DeleteAffordance removes an affordance from the place.
func (p *Place) DeleteAffordance(id ID) bool {
	idx := p.AffordanceIndex(id)
	if idx < 0 {
		return false
	}
	p.Affordances = append(p.Affordances[:idx], p.Affordances[idx+1:]...)
	return true
}

// GroupName returns the group or an empty string.
func (p *Place) GroupName() string {
	if p.Group == nil {
		return ""
	}
	return *p.Group
}

// WithConnection sets the destination place.
func (a Affordance) WithConnection(dest ID) Affordance {
	a.Connect(dest)
	return a
}

// Connect points the affordance at a place.
func (a *Affordance) Connect(dest ID) {
	a.ConnectsTo = &dest
}

// Disconnect clears the destination.
func (a *Affordance) Disconnect() {
	a.ConnectsTo = nil
}

// Connected reports whether the affordance has a destination.
func (a *Affordance) Connected() bool {
	return a.ConnectsTo != nil
}
