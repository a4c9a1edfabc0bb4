package bbfile

import (
	"fmt"
	"math"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

// document is the on-disk representation of a breadboard. The same field
// names are used by every format.
type document struct {
	Name             string          `toml:"name" json:"name" yaml:"name"`
	Created          string          `toml:"created" json:"created" yaml:"created"`
	NextPlaceID      breadboard.ID   `toml:"next_place_id" json:"next_place_id" yaml:"next_place_id"`
	NextAffordanceID breadboard.ID   `toml:"next_affordance_id" json:"next_affordance_id" yaml:"next_affordance_id"`
	Places           []documentPlace `toml:"places" json:"places" yaml:"places"`
}

type documentPlace struct {
	ID          breadboard.ID        `toml:"id" json:"id" yaml:"id"`
	Name        string               `toml:"name" json:"name" yaml:"name"`
	Group       *string              `toml:"group,omitempty" json:"group,omitempty" yaml:"group,omitempty"`
	Affordances []documentAffordance `toml:"affordances" json:"affordances" yaml:"affordances"`
}

type documentAffordance struct {
	ID         breadboard.ID  `toml:"id" json:"id" yaml:"id"`
	Name       string         `toml:"name" json:"name" yaml:"name"`
	ConnectsTo *breadboard.ID `toml:"connects_to,omitempty" json:"connects_to,omitempty" yaml:"connects_to,omitempty"`
}

// newDocument returns a document whose counters default to 1 when the
// decoded input does not carry them.
func newDocument() *document {
	return &document{NextPlaceID: 1, NextAffordanceID: 1}
}

func fromBreadboard(b *breadboard.Breadboard) *document {
	d := &document{
		Name:             b.Name,
		Created:          b.Created,
		NextPlaceID:      b.NextPlaceID,
		NextAffordanceID: b.NextAffordanceID,
		Places:           make([]documentPlace, 0, len(b.Places)),
	}
	for _, p := range b.Places {
		dp := documentPlace{
			ID:          p.ID,
			Name:        p.Name,
			Group:       p.Group,
			Affordances: make([]documentAffordance, 0, len(p.Affordances)),
		}
		for _, a := range p.Affordances {
			dp.Affordances = append(dp.Affordances, documentAffordance{
				ID:         a.ID,
				Name:       a.Name,
				ConnectsTo: a.ConnectsTo,
			})
		}
		d.Places = append(d.Places, dp)
	}
	return d
}

// checkIDs rejects documents holding the largest id. The counters could not
// advance past it, so new ids would wrap around into the loaded ones.
func (d *document) checkIDs() error {
	const last = breadboard.ID(math.MaxUint32)
	for _, p := range d.Places {
		if p.ID == last {
			return fmt.Errorf("place id %d leaves no room for new ids", p.ID)
		}
		for _, a := range p.Affordances {
			if a.ID == last {
				return fmt.Errorf("affordance id %d leaves no room for new ids", a.ID)
			}
		}
	}
	return nil
}

// toBreadboard converts a decoded document and resynchronises the counters.
func (d *document) toBreadboard() *breadboard.Breadboard {
	b := &breadboard.Breadboard{
		Name:             d.Name,
		Created:          d.Created,
		NextPlaceID:      d.NextPlaceID,
		NextAffordanceID: d.NextAffordanceID,
		Places:           make([]breadboard.Place, 0, len(d.Places)),
	}
	for _, dp := range d.Places {
		p := breadboard.Place{
			ID:          dp.ID,
			Name:        dp.Name,
			Group:       dp.Group,
			Affordances: make([]breadboard.Affordance, 0, len(dp.Affordances)),
		}
		for _, da := range dp.Affordances {
			p.Affordances = append(p.Affordances, breadboard.Affordance{
				ID:         da.ID,
				Name:       da.Name,
				ConnectsTo: da.ConnectsTo,
			})
		}
		b.Places = append(b.Places, p)
	}
	b.SyncIDCounters()
	return b
}
