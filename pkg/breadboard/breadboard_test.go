package breadboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New("Test Board")
	assert.Equal(t, "Test Board", b.Name)
	assert.Empty(t, b.Places)
	assert.Equal(t, ID(1), b.NextPlaceID)
	assert.Equal(t, ID(1), b.NextAffordanceID)
	assert.NotEmpty(t, b.Created)
}

func TestNewPlaceAllocatesSequentialIDs(t *testing.T) {
	b := New("ids")
	a := b.NewPlace("A")
	assert.Equal(t, ID(1), a.ID)
	bp := b.NewPlace("B")
	assert.Equal(t, ID(2), bp.ID)
	c := b.NewPlace("C")
	assert.Equal(t, ID(3), c.ID)
	assert.Equal(t, ID(4), b.NextPlaceID)

	assert.Equal(t, []string{"A", "B", "C"}, placeNames(b))
}

func TestNewAffordance(t *testing.T) {
	b := New("aff")
	p := b.NewPlace("Invoice")

	a := b.NewAffordance(p.ID, "Turn on Autopay")
	require.NotNil(t, a)
	assert.Equal(t, ID(1), a.ID)
	assert.Nil(t, a.ConnectsTo)

	// Unknown place consumes no id
	assert.Nil(t, b.NewAffordance(99, "nope"))
	assert.Equal(t, ID(2), b.NextAffordanceID)

	second := b.NewAffordance(p.ID, "View Details")
	require.NotNil(t, second)
	assert.Equal(t, ID(2), second.ID)
	assert.Len(t, b.FindPlace(p.ID).Affordances, 2)
}

func TestAddAffordanceToUnknownPlaceIsNoop(t *testing.T) {
	b := New("noop")
	b.NewPlace("A")
	ok := b.AddAffordanceTo(42, Affordance{ID: 1, Name: "x"})
	assert.False(t, ok)
	assert.Empty(t, b.Places[0].Affordances)
}

func TestFindPlace(t *testing.T) {
	b := New("find")
	p := b.NewPlace("Test Place")

	found := b.FindPlace(p.ID)
	require.NotNil(t, found)
	assert.Equal(t, "Test Place", found.Name)

	assert.Nil(t, b.FindPlace(999))
	assert.Equal(t, -1, b.PlaceIndex(999))

	// Mutations through the pointer are visible
	found.Name = "Renamed"
	assert.Equal(t, "Renamed", b.Places[0].Name)
}

func TestIncomingConnections(t *testing.T) {
	b := New("incoming")
	p1 := b.NewPlace("Place 1").ID
	p2 := b.NewPlace("Place 2").ID
	p3 := b.NewPlace("Place 3").ID

	b.NewAffordance(p1, "Go to Place 2").Connect(p2)
	b.NewAffordance(p3, "Also to Place 2").Connect(p2)
	b.NewAffordance(p3, "Unconnected")

	incoming := b.IncomingConnections(p2)
	require.Len(t, incoming, 2)
	assert.Equal(t, "Place 1", incoming[0].Place.Name)
	assert.Equal(t, "Go to Place 2", incoming[0].Affordance.Name)
	assert.Equal(t, "Place 3", incoming[1].Place.Name)
	assert.Equal(t, "Also to Place 2", incoming[1].Affordance.Name)

	assert.Empty(t, b.IncomingConnections(p1))
}

func TestConnectedPlaces(t *testing.T) {
	b := New("connected")
	a := b.NewPlace("A").ID
	bb := b.NewPlace("B").ID
	c := b.NewPlace("C").ID
	d := b.NewPlace("D").ID

	b.NewAffordance(a, "to B").Connect(bb)
	b.NewAffordance(c, "to A").Connect(a)

	set := b.ConnectedPlaces(a)
	assert.True(t, set[a])
	assert.True(t, set[bb])
	assert.True(t, set[c])
	assert.False(t, set[d])
}

func TestDeletePlaceLeavesDanglingReferences(t *testing.T) {
	b := New("dangling")
	a := b.NewPlace("A").ID
	bID := b.NewPlace("B").ID
	c := b.NewPlace("C").ID
	b.NewAffordance(a, "to B").Connect(bID)

	assert.True(t, b.DeletePlace(bID))
	assert.Equal(t, []string{"A", "C"}, placeNames(b))
	assert.Nil(t, b.FindPlace(bID))

	aff := b.FindPlace(a).Affordances[0]
	require.NotNil(t, aff.ConnectsTo)
	assert.Equal(t, bID, *aff.ConnectsTo)

	dangling := b.DanglingConnections()
	require.Len(t, dangling, 1)
	assert.Equal(t, "to B", dangling[0].Affordance.Name)

	// Deleting again is a silent no-op
	assert.False(t, b.DeletePlace(bID))
	assert.NotNil(t, b.FindPlace(c))
}

func TestDeleteAffordance(t *testing.T) {
	b := New("delete")
	p := b.NewPlace("A").ID
	first := b.NewAffordance(p, "one").ID
	second := b.NewAffordance(p, "two").ID

	assert.True(t, b.DeleteAffordance(p, first))
	assert.False(t, b.DeleteAffordance(p, first))
	assert.False(t, b.DeleteAffordance(99, second))

	place := b.FindPlace(p)
	require.Len(t, place.Affordances, 1)
	assert.Equal(t, "two", place.Affordances[0].Name)
}

func TestGeneratedIDsNeverReusedAfterDelete(t *testing.T) {
	b := New("monotonic")
	b.NewPlace("A")
	last := b.NewPlace("B").ID
	b.DeletePlace(last)

	next := b.NewPlace("C").ID
	assert.Equal(t, ID(3), next)
}

func TestSyncIDCounters(t *testing.T) {
	tests := []struct {
		name      string
		board     *Breadboard
		wantPlace ID
		wantAff   ID
	}{
		{
			name:      "empty board",
			board:     &Breadboard{NextPlaceID: 40, NextAffordanceID: 7},
			wantPlace: 1,
			wantAff:   1,
		},
		{
			name: "stale counters are raised",
			board: &Breadboard{
				NextPlaceID:      1,
				NextAffordanceID: 1,
				Places: []Place{
					{ID: 5, Affordances: []Affordance{{ID: 3}, {ID: 9}}},
					{ID: 2, Affordances: []Affordance{{ID: 4}}},
				},
			},
			wantPlace: 6,
			wantAff:   10,
		},
		{
			name: "counters too high are lowered",
			board: &Breadboard{
				NextPlaceID:      100,
				NextAffordanceID: 100,
				Places:           []Place{{ID: 1}},
			},
			wantPlace: 2,
			wantAff:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.board.SyncIDCounters()
			assert.Equal(t, tt.wantPlace, tt.board.NextPlaceID)
			assert.Equal(t, tt.wantAff, tt.board.NextAffordanceID)
		})
	}
}

func TestIDsUniqueAcrossNormalEditing(t *testing.T) {
	b := New("unique")
	for i := 0; i < 20; i++ {
		p := b.NewPlace("p")
		for j := 0; j < 3; j++ {
			b.NewAffordance(p.ID, "a")
		}
		if i%4 == 0 {
			b.DeletePlace(p.ID)
		}
	}
	require.NoError(t, b.Validate())
}

func TestValidate(t *testing.T) {
	b := &Breadboard{
		Places: []Place{
			{ID: 1, Affordances: []Affordance{{ID: 1}, {ID: 1}}},
			{ID: 1},
			{ID: 2, Affordances: []Affordance{{ID: 1}}},
		},
	}
	err := b.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicatePlaceID))
	assert.True(t, errors.Is(err, ErrDuplicateAffordanceID))

	// Same affordance id in different places is tolerated
	ok := &Breadboard{
		Places: []Place{
			{ID: 1, Affordances: []Affordance{{ID: 1}}},
			{ID: 2, Affordances: []Affordance{{ID: 1, ConnectsTo: idPtr(77)}}},
		},
	}
	assert.NoError(t, ok.Validate())
}

func TestBuilders(t *testing.T) {
	p := Place{ID: 1, Name: "Test Place"}.WithGroup("web")
	require.NotNil(t, p.Group)
	assert.Equal(t, "web", p.GroupName())

	a := Affordance{ID: 1, Name: "Click Me"}.WithConnection(2)
	require.NotNil(t, a.ConnectsTo)
	assert.Equal(t, ID(2), *a.ConnectsTo)
	assert.True(t, a.Connected())

	a.Disconnect()
	assert.False(t, a.Connected())
}

func placeNames(b *Breadboard) []string {
	names := make([]string, 0, len(b.Places))
	for _, p := range b.Places {
		names = append(names, p.Name)
	}
	return names
}

func idPtr(id ID) *ID {
	return &id
}
