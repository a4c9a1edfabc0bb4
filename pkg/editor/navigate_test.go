package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

func TestSelectFollowsConnectionAndBackReturns(t *testing.T) {
	e := New(abcBoard())
	selectAffordance(t, e, "A", "Go to B")

	e.Dispatch(Do(ActionSelect))
	assert.Equal(t, PlaceSelection(2), e.Selection())
	assert.Equal(t, []breadboard.ID{1}, e.Trail())

	e.Dispatch(Do(ActionBack))
	assert.Equal(t, PlaceSelection(1), e.Selection())
	assert.Empty(t, e.Trail())
}

func TestBackWithEmptyTrailIsNoop(t *testing.T) {
	e := New(abcBoard())
	before := e.Selection()
	assert.NotPanics(t, func() {
		e.Dispatch(Do(ActionBack))
		e.Dispatch(Do(ActionBack))
	})
	assert.Equal(t, before, e.Selection())
}

func TestNavigateToPlaceWithoutSelectionPushesNothing(t *testing.T) {
	e := New(abcBoard())
	e.selection = NoSelection()

	require.True(t, e.navigateToPlace(3))
	assert.Equal(t, PlaceSelection(3), e.Selection())
	assert.Empty(t, e.Trail())
}

func TestNavigateToMissingPlaceIsRefused(t *testing.T) {
	e := New(abcBoard())
	assert.False(t, e.navigateToPlace(99))
	assert.Equal(t, PlaceSelection(1), e.Selection())
	assert.Empty(t, e.Trail())
	assert.Equal(t, MsgWarning, e.Message().Type)
}

func TestBackSkipsDeletedPlaces(t *testing.T) {
	e := New(abcBoard())
	e.trail.Push(1)
	e.trail.Push(3)
	e.board.DeletePlace(3)
	e.selection = PlaceSelection(2)

	require.True(t, e.navigateBack())
	assert.Equal(t, PlaceSelection(1), e.Selection())
	assert.Empty(t, e.Trail())
}

func TestSelectOnDanglingConnection(t *testing.T) {
	e := New(abcBoard())
	e.board.DeletePlace(2)
	selectAffordance(t, e, "A", "Go to B")

	e.Dispatch(Do(ActionSelect))
	assert.True(t, e.Selection().IsAffordance())
	assert.Empty(t, e.Trail())
	assert.Contains(t, e.Message().Text, "no longer exists")
}

func TestVerticalMovementExpanded(t *testing.T) {
	e := New(outlineBoard())
	b := e.Board()
	a1 := b.Places[0].Affordances[0].ID
	a2 := b.Places[0].Affordances[1].ID
	c1 := b.Places[2].Affordances[0].ID

	steps := []struct {
		action ActionKind
		want   Selection
	}{
		{ActionNavigateDown, AffordanceSelection(1, a1)},
		{ActionNavigateDown, AffordanceSelection(1, a2)},
		{ActionNavigateDown, PlaceSelection(2)},
		{ActionNavigateDown, PlaceSelection(3)},
		{ActionNavigateDown, AffordanceSelection(3, c1)},
		{ActionNavigateDown, AffordanceSelection(3, c1)}, // last place, stays
		{ActionNavigateUp, PlaceSelection(3)},
		{ActionNavigateUp, PlaceSelection(2)},
		{ActionNavigateUp, PlaceSelection(1)},
		{ActionNavigateUp, PlaceSelection(1)}, // first place, stays
	}

	for i, s := range steps {
		e.Dispatch(Do(s.action))
		assert.Equal(t, s.want, e.Selection(), "step %d", i)
	}
}

func TestAffordanceUpWalksList(t *testing.T) {
	e := New(outlineBoard())
	selectAffordance(t, e, "A", "a2")

	e.Dispatch(Do(ActionNavigateUp))
	assert.Equal(t, "a1", e.selectedName())
	e.Dispatch(Do(ActionNavigateUp))
	assert.Equal(t, PlaceSelection(1), e.Selection())
}

func TestHorizontalMovement(t *testing.T) {
	e := New(outlineBoard())
	selectAffordance(t, e, "A", "a2")

	e.Dispatch(Do(ActionNavigateRight))
	assert.Equal(t, PlaceSelection(2), e.Selection())
	e.Dispatch(Do(ActionNavigateRight))
	assert.Equal(t, PlaceSelection(3), e.Selection())
	e.Dispatch(Do(ActionNavigateRight))
	assert.Equal(t, PlaceSelection(3), e.Selection(), "no wraparound")

	selectAffordance(t, e, "C", "c1")
	e.Dispatch(Do(ActionNavigateLeft))
	assert.Equal(t, PlaceSelection(3), e.Selection())
	e.Dispatch(Do(ActionNavigateLeft))
	assert.Equal(t, PlaceSelection(2), e.Selection())
	e.Dispatch(Do(ActionNavigateLeft))
	e.Dispatch(Do(ActionNavigateLeft))
	assert.Equal(t, PlaceSelection(1), e.Selection(), "no wraparound")
}

func TestMovementWithoutSelectionSelectsFirstPlace(t *testing.T) {
	for _, kind := range []ActionKind{ActionNavigateUp, ActionNavigateDown, ActionNavigateLeft, ActionNavigateRight} {
		e := New(outlineBoard())
		e.selection = NoSelection()
		e.Dispatch(Do(kind))
		assert.Equal(t, PlaceSelection(1), e.Selection(), kind.String())
	}
}

func TestMovementOnEmptyBoard(t *testing.T) {
	e := New(nil)
	assert.NotPanics(t, func() {
		dispatchAll(e, Do(ActionNavigateUp), Do(ActionNavigateDown),
			Do(ActionNavigateLeft), Do(ActionNavigateRight), Do(ActionSelect), Do(ActionBack))
	})
	assert.True(t, e.Selection().IsNone())
}

func TestCollapsedMovementIsPlaceLevel(t *testing.T) {
	e := New(outlineBoard())
	e.Dispatch(Do(ActionToggleCollapsed))
	require.True(t, e.Collapsed())

	e.Dispatch(Do(ActionNavigateDown))
	assert.Equal(t, PlaceSelection(2), e.Selection())
	e.Dispatch(Do(ActionNavigateDown))
	assert.Equal(t, PlaceSelection(3), e.Selection())
	e.Dispatch(Do(ActionNavigateUp))
	assert.Equal(t, PlaceSelection(2), e.Selection())
}

func TestCollapsingMovesAffordanceSelectionToOwner(t *testing.T) {
	e := New(outlineBoard())
	selectAffordance(t, e, "A", "a1")
	e.Dispatch(Do(ActionToggleCollapsed))
	assert.Equal(t, PlaceSelection(1), e.Selection())
}

func TestFilteredCollapsedMovement(t *testing.T) {
	b := breadboard.New("filter")
	a := b.NewPlace("A").ID
	b.NewPlace("B")
	c := b.NewPlace("C").ID
	b.NewAffordance(a, "to C").Connect(c)

	e := New(b)
	dispatchAll(e, Do(ActionToggleCollapsed), Do(ActionToggleFilter))
	assert.Equal(t, "Breadboard (Filtered)", e.Title())

	// B is not connected to A, so Down skips it
	e.Dispatch(Do(ActionNavigateDown))
	assert.Equal(t, PlaceSelection(c), e.Selection())
}
