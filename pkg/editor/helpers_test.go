package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

// abcBoard has places A(1), B(2), C(3); A has an affordance connecting to B.
func abcBoard() *breadboard.Breadboard {
	b := breadboard.New("abc")
	a := b.NewPlace("A").ID
	bID := b.NewPlace("B").ID
	b.NewPlace("C")
	b.NewAffordance(a, "Go to B").Connect(bID)
	return b
}

// outlineBoard has A with two affordances, B with none and C with one.
func outlineBoard() *breadboard.Breadboard {
	b := breadboard.New("outline")
	a := b.NewPlace("A").ID
	b.NewPlace("B")
	c := b.NewPlace("C").ID
	b.NewAffordance(a, "a1")
	b.NewAffordance(a, "a2")
	b.NewAffordance(c, "c1")
	return b
}

func dispatchAll(e *Editor, actions ...Action) {
	for _, a := range actions {
		e.Dispatch(a)
	}
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.Dispatch(Insert(string(r)))
	}
}

func selectAffordance(t *testing.T, e *Editor, placeName, affName string) {
	t.Helper()
	for _, p := range e.Board().Places {
		if p.Name != placeName {
			continue
		}
		for _, a := range p.Affordances {
			if a.Name == affName {
				e.selection = AffordanceSelection(p.ID, a.ID)
				return
			}
		}
	}
	require.FailNow(t, "no such affordance", "%s/%s", placeName, affName)
}
