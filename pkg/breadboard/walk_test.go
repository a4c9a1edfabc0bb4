package breadboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkBoard() *Breadboard {
	b := New("walk")
	invoice := b.NewPlace("Invoice").ID
	setup := b.NewPlace("Setup Autopay").ID
	confirm := b.NewPlace("Confirm").ID
	b.NewAffordance(invoice, "Turn on Autopay").Connect(setup)
	b.NewAffordance(invoice, "Pay by hand")
	b.NewAffordance(setup, "CC Fields").Connect(confirm)
	b.NewAffordance(confirm, "Broken").Connect(99)
	return b
}

func TestWalkerFollow(t *testing.T) {
	w, err := NewWalker(walkBoard(), 0)
	require.NoError(t, err)
	assert.Equal(t, "Invoice", w.Current().Name)

	dest, err := w.Follow(0)
	require.NoError(t, err)
	assert.Equal(t, "Setup Autopay", dest.Name)

	dest, err = w.Follow(0)
	require.NoError(t, err)
	assert.Equal(t, "Confirm", dest.Name)

	require.Len(t, w.History(), 2)
	assert.Equal(t, "CC Fields", w.History()[1].Affordance)
}

func TestWalkerErrors(t *testing.T) {
	_, err := NewWalker(New("empty"), 0)
	assert.True(t, errors.Is(err, ErrNoPlaces))

	_, err = NewWalker(walkBoard(), 42)
	assert.True(t, errors.Is(err, ErrUnknownPlace))

	w, err := NewWalker(walkBoard(), 1)
	require.NoError(t, err)

	_, err = w.Follow(5)
	assert.True(t, errors.Is(err, ErrNoAffordance))
	_, err = w.Follow(1)
	assert.True(t, errors.Is(err, ErrNotConnected))

	w, err = NewWalker(walkBoard(), 3)
	require.NoError(t, err)
	_, err = w.Follow(0)
	assert.True(t, errors.Is(err, ErrUnresolvedPlace))
	assert.Equal(t, "Confirm", w.Current().Name)
	assert.Empty(t, w.History())
}

func TestWalkerBackAndReset(t *testing.T) {
	w, err := NewWalker(walkBoard(), 0)
	require.NoError(t, err)
	assert.False(t, w.Back())

	_, err = w.Follow(0)
	require.NoError(t, err)
	_, err = w.Follow(0)
	require.NoError(t, err)

	assert.True(t, w.Back())
	assert.Equal(t, "Setup Autopay", w.Current().Name)

	w.Reset()
	assert.Equal(t, "Invoice", w.Current().Name)
	assert.Empty(t, w.History())
}
