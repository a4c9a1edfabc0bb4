package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/breadboard/pkg/bbfile"
)

func TestSavedInOtherFormatCanBeReopened(t *testing.T) {
	store := bbfile.NewDirStore(t.TempDir(), "toml")

	e := New(abcBoard(), WithStore(store))
	e.Dispatch(Do(ActionSaveAs))
	require.Equal(t, ModeSaveFile, e.Mode())
	e.Dispatch(EditOp(DeltaHome))
	for range "breadboard.toml" {
		e.Dispatch(EditOp(DeltaDelete))
	}
	typeText(e, "flow.json")
	e.Dispatch(Do(ActionSelect))
	require.Equal(t, "flow.json", e.Filename())
	assert.Equal(t, MsgSuccess, e.Message().Type)

	other := New(nil, WithStore(store))
	other.Dispatch(Do(ActionOpen))
	require.Equal(t, ModeOpenFile, other.Mode())
	v, ok := other.PickerView()
	require.True(t, ok)
	assert.Equal(t, []string{"flow.json"}, v.Items)

	other.Dispatch(Do(ActionSelect))
	assert.Equal(t, ModeNavigate, other.Mode())
	assert.Equal(t, "flow.json", other.Filename())
	assert.Len(t, other.Board().Places, 3)
	assert.False(t, other.Modified())
}
