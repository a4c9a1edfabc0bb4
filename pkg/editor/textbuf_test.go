package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextBuffer(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		deltas     []TextDelta
		wantText   string
		wantCursor int
	}{
		{
			name:       "insert at end",
			initial:    "ab",
			deltas:     []TextDelta{{Op: DeltaInsert, Text: "c"}},
			wantText:   "abc",
			wantCursor: 3,
		},
		{
			name:       "backspace removes before cursor",
			initial:    "abc",
			deltas:     []TextDelta{{Op: DeltaLeft}, {Op: DeltaBackspace}},
			wantText:   "ac",
			wantCursor: 1,
		},
		{
			name:       "delete removes at cursor",
			initial:    "abc",
			deltas:     []TextDelta{{Op: DeltaHome}, {Op: DeltaDelete}},
			wantText:   "bc",
			wantCursor: 0,
		},
		{
			name:       "delete at end is a no-op",
			initial:    "abc",
			deltas:     []TextDelta{{Op: DeltaDelete}},
			wantText:   "abc",
			wantCursor: 3,
		},
		{
			name:       "backspace at start is a no-op",
			initial:    "abc",
			deltas:     []TextDelta{{Op: DeltaHome}, {Op: DeltaBackspace}},
			wantText:   "abc",
			wantCursor: 0,
		},
		{
			name:       "insert in the middle",
			initial:    "ac",
			deltas:     []TextDelta{{Op: DeltaLeft}, {Op: DeltaInsert, Text: "b"}},
			wantText:   "abc",
			wantCursor: 2,
		},
		{
			name:       "cursor clamps",
			initial:    "ab",
			deltas:     []TextDelta{{Op: DeltaRight}, {Op: DeltaRight}, {Op: DeltaHome}, {Op: DeltaLeft}},
			wantText:   "ab",
			wantCursor: 0,
		},
		{
			name:       "multibyte runes",
			initial:    "héllo",
			deltas:     []TextDelta{{Op: DeltaHome}, {Op: DeltaRight}, {Op: DeltaDelete}, {Op: DeltaInsert, Text: "ö"}},
			wantText:   "höllo",
			wantCursor: 2,
		},
		{
			name:       "invalid utf8 is dropped",
			initial:    "a",
			deltas:     []TextDelta{{Op: DeltaInsert, Text: "\xff"}},
			wantText:   "a",
			wantCursor: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b TextBuffer
			b.Set(tt.initial)
			for _, d := range tt.deltas {
				b.Apply(d)
			}
			assert.Equal(t, tt.wantText, b.String())
			assert.Equal(t, tt.wantCursor, b.Cursor())
		})
	}
}

func TestTextBufferReset(t *testing.T) {
	var b TextBuffer
	b.Set("abc")
	b.Reset()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, 0, b.Len())
}
