package editor

import "unicode/utf8"

// TextBuffer is a single line of editable text with a cursor measured in
// runes.
type TextBuffer struct {
	runes  []rune
	cursor int
}

// Set replaces the text and moves the cursor to the end.
func (b *TextBuffer) Set(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
}

// Reset empties the buffer.
func (b *TextBuffer) Reset() {
	b.runes = nil
	b.cursor = 0
}

// String returns the text.
func (b *TextBuffer) String() string { return string(b.runes) }

// Cursor returns the cursor position in runes.
func (b *TextBuffer) Cursor() int { return b.cursor }

// Len returns the text length in runes.
func (b *TextBuffer) Len() int { return len(b.runes) }

// Apply performs one text delta.
func (b *TextBuffer) Apply(d TextDelta) {
	switch d.Op {
	case DeltaInsert:
		b.insert(d.Text)
	case DeltaBackspace:
		if b.cursor > 0 {
			b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
			b.cursor--
		}
	case DeltaDelete:
		if b.cursor < len(b.runes) {
			b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
		}
	case DeltaLeft:
		if b.cursor > 0 {
			b.cursor--
		}
	case DeltaRight:
		if b.cursor < len(b.runes) {
			b.cursor++
		}
	case DeltaHome:
		b.cursor = 0
	case DeltaEnd:
		b.cursor = len(b.runes)
	}
}

func (b *TextBuffer) insert(s string) {
	if s == "" || !utf8.ValidString(s) {
		return
	}
	ins := []rune(s)
	out := make([]rune, 0, len(b.runes)+len(ins))
	out = append(out, b.runes[:b.cursor]...)
	out = append(out, ins...)
	out = append(out, b.runes[b.cursor:]...)
	b.runes = out
	b.cursor += len(ins)
}
