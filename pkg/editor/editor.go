// Package editor holds the interactive state of a breadboard editing session:
// the board, the selection and back trail, the current mode and the three
// search pickers. It is driven by abstract Actions and never touches a
// terminal; the front end maps keys to Actions and renders the read-only
// views.
package editor

import (
	"time"

	"go.uber.org/zap"

	"github.com/ha1tch/breadboard/pkg/breadboard"
	"github.com/ha1tch/breadboard/pkg/picker"
)

// Store loads and saves breadboards by name.
type Store interface {
	ListFiles() ([]string, error)
	Load(name string) (*breadboard.Breadboard, error)
	Save(name string, b *breadboard.Breadboard) error
}

// Message is the status line content.
type Message struct {
	Text string
	Type MessageType
	At   time.Time
}

// RemoveConnectionLabel names the sentinel entry of the connection picker.
const RemoveConnectionLabel = "Remove connection"

// Editor holds all editor state
type Editor struct {
	board     *breadboard.Breadboard
	selection Selection
	trail     Trail
	mode      Mode
	collapsed bool
	filter    bool
	quit      bool

	// Edit and SaveFile share the input buffer
	input      TextBuffer
	editTarget Selection

	connect *picker.Picker[breadboard.ID]
	files   *picker.Picker[string]
	jump    *picker.Picker[breadboard.ID]
	listing []string

	store         Store
	filename      string
	modified      bool
	defaultFile   string
	extension     string
	confirmDelete bool

	message Message
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// WithStore sets the store used by save and open.
func WithStore(s Store) Option {
	return func(e *Editor) { e.store = s }
}

// WithConfirmDelete makes Delete ask for confirmation first.
func WithConfirmDelete(on bool) Option {
	return func(e *Editor) { e.confirmDelete = on }
}

// WithDefaultFilename sets the name offered when saving an unnamed board.
func WithDefaultFilename(name string) Option {
	return func(e *Editor) { e.defaultFile = name }
}

// WithExtension sets the extension appended to names typed without one.
func WithExtension(ext string) Option {
	return func(e *Editor) { e.extension = ext }
}

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// New creates an editor over b. A nil board starts an empty one.
func New(b *breadboard.Breadboard, opts ...Option) *Editor {
	if b == nil {
		b = breadboard.New("Untitled")
	}
	e := &Editor{
		board:       b,
		defaultFile: "breadboard.toml",
		extension:   "toml",
		now:         time.Now,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.connect = picker.New(e.placeIDs, e.placeName,
		picker.WithSentinel(breadboard.ID(0), RemoveConnectionLabel))
	e.files = picker.New(func() []string { return e.listing },
		func(s string) string { return s })
	e.jump = picker.New(e.placeIDs, e.placeName)

	e.selectFirstPlace()
	return e
}

func (e *Editor) placeIDs() []breadboard.ID {
	ids := make([]breadboard.ID, len(e.board.Places))
	for i, p := range e.board.Places {
		ids[i] = p.ID
	}
	return ids
}

func (e *Editor) placeName(id breadboard.ID) string {
	if p := e.board.FindPlace(id); p != nil {
		return p.Name
	}
	return UnresolvedMarker
}

func (e *Editor) selectFirstPlace() {
	if len(e.board.Places) == 0 {
		e.selection = NoSelection()
		return
	}
	e.selection = PlaceSelection(e.board.Places[0].ID)
}

// showMessage sets the status line.
func (e *Editor) showMessage(msg string, msgType MessageType) {
	e.message = Message{Text: msg, Type: msgType, At: e.now()}
}

func (e *Editor) setMode(m Mode) {
	if m == e.mode {
		return
	}
	e.logger.Debug("mode change", zap.Stringer("from", e.mode), zap.Stringer("to", m))
	e.mode = m
}

// Board returns the board being edited.
func (e *Editor) Board() *breadboard.Breadboard { return e.board }

// Selection returns the focused entity.
func (e *Editor) Selection() Selection { return e.selection }

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// Trail returns the back trail, bottom first.
func (e *Editor) Trail() []breadboard.ID { return e.trail.IDs() }

// Collapsed reports whether the collapsed view is shown.
func (e *Editor) Collapsed() bool { return e.collapsed }

// Filter reports whether the connected filter is on.
func (e *Editor) Filter() bool { return e.filter }

// Jumping reports whether the place-jump search is open.
func (e *Editor) Jumping() bool { return e.jump.Active() }

// EditBuffer returns the input text and cursor of the Edit and SaveFile modes.
func (e *Editor) EditBuffer() (string, int) { return e.input.String(), e.input.Cursor() }

// Message returns the status message.
func (e *Editor) Message() Message { return e.message }

// Filename returns the name the board was last loaded from or saved to.
func (e *Editor) Filename() string { return e.filename }

// SetFilename names an unsaved board.
func (e *Editor) SetFilename(name string) { e.filename = name }

// Modified reports unsaved changes.
func (e *Editor) Modified() bool { return e.modified }

// Done reports whether Quit was dispatched.
func (e *Editor) Done() bool { return e.quit }
