package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

// Dispatch applies one action in the context of the current mode. Actions
// that mean nothing in that context are ignored.
func (e *Editor) Dispatch(a Action) {
	if a.Kind == ActionNone {
		return
	}
	e.logger.Debug("dispatch",
		zap.Stringer("action", a),
		zap.Stringer("mode", e.mode),
		zap.Bool("jumping", e.jump.Active()))

	if a.Kind == ActionQuit {
		e.quit = true
		return
	}

	switch e.mode {
	case ModeNavigate:
		if e.jump.Active() {
			e.dispatchJump(a)
			return
		}
		e.dispatchNavigate(a)
	case ModeEdit:
		e.dispatchEdit(a)
	case ModeConnect:
		e.dispatchConnect(a)
	case ModeOpenFile:
		e.dispatchOpenFile(a)
	case ModeSaveFile:
		e.dispatchSaveFile(a)
	case ModeConfirmDelete:
		e.dispatchConfirmDelete(a)
	}
}

func (e *Editor) dispatchNavigate(a Action) {
	switch a.Kind {
	case ActionNavigateUp:
		e.moveUp()
	case ActionNavigateDown:
		e.moveDown()
	case ActionNavigateLeft:
		e.moveLeft()
	case ActionNavigateRight:
		e.moveRight()
	case ActionSelect:
		e.followConnection()
	case ActionBack:
		e.navigateBack()
	case ActionNewPlace:
		e.newPlace()
	case ActionNewAffordance:
		e.newAffordance()
	case ActionNewConnection:
		e.quickConnect()
	case ActionRemoveConnection:
		e.removeConnection()
	case ActionToggleCollapsed:
		e.toggleCollapsed()
	case ActionToggleFilter:
		e.toggleFilter()
	case ActionSave:
		e.save()
	case ActionSaveAs:
		e.startSaveAs()
	case ActionOpen:
		e.startOpen()
	case ActionEnterEdit:
		e.startEdit()
	case ActionEnterConnect:
		e.startConnect()
	case ActionDelete:
		e.requestDelete()
	case ActionEdit:
		// Typing in Navigate starts the place jump
		if a.Delta.Op == DeltaInsert && a.Delta.Text != "" {
			e.jump.Start()
			e.jump.AppendQuery(a.Delta.Text)
		}
	}
}

// queryEditor is the part of a picker that text deltas act on. Queries only
// grow or shrink at the end, so cursor movement is ignored.
type queryEditor interface {
	AppendQuery(s string)
	Backspace()
}

func applyQueryDelta(q queryEditor, d TextDelta) {
	switch d.Op {
	case DeltaInsert:
		q.AppendQuery(d.Text)
	case DeltaBackspace, DeltaDelete:
		q.Backspace()
	}
}

func (e *Editor) dispatchJump(a Action) {
	switch a.Kind {
	case ActionNavigateUp:
		e.jump.MoveUp()
	case ActionNavigateDown:
		e.jump.MoveDown()
	case ActionSelect:
		if choice, ok := e.jump.Commit(); ok {
			e.navigateToPlace(choice.Value)
		}
	case ActionBack:
		e.jump.Cancel()
	case ActionEdit:
		applyQueryDelta(e.jump, a.Delta)
	}
}

// Edit mode

func (e *Editor) startEdit() {
	if !e.selection.Resolves(e.board) {
		e.showMessage("Select a place or affordance first", MsgInfo)
		return
	}
	e.input.Set(e.selectedName())
	e.editTarget = e.selection
	e.setMode(ModeEdit)
}

func (e *Editor) selectedName() string {
	switch e.selection.Kind {
	case SelectPlace:
		if p := e.board.FindPlace(e.selection.Place); p != nil {
			return p.Name
		}
	case SelectAffordance:
		if a := e.board.FindAffordance(e.selection.Place, e.selection.Affordance); a != nil {
			return a.Name
		}
	}
	return ""
}

func (e *Editor) dispatchEdit(a Action) {
	switch a.Kind {
	case ActionSelect:
		e.commitEdit()
	case ActionBack:
		e.input.Reset()
		e.setMode(ModeNavigate)
	case ActionEdit:
		e.input.Apply(a.Delta)
	}
}

func (e *Editor) commitEdit() {
	newName := e.input.String()
	e.input.Reset()
	e.setMode(ModeNavigate)

	var name *string
	switch e.editTarget.Kind {
	case SelectPlace:
		if p := e.board.FindPlace(e.editTarget.Place); p != nil {
			name = &p.Name
		}
	case SelectAffordance:
		if a := e.board.FindAffordance(e.editTarget.Place, e.editTarget.Affordance); a != nil {
			name = &a.Name
		}
	}
	if name == nil || newName == "" || newName == *name {
		return
	}

	oldName := *name
	*name = newName
	e.modified = true
	e.showMessage("Renamed: "+oldName+" → "+newName, MsgSuccess)
}

// Connect mode

func (e *Editor) startConnect() {
	if !e.selection.IsAffordance() || !e.selection.Resolves(e.board) {
		e.showMessage("Select an affordance to connect", MsgInfo)
		return
	}
	e.connect.Start()
	e.setMode(ModeConnect)
}

func (e *Editor) dispatchConnect(a Action) {
	switch a.Kind {
	case ActionNavigateUp:
		e.connect.MoveUp()
	case ActionNavigateDown:
		e.connect.MoveDown()
	case ActionSelect:
		e.commitConnect()
	case ActionBack:
		e.connect.Cancel()
		e.setMode(ModeNavigate)
	case ActionEdit:
		applyQueryDelta(e.connect, a.Delta)
	}
}

func (e *Editor) commitConnect() {
	choice, ok := e.connect.Commit()
	e.setMode(ModeNavigate)
	if !ok {
		return
	}

	aff := e.board.FindAffordance(e.selection.Place, e.selection.Affordance)
	if aff == nil {
		return
	}
	if choice.Sentinel {
		aff.Disconnect()
		e.modified = true
		e.showMessage("Removed connection from "+aff.Name, MsgSuccess)
		return
	}
	aff.Connect(choice.Value)
	e.modified = true
	e.showMessage("Connected: "+aff.Name+" → "+e.placeName(choice.Value), MsgSuccess)
}

// File modes

func (e *Editor) startOpen() {
	if e.store == nil {
		e.showMessage("No file store configured", MsgError)
		return
	}
	files, err := e.store.ListFiles()
	if err != nil {
		e.logger.Error("list files", zap.Error(err))
		e.showMessage("Error: "+err.Error(), MsgError)
		return
	}
	e.listing = files
	e.files.Start()
	e.setMode(ModeOpenFile)
	if len(files) == 0 {
		e.showMessage("No files found", MsgInfo)
	}
}

func (e *Editor) dispatchOpenFile(a Action) {
	switch a.Kind {
	case ActionNavigateUp:
		e.files.MoveUp()
	case ActionNavigateDown:
		e.files.MoveDown()
	case ActionSelect:
		choice, ok := e.files.Commit()
		e.listing = nil
		e.setMode(ModeNavigate)
		if ok {
			e.load(choice.Value)
		}
	case ActionBack:
		e.files.Cancel()
		e.listing = nil
		e.setMode(ModeNavigate)
	case ActionEdit:
		applyQueryDelta(e.files, a.Delta)
	}
}

// LoadFile replaces the board with the named document from the store.
func (e *Editor) LoadFile(name string) error {
	if e.store == nil {
		return fmt.Errorf("no file store configured")
	}
	b, err := e.store.Load(name)
	if err != nil {
		return err
	}
	e.replaceBoard(b, name)
	return nil
}

func (e *Editor) load(name string) {
	if err := e.LoadFile(name); err != nil {
		e.logger.Error("load failed", zap.String("file", name), zap.Error(err))
		e.showMessage("Error: "+err.Error(), MsgError)
		return
	}
	e.logger.Info("loaded", zap.String("file", name),
		zap.Int("places", len(e.board.Places)))
	e.showMessage("Loaded: "+name, MsgSuccess)
}

func (e *Editor) replaceBoard(b *breadboard.Breadboard, name string) {
	e.board = b
	e.trail.Clear()
	e.selectFirstPlace()
	e.filename = name
	e.modified = false
}

func (e *Editor) save() {
	if e.filename == "" {
		e.startSaveAs()
		return
	}
	e.saveTo(e.filename)
}

func (e *Editor) startSaveAs() {
	name := e.filename
	if name == "" {
		name = e.defaultFile
	}
	e.input.Set(name)
	e.setMode(ModeSaveFile)
}

func (e *Editor) dispatchSaveFile(a Action) {
	switch a.Kind {
	case ActionSelect:
		name := strings.TrimSpace(e.input.String())
		e.input.Reset()
		e.setMode(ModeNavigate)
		if name == "" {
			e.showMessage("Cancelled", MsgInfo)
			return
		}
		e.saveTo(name)
	case ActionBack:
		e.input.Reset()
		e.setMode(ModeNavigate)
		e.showMessage("Cancelled", MsgInfo)
	case ActionEdit:
		e.input.Apply(a.Delta)
	}
}

func (e *Editor) saveTo(name string) {
	if e.store == nil {
		e.showMessage("No file store configured", MsgError)
		return
	}
	// Add the default extension if none
	if filepath.Ext(name) == "" && e.extension != "" {
		name += "." + e.extension
	}
	if err := e.store.Save(name, e.board); err != nil {
		e.logger.Error("save failed", zap.String("file", name), zap.Error(err))
		e.showMessage("Error: "+err.Error(), MsgError)
		return
	}
	e.filename = name
	e.modified = false
	e.logger.Info("saved", zap.String("file", name))
	e.showMessage("Saved: "+name, MsgSuccess)
}

// Delete

func (e *Editor) requestDelete() {
	if !e.selection.Resolves(e.board) {
		return
	}
	if !e.confirmDelete {
		e.deleteSelected()
		return
	}
	e.setMode(ModeConfirmDelete)
	e.showMessage(fmt.Sprintf("Delete %s? (y/n)", e.selectedName()), MsgWarning)
}

func (e *Editor) dispatchConfirmDelete(a Action) {
	switch a.Kind {
	case ActionSelect:
		e.setMode(ModeNavigate)
		e.deleteSelected()
	case ActionBack:
		e.setMode(ModeNavigate)
		e.showMessage("Delete cancelled", MsgInfo)
	}
}

func (e *Editor) deleteSelected() {
	name := e.selectedName()
	switch e.selection.Kind {
	case SelectPlace:
		if e.board.DeletePlace(e.selection.Place) {
			e.selection = NoSelection()
			e.modified = true
			e.showMessage("Deleted place: "+name, MsgSuccess)
		}
	case SelectAffordance:
		owner := e.selection.Place
		if e.board.DeleteAffordance(owner, e.selection.Affordance) {
			e.selection = PlaceSelection(owner)
			e.modified = true
			e.showMessage("Deleted affordance: "+name, MsgSuccess)
		}
	}
}

// Structure edits

func (e *Editor) newPlace() {
	p := e.board.NewPlace(fmt.Sprintf("Place %d", len(e.board.Places)+1))
	e.selection = PlaceSelection(p.ID)
	e.modified = true
	e.showMessage("Added place: "+p.Name, MsgSuccess)
}

func (e *Editor) newAffordance() {
	owner, ok := e.selection.OwningPlace()
	p := e.board.FindPlace(owner)
	if !ok || p == nil {
		e.showMessage("Select a place first", MsgWarning)
		return
	}
	a := e.board.NewAffordance(owner, fmt.Sprintf("Action %d", len(p.Affordances)+1))
	e.selection = AffordanceSelection(owner, a.ID)
	e.modified = true
	e.showMessage("Added affordance: "+a.Name, MsgSuccess)
}

// quickConnect points the selected affordance at the first place other than
// its owner.
func (e *Editor) quickConnect() {
	if !e.selection.IsAffordance() {
		return
	}
	aff := e.board.FindAffordance(e.selection.Place, e.selection.Affordance)
	if aff == nil {
		return
	}
	for _, p := range e.board.Places {
		if p.ID == e.selection.Place {
			continue
		}
		aff.Connect(p.ID)
		e.modified = true
		e.showMessage("Connected: "+aff.Name+" → "+p.Name, MsgSuccess)
		return
	}
	e.showMessage("No other place to connect to", MsgWarning)
}

func (e *Editor) removeConnection() {
	if !e.selection.IsAffordance() {
		return
	}
	aff := e.board.FindAffordance(e.selection.Place, e.selection.Affordance)
	if aff == nil || !aff.Connected() {
		return
	}
	aff.Disconnect()
	e.modified = true
	e.showMessage("Removed connection from "+aff.Name, MsgSuccess)
}

// followConnection navigates along the selected affordance's connection.
func (e *Editor) followConnection() {
	if !e.selection.IsAffordance() {
		return
	}
	aff := e.board.FindAffordance(e.selection.Place, e.selection.Affordance)
	if aff == nil {
		return
	}
	if aff.ConnectsTo == nil {
		e.showMessage(aff.Name+" is not connected", MsgInfo)
		return
	}
	e.navigateToPlace(*aff.ConnectsTo)
}

// View toggles

func (e *Editor) toggleCollapsed() {
	e.collapsed = !e.collapsed
	// The collapsed view has no affordance rows
	if e.collapsed && e.selection.IsAffordance() {
		e.selection = PlaceSelection(e.selection.Place)
	}
	if e.collapsed {
		e.showMessage("Collapsed view", MsgInfo)
	} else {
		e.showMessage("Expanded view", MsgInfo)
	}
}

func (e *Editor) toggleFilter() {
	e.filter = !e.filter
	if e.filter {
		e.showMessage("Filter: connected places", MsgInfo)
	} else {
		e.showMessage("Filter off", MsgInfo)
	}
}
