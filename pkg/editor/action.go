package editor

import "fmt"

// ActionKind enumerates the abstract actions the dispatcher understands.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionNavigateUp
	ActionNavigateDown
	ActionNavigateLeft
	ActionNavigateRight
	ActionSelect
	ActionBack
	ActionNewPlace
	ActionNewAffordance
	ActionNewConnection
	ActionRemoveConnection
	ActionToggleCollapsed
	ActionToggleFilter
	ActionSave
	ActionSaveAs
	ActionOpen
	ActionEnterEdit
	ActionEnterConnect
	ActionDelete
	ActionEdit
)

var actionNames = map[ActionKind]string{
	ActionNone:             "none",
	ActionQuit:             "quit",
	ActionNavigateUp:       "navigate-up",
	ActionNavigateDown:     "navigate-down",
	ActionNavigateLeft:     "navigate-left",
	ActionNavigateRight:    "navigate-right",
	ActionSelect:           "select",
	ActionBack:             "back",
	ActionNewPlace:         "new-place",
	ActionNewAffordance:    "new-affordance",
	ActionNewConnection:    "new-connection",
	ActionRemoveConnection: "remove-connection",
	ActionToggleCollapsed:  "toggle-collapsed",
	ActionToggleFilter:     "toggle-filter",
	ActionSave:             "save",
	ActionSaveAs:           "save-as",
	ActionOpen:             "open",
	ActionEnterEdit:        "enter-edit",
	ActionEnterConnect:     "enter-connect",
	ActionDelete:           "delete",
	ActionEdit:             "edit",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// DeltaOp is a text editing operation.
type DeltaOp int

const (
	DeltaInsert DeltaOp = iota
	DeltaBackspace
	DeltaDelete
	DeltaLeft
	DeltaRight
	DeltaHome
	DeltaEnd
)

// TextDelta is one change to a text buffer. Text is only used by DeltaInsert.
type TextDelta struct {
	Op   DeltaOp
	Text string
}

// Action is an input-independent command.
type Action struct {
	Kind  ActionKind
	Delta TextDelta
}

// Do returns an action without a text delta.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

// Insert returns an edit action that inserts text.
func Insert(text string) Action {
	return Action{Kind: ActionEdit, Delta: TextDelta{Op: DeltaInsert, Text: text}}
}

// EditOp returns an edit action for a non-insert delta.
func EditOp(op DeltaOp) Action {
	return Action{Kind: ActionEdit, Delta: TextDelta{Op: op}}
}

func (a Action) String() string {
	if a.Kind != ActionEdit {
		return a.Kind.String()
	}
	switch a.Delta.Op {
	case DeltaInsert:
		return fmt.Sprintf("edit(insert %q)", a.Delta.Text)
	case DeltaBackspace:
		return "edit(backspace)"
	case DeltaDelete:
		return "edit(delete)"
	case DeltaLeft:
		return "edit(left)"
	case DeltaRight:
		return "edit(right)"
	case DeltaHome:
		return "edit(home)"
	case DeltaEnd:
		return "edit(end)"
	}
	return "edit(?)"
}
