package editor

import (
	"fmt"
	"strings"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

// UnresolvedMarker is shown in place of a destination that does not exist.
const UnresolvedMarker = "[Unknown]"

// RowKind distinguishes outline rows.
type RowKind int

const (
	RowPlace RowKind = iota
	RowAffordance
	RowSpacer
)

// Row is one line of the board outline.
type Row struct {
	Kind       RowKind
	Text       string
	Place      breadboard.ID
	Affordance breadboard.ID
	Selected   bool
	Unresolved bool
}

// PickerView is the render model of whichever picker is open.
type PickerView struct {
	Title    string
	Query    string
	Items    []string
	Sentinel bool // Items[0] is the sentinel entry
	Selected int  // -1 when nothing is selected
	Empty    string
}

// Title returns the heading of the board panel.
func (e *Editor) Title() string {
	switch {
	case e.collapsed && e.filter:
		return "Breadboard (Filtered)"
	case e.collapsed:
		return "Breadboard (Collapsed)"
	}
	return "Breadboard"
}

// Rows returns the outline for the current layout.
func (e *Editor) Rows() []Row {
	if e.collapsed {
		return e.CollapsedRows()
	}
	return e.ExpandedRows()
}

// SelectedRow returns the index of the selected row in Rows, or -1.
func (e *Editor) SelectedRow() int {
	for i, r := range e.Rows() {
		if r.Selected {
			return i
		}
	}
	return -1
}

// incomingSources maps each destination to the names of the places whose
// affordances point at it, one entry per affordance.
func (e *Editor) incomingSources() map[breadboard.ID][]string {
	sources := make(map[breadboard.ID][]string)
	for _, p := range e.board.Places {
		for _, a := range p.Affordances {
			if a.ConnectsTo != nil {
				sources[*a.ConnectsTo] = append(sources[*a.ConnectsTo], p.Name)
			}
		}
	}
	return sources
}

// ExpandedRows lists every place followed by its affordances.
func (e *Editor) ExpandedRows() []Row {
	incoming := e.incomingSources()
	var rows []Row

	for i, p := range e.board.Places {
		header := "┌─ " + p.Name
		if names := incoming[p.ID]; len(names) > 0 {
			header += " (← " + strings.Join(names, ", ") + ")"
		}
		rows = append(rows, Row{
			Kind:     RowPlace,
			Text:     header,
			Place:    p.ID,
			Selected: e.selection == PlaceSelection(p.ID),
		})

		for _, a := range p.Affordances {
			row := Row{
				Kind:       RowAffordance,
				Place:      p.ID,
				Affordance: a.ID,
				Selected:   e.selection == AffordanceSelection(p.ID, a.ID),
			}
			switch {
			case a.ConnectsTo == nil:
				row.Text = "├─ " + a.Name
			case e.board.FindPlace(*a.ConnectsTo) == nil:
				row.Text = "├─ " + a.Name + " → " + UnresolvedMarker
				row.Unresolved = true
			default:
				row.Text = "├─ " + a.Name + " → " + e.board.FindPlace(*a.ConnectsTo).Name
			}
			rows = append(rows, row)
		}

		if i < len(e.board.Places)-1 {
			rows = append(rows, Row{Kind: RowSpacer})
		}
	}
	return rows
}

// CollapsedRows lists one line per place with its affordance count and its
// incoming and outgoing neighbours. With the filter on, only places
// connected to the selected one are listed.
func (e *Editor) CollapsedRows() []Row {
	incoming := e.incomingSources()
	visible := make(map[breadboard.ID]bool)
	for _, id := range e.navigablePlaces() {
		visible[id] = true
	}

	var rows []Row
	for _, p := range e.board.Places {
		if !visible[p.ID] {
			continue
		}
		text := fmt.Sprintf("%s (%d)", p.Name, len(p.Affordances))
		if names := incoming[p.ID]; len(names) > 0 {
			text += " ← " + strings.Join(names, ", ")
		}
		var dests []string
		for _, dest := range e.board.OutgoingConnections(p.ID) {
			if d := e.board.FindPlace(dest); d != nil {
				dests = append(dests, d.Name)
			}
		}
		if len(dests) > 0 {
			text += " → " + strings.Join(dests, ", ")
		}

		owner, _ := e.selection.OwningPlace()
		rows = append(rows, Row{
			Kind:     RowPlace,
			Text:     text,
			Place:    p.ID,
			Selected: !e.selection.IsNone() && owner == p.ID,
		})
	}
	return rows
}

// PickerView returns the open picker, if any.
func (e *Editor) PickerView() (PickerView, bool) {
	var v PickerView
	switch {
	case e.mode == ModeConnect:
		v = PickerView{Title: "Connect to place", Query: e.connect.Query(),
			Items: e.connect.Names(), Sentinel: true, Empty: "No places found"}
		v.Selected = selectedIndex(e.connect.Selected())
	case e.mode == ModeOpenFile:
		v = PickerView{Title: "Open file", Query: e.files.Query(),
			Items: e.files.Names(), Empty: "No files found"}
		v.Selected = selectedIndex(e.files.Selected())
	case e.mode == ModeNavigate && e.jump.Active():
		v = PickerView{Title: "Jump to place", Query: e.jump.Query(),
			Items: e.jump.Names(), Empty: "No places found"}
		v.Selected = selectedIndex(e.jump.Selected())
	default:
		return v, false
	}
	return v, true
}

func selectedIndex(i int, ok bool) int {
	if !ok {
		return -1
	}
	return i
}
