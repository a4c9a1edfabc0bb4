package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/breadboard/pkg/editor"
)

// ctrlOrMeta matches Ctrl+key, or Cmd/Alt+rune on terminals that report the
// modifier on the rune instead.
func ctrlOrMeta(ev *tcell.EventKey, key tcell.Key, r rune) bool {
	if ev.Key() == key {
		return true
	}
	if ev.Key() != tcell.KeyRune || ev.Rune() != r {
		return false
	}
	mod := ev.Modifiers()
	return mod&tcell.ModMeta != 0 || mod&tcell.ModAlt != 0
}

// mapKey translates a key event into an editor action for the current context.
func mapKey(ev *tcell.EventKey, mode editor.Mode, jumping bool) editor.Action {
	if ctrlOrMeta(ev, tcell.KeyCtrlQ, 'q') {
		return editor.Do(editor.ActionQuit)
	}

	switch mode {
	case editor.ModeNavigate:
		if jumping {
			return mapSearchKey(ev)
		}
		return mapNavigateKey(ev)
	case editor.ModeConnect, editor.ModeOpenFile:
		return mapSearchKey(ev)
	case editor.ModeEdit, editor.ModeSaveFile:
		return mapInputKey(ev)
	case editor.ModeConfirmDelete:
		return mapConfirmKey(ev)
	}
	return editor.Action{}
}

var navigateCtrl = []struct {
	key  tcell.Key
	r    rune
	kind editor.ActionKind
}{
	{tcell.KeyCtrlC, 'c', editor.ActionEnterConnect},
	{tcell.KeyCtrlR, 'r', editor.ActionRemoveConnection},
	{tcell.KeyCtrlN, 'n', editor.ActionNewPlace},
	{tcell.KeyCtrlA, 'a', editor.ActionNewAffordance},
	{tcell.KeyCtrlL, 'l', editor.ActionNewConnection},
	{tcell.KeyCtrlF, 'f', editor.ActionToggleFilter},
	{tcell.KeyCtrlS, 's', editor.ActionSave},
	{tcell.KeyCtrlW, 'w', editor.ActionSaveAs},
	{tcell.KeyCtrlO, 'o', editor.ActionOpen},
	{tcell.KeyCtrlD, 'd', editor.ActionDelete},
}

func mapNavigateKey(ev *tcell.EventKey) editor.Action {
	for _, c := range navigateCtrl {
		if ctrlOrMeta(ev, c.key, c.r) {
			return editor.Do(c.kind)
		}
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return editor.Do(editor.ActionNavigateUp)
	case tcell.KeyDown:
		return editor.Do(editor.ActionNavigateDown)
	case tcell.KeyLeft, tcell.KeyBacktab:
		return editor.Do(editor.ActionNavigateLeft)
	case tcell.KeyRight, tcell.KeyTab:
		return editor.Do(editor.ActionNavigateRight)
	case tcell.KeyEnter:
		return editor.Do(editor.ActionSelect)
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Do(editor.ActionBack)
	case tcell.KeyDelete:
		return editor.Do(editor.ActionDelete)
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return editor.Action{}
		}
		switch ev.Rune() {
		case 'e':
			return editor.Do(editor.ActionEnterEdit)
		case 'c':
			return editor.Do(editor.ActionToggleCollapsed)
		}
		// Anything else starts the place search
		return editor.Insert(string(ev.Rune()))
	}
	return editor.Action{}
}

// mapSearchKey serves the pickers: arrows move, typing edits the query.
func mapSearchKey(ev *tcell.EventKey) editor.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return editor.Do(editor.ActionNavigateUp)
	case tcell.KeyDown:
		return editor.Do(editor.ActionNavigateDown)
	case tcell.KeyEnter:
		return editor.Do(editor.ActionSelect)
	case tcell.KeyEscape:
		return editor.Do(editor.ActionBack)
	}
	return mapTextKey(ev)
}

func mapInputKey(ev *tcell.EventKey) editor.Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return editor.Do(editor.ActionSelect)
	case tcell.KeyEscape:
		return editor.Do(editor.ActionBack)
	}
	return mapTextKey(ev)
}

func mapTextKey(ev *tcell.EventKey) editor.Action {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.EditOp(editor.DeltaBackspace)
	case tcell.KeyDelete:
		return editor.EditOp(editor.DeltaDelete)
	case tcell.KeyLeft:
		return editor.EditOp(editor.DeltaLeft)
	case tcell.KeyRight:
		return editor.EditOp(editor.DeltaRight)
	case tcell.KeyHome:
		return editor.EditOp(editor.DeltaHome)
	case tcell.KeyEnd:
		return editor.EditOp(editor.DeltaEnd)
	case tcell.KeyRune:
		return editor.Insert(string(ev.Rune()))
	}
	return editor.Action{}
}

func mapConfirmKey(ev *tcell.EventKey) editor.Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return editor.Do(editor.ActionSelect)
	case tcell.KeyEscape:
		return editor.Do(editor.ActionBack)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			return editor.Do(editor.ActionSelect)
		case 'n', 'N':
			return editor.Do(editor.ActionBack)
		}
	}
	return editor.Action{}
}
