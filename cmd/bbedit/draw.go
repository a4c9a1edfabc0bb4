package main

import (
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/breadboard/pkg/editor"
)

// Styles
var (
	styleDefault    = tcell.StyleDefault
	styleTitle      = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	stylePlace      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleAffordance = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleUnresolved = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSelected   = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	styleSentinel   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgWarning = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCursor     = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorNavy)
	styleInput      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Status messages flash for flashPeriod after they appear.
const (
	flashPhase  = 125 * time.Millisecond
	flashPeriod = 4 * flashPhase
)

// flashInverted reports whether a flashing message is drawn inverted after
// elapsed. Phases 1 and 3 of the four are inverted.
func flashInverted(elapsed time.Duration) bool {
	if elapsed < 0 || elapsed >= flashPeriod {
		return false
	}
	phase := elapsed / flashPhase
	return phase == 1 || phase == 3
}

// flashes reports whether messages of type t flash at all.
func flashes(t editor.MessageType) bool {
	switch t {
	case editor.MsgError, editor.MsgSuccess, editor.MsgWarning:
		return true
	}
	return false
}

func (a *app) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if w < 10 || h < 6 {
		a.drawString(0, 0, "Window too small", styleDefault)
		return
	}

	a.drawTitledBox(0, 0, w, h-2, a.ed.Title())
	if len(a.ed.Board().Places) == 0 {
		a.drawEmptyHelp(w, h)
	} else {
		a.drawRows(w, h)
	}

	if v, ok := a.ed.PickerView(); ok {
		a.drawPicker(w, h, v)
	}
	switch a.ed.Mode() {
	case editor.ModeEdit:
		a.drawInputBox(w, h, "Name: ")
	case editor.ModeSaveFile:
		a.drawInputBox(w, h, "Save as: ")
	}

	a.drawStatusBar(w, h)
}

func (a *app) drawEmptyHelp(w, h int) {
	lines := []string{
		"No places yet. Press Ctrl+N to create a place.",
		"",
		"Ctrl+A  add an affordance to the selected place",
		"Ctrl+C  connect the selected affordance",
		"Ctrl+O  open a file",
		"Ctrl+Q  quit",
	}
	y := (h - 2 - len(lines)) / 2
	for i, line := range lines {
		x := (w - runewidth.StringWidth(lines[0])) / 2
		if x < 2 {
			x = 2
		}
		a.drawString(x, y+i, truncate(line, w-4), styleHelp)
	}
}

// drawRows draws the outline inside the board box, scrolled so the selected
// row stays visible.
func (a *app) drawRows(w, h int) {
	rows := a.ed.Rows()
	visible := h - 4
	if visible < 1 {
		return
	}

	sel := a.ed.SelectedRow()
	if sel >= 0 {
		if sel < a.scroll {
			a.scroll = sel
		}
		if sel >= a.scroll+visible {
			a.scroll = sel - visible + 1
		}
	}
	if a.scroll > len(rows)-visible {
		a.scroll = len(rows) - visible
	}
	if a.scroll < 0 {
		a.scroll = 0
	}

	width := w - 4
	for i := 0; i < visible && a.scroll+i < len(rows); i++ {
		row := rows[a.scroll+i]
		x, y := 2, 1+i
		style := styleAffordance
		switch {
		case row.Kind == editor.RowSpacer:
			continue
		case row.Kind == editor.RowPlace:
			style = stylePlace
		case row.Kind == editor.RowAffordance:
			x = 3
			if row.Unresolved {
				style = styleUnresolved
			}
		}
		if row.Selected {
			style = styleSelected
		}
		a.drawString(x, y, truncate(row.Text, width-(x-2)), style)
	}
}

func (a *app) drawPicker(w, h int, v editor.PickerView) {
	boxW := 50
	if boxW > w-4 {
		boxW = w - 4
	}
	maxItems := h - 10
	if maxItems < 1 {
		maxItems = 1
	}
	n := len(v.Items)
	if n == 0 {
		n = 1
	}
	if n > maxItems {
		n = maxItems
	}
	boxH := n + 4
	boxX := (w - boxW) / 2
	boxY := (h - 2 - boxH) / 2

	a.drawBox(boxX, boxY, boxW, boxH, styleDefault)
	a.drawString(boxX+2, boxY, " "+v.Title+" ", styleTitle)
	a.drawString(boxX+2, boxY+1, truncate("> "+v.Query+"_", boxW-4), styleInput)

	if len(v.Items) == 0 {
		a.drawString(boxX+2, boxY+3, truncate(v.Empty, boxW-4), styleHelp)
		return
	}

	// Keep the selection inside the window
	start := 0
	if v.Selected >= n {
		start = v.Selected - n + 1
	}
	for i := 0; i < n && start+i < len(v.Items); i++ {
		idx := start + i
		style := styleDefault
		if v.Sentinel && idx == 0 {
			style = styleSentinel
		}
		if idx == v.Selected {
			style = styleSelected
		}
		line := padRight(" "+truncate(v.Items[idx], boxW-6), boxW-4)
		a.drawString(boxX+2, boxY+3+i, line, style)
	}
}

func (a *app) drawInputBox(w, h int, prompt string) {
	boxW := 50
	if boxW > w-4 {
		boxW = w - 4
	}
	boxH := 3
	boxX := (w - boxW) / 2
	boxY := (h - 2 - boxH) / 2

	a.drawBox(boxX, boxY, boxW, boxH, styleInput)
	a.drawString(boxX+2, boxY+1, prompt, styleInput)

	text, cursor := a.ed.EditBuffer()
	runes := []rune(text)
	x := boxX + 2 + runewidth.StringWidth(prompt)
	limit := boxX + boxW - 2
	for i := 0; i <= len(runes) && x < limit; i++ {
		r, style := ' ', styleInput
		if i < len(runes) {
			r = runes[i]
		}
		if i == cursor {
			style = styleCursor
		}
		a.screen.SetContent(x, boxY+1, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

func (a *app) drawStatusBar(w, h int) {
	y := h - 1
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	fileInfo := "[New]"
	if name := a.ed.Filename(); name != "" {
		fileInfo = name
		if runewidth.StringWidth(name) > 30 {
			fileInfo = filepath.Base(name)
		}
	}
	if a.ed.Modified() {
		fileInfo += " *"
	}
	a.drawString(1, y, fileInfo, styleStatus)

	mode := a.ed.Mode().String()
	a.drawString(w/2-runewidth.StringWidth(mode)/2, y, mode, styleStatus)

	if msg := a.ed.Message(); msg.Text != "" {
		style := styleMsgInfo
		switch msg.Type {
		case editor.MsgError:
			style = styleMsgError
		case editor.MsgWarning:
			style = styleMsgWarning
		case editor.MsgSuccess:
			style = styleMsgSuccess
		}
		if flashes(msg.Type) && flashInverted(a.now().Sub(msg.At)) {
			style = style.Reverse(true)
		}
		text := truncate(msg.Text, w/2-2)
		a.drawString(w-runewidth.StringWidth(text)-2, y, text, style)
	}

	y = h - 2
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	a.drawString(1, y, truncate(helpString(a.ed.Mode(), a.ed.Jumping()), w-2), styleHelp)
}

func helpString(mode editor.Mode, jumping bool) string {
	switch mode {
	case editor.ModeNavigate:
		if jumping {
			return "Type to search  ↑↓:Select  Enter:Jump  Esc:Cancel"
		}
		return "↑↓←→:Move  Enter:Follow  Esc:Back  e:Rename  c:Collapse  ^N:Place  ^A:Affordance  ^C:Connect  ^L:Quick link  ^R:Unlink  ^F:Filter  Del:Delete  ^S:Save  ^W:Save as  ^O:Open  ^Q:Quit"
	case editor.ModeEdit:
		return "Type name  Enter:Confirm  Esc:Cancel"
	case editor.ModeConnect:
		return "Type to search  ↑↓:Select  Enter:Connect  Esc:Cancel"
	case editor.ModeOpenFile:
		return "Type to search  ↑↓:Select  Enter:Open  Esc:Cancel"
	case editor.ModeSaveFile:
		return "Type filename  Enter:Save  Esc:Cancel"
	case editor.ModeConfirmDelete:
		return "y:Delete  n:Keep"
	}
	return "Ctrl+Q:Quit"
}

// drawTitledBox draws a bordered box with a centred title
func (a *app) drawTitledBox(x, y, w, h int, title string) {
	a.drawBox(x, y, w, h, styleDefault)
	if title == "" {
		return
	}
	tw := runewidth.StringWidth(title)
	titleX := x + (w-tw-2)/2
	a.screen.SetContent(titleX, y, ' ', nil, styleBorder)
	a.drawString(titleX+1, y, title, styleTitle)
	a.screen.SetContent(titleX+1+tw, y, ' ', nil, styleBorder)
}

func (a *app) drawBox(x, y, w, h int, style tcell.Style) {
	// Corners
	a.screen.SetContent(x, y, '┌', nil, styleBorder)
	a.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)
	a.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	a.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)

	for i := x + 1; i < x+w-1; i++ {
		a.screen.SetContent(i, y, '─', nil, styleBorder)
		a.screen.SetContent(i, y+h-1, '─', nil, styleBorder)
	}
	for i := y + 1; i < y+h-1; i++ {
		a.screen.SetContent(x, i, '│', nil, styleBorder)
		a.screen.SetContent(x+w-1, i, '│', nil, styleBorder)
	}

	// Fill
	for row := y + 1; row < y+h-1; row++ {
		for col := x + 1; col < x+w-1; col++ {
			a.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawString draws s advancing by display width, so wide runes take two cells.
func (a *app) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
