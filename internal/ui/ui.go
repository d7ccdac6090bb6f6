// Package ui implements the interactive clipboard history screen.
package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/jdlouhy/termclip/internal/clipboard"
	"github.com/jdlouhy/termclip/internal/sanitize"
)

// UI is a minimal full-screen picker over the clipboard history. Enter
// copies the selected entry through the sanitizing boundary, 'r' copies it
// raw, and bracketed paste into the screen records the pasted text as a new
// inbound-sanitized capture.
type UI struct {
	screen   tcell.Screen
	boundary *clipboard.Boundary
	history  *clipboard.History

	selected int
	status   string

	// bracketed paste accumulation
	pasting  bool
	pasteBuf strings.Builder
}

// New initializes the terminal screen.
func New(boundary *clipboard.Boundary, history *clipboard.History) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnablePaste()

	return &UI{
		screen:   screen,
		boundary: boundary,
		history:  history,
		status:   "Enter: copy  r: copy raw  j/k: move  q: quit",
	}, nil
}

// Close restores the terminal.
func (u *UI) Close() {
	u.screen.Fini()
}

// Run drives the event loop until the user quits.
func (u *UI) Run() error {
	for {
		u.draw()

		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventPaste:
			u.handlePaste(ev)
		case *tcell.EventKey:
			if u.pasting {
				u.collectPasteKey(ev)
				continue
			}
			if done := u.handleKey(ev); done {
				return nil
			}
		}
	}
}

// handleKey processes a key outside of a paste. It reports whether the UI
// should exit.
func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.moveSelection(-1)
	case tcell.KeyDown:
		u.moveSelection(1)
	case tcell.KeyEnter:
		u.copySelected(false)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			u.moveSelection(-1)
		case 'j':
			u.moveSelection(1)
		case 'r':
			u.copySelected(true)
		}
	}
	return false
}

func (u *UI) moveSelection(delta int) {
	n := u.history.Len()
	if n == 0 {
		return
	}
	u.selected += delta
	if u.selected < 0 {
		u.selected = 0
	}
	if u.selected >= n {
		u.selected = n - 1
	}
}

// copySelected sends the selected entry to the clipboard, raw or sanitized.
func (u *UI) copySelected(raw bool) {
	entries := u.history.Recent(0)
	if u.selected >= len(entries) {
		return
	}
	entry := entries[u.selected]

	var err error
	if raw {
		err = u.boundary.CopyRaw(entry.Content)
	} else {
		err = u.boundary.Copy(entry.Content)
	}
	if err != nil {
		u.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	if raw {
		u.status = "copied (raw)"
	} else {
		u.status = "copied (sanitized)"
	}
}

// handlePaste tracks bracketed paste boundaries. Pasted characters arrive
// as key events between the start and end markers.
func (u *UI) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		u.pasting = true
		u.pasteBuf.Reset()
		return
	}
	if ev.End() {
		u.pasting = false
		text := sanitize.Inbound(u.pasteBuf.String())
		if text != "" {
			u.history.Record(text)
			u.selected = 0
			u.status = "recorded paste"
		}
	}
}

func (u *UI) collectPasteKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		u.pasteBuf.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		u.pasteBuf.WriteByte('\n')
	case tcell.KeyTab:
		u.pasteBuf.WriteByte('\t')
	}
}

func (u *UI) draw() {
	u.screen.Clear()
	width, height := u.screen.Size()

	title := "termclip history"
	u.drawText(0, 0, tcell.StyleDefault.Bold(true), title)

	entries := u.history.Recent(0)
	if len(entries) == 0 {
		u.drawText(0, 2, tcell.StyleDefault.Dim(true), "no captures yet; paste into this screen to record")
	}

	maxRows := height - 3
	for i, entry := range entries {
		if i >= maxRows {
			break
		}
		style := tcell.StyleDefault
		if i == u.selected {
			style = style.Reverse(true)
		}
		u.drawText(0, 2+i, style, previewLine(entry.Content, width))
	}

	u.drawText(0, height-1, tcell.StyleDefault.Dim(true), u.status)
	u.screen.Show()
}

func (u *UI) drawText(x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		u.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// previewLine renders an entry's first line, truncated to the screen width.
func previewLine(content string, width int) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i] + " …"
	}
	runes := []rune(line)
	if width > 0 && len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}
