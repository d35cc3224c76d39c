// Package tty implements the terminal that the kernel uses as its output
// sink. The terminal tracks a cursor and renders directly onto an attached
// console device.
package tty

import (
	"gopherboot/device/video/console"
	"io"
)

// DefaultTabWidth defines the number of spaces that tabs expand to.
const DefaultTabWidth = 4

// VT implements a terminal without scrollback. The terminal interprets the
// following special characters:
//   - \r (carriage-return)
//   - \n (line-feed)
//   - \b (backspace)
//   - \t (tab; expanded to tabWidth spaces)
//
// Once the cursor moves past the last line the console contents are scrolled
// up and the freed line is cleared.
type VT struct {
	cons console.Device

	// Terminal dimensions
	viewportWidth  uint32
	viewportHeight uint32

	// Terminal state.
	tabWidth         uint8
	defaultFg, curFg uint8
	defaultBg, curBg uint8
	cursorX          uint32
	cursorY          uint32
}

// AttachTo connects a TTY to a console instance and moves the cursor to the
// top-left corner.
func (t *VT) AttachTo(cons console.Device) {
	if cons == nil {
		return
	}

	if t.tabWidth == 0 {
		t.tabWidth = DefaultTabWidth
	}

	t.cons = cons
	t.viewportWidth, t.viewportHeight = cons.Dimensions(console.Characters)
	t.defaultFg, t.defaultBg = cons.DefaultColors()
	t.curFg, t.curBg = t.defaultFg, t.defaultBg
	t.cursorX, t.cursorY = 1, 1
}

// SetTabWidth sets the number of spaces that tabs expand to.
func (t *VT) SetTabWidth(tabWidth uint8) {
	t.tabWidth = tabWidth
}

// SetColors sets the attributes used for subsequent writes.
func (t *VT) SetColors(fg, bg uint8) {
	t.curFg, t.curBg = fg, bg
}

// ResetColors restores the default attributes of the attached console.
func (t *VT) ResetColors() {
	t.curFg, t.curBg = t.defaultFg, t.defaultBg
}

// Clear fills the viewport with the default background color and moves the
// cursor to the top-left corner.
func (t *VT) Clear() {
	if t.cons == nil {
		return
	}

	t.cons.Fill(1, 1, t.viewportWidth, t.viewportHeight, t.defaultFg, t.defaultBg)
	t.cursorX, t.cursorY = 1, 1
}

// CursorPosition returns the current cursor position.
func (t *VT) CursorPosition() (uint32, uint32) {
	return t.cursorX, t.cursorY
}

// SetCursorPosition sets the current cursor position to (x,y).
func (t *VT) SetCursorPosition(x, y uint32) {
	if t.cons == nil {
		return
	}

	if x < 1 {
		x = 1
	} else if x > t.viewportWidth {
		x = t.viewportWidth
	}

	if y < 1 {
		y = 1
	} else if y > t.viewportHeight {
		y = t.viewportHeight
	}

	t.cursorX, t.cursorY = x, y
}

// Write implements io.Writer.
func (t *VT) Write(data []byte) (int, error) {
	for count, b := range data {
		err := t.WriteByte(b)
		if err != nil {
			return count, err
		}
	}

	return len(data), nil
}

// WriteByte implements io.ByteWriter.
func (t *VT) WriteByte(b byte) error {
	if t.cons == nil || t.viewportWidth == 0 || t.viewportHeight == 0 {
		return io.ErrClosedPipe
	}

	switch b {
	case '\r':
		t.cursorX = 1
	case '\n':
		t.lf()
	case '\b':
		if t.cursorX > 1 {
			t.cursorX--
			t.doWrite(' ', false)
		}
	case '\t':
		for i := uint8(0); i < t.tabWidth; i++ {
			t.doWrite(' ', true)
		}
	default:
		t.doWrite(b, true)
	}

	return nil
}

// doWrite writes the specified character together with the current fg/bg
// attributes at the cursor position advancing the cursor if advanceCursor is
// true.
func (t *VT) doWrite(b byte, advanceCursor bool) {
	t.cons.Write(b, t.curFg, t.curBg, t.cursorX, t.cursorY)

	if advanceCursor {
		// Wrap when the cursor reaches the end of the current line
		t.cursorX++
		if t.cursorX > t.viewportWidth {
			t.lf()
		}
	}
}

// lf moves the cursor to the start of the next line scrolling the console
// contents if the cursor is already on the last line.
func (t *VT) lf() {
	t.cursorX = 1

	if t.cursorY < t.viewportHeight {
		t.cursorY++
		return
	}

	t.cons.Scroll(console.ScrollDirUp, 1)
	t.cons.Fill(1, t.cursorY, t.viewportWidth, 1, t.defaultFg, t.defaultBg)
}
