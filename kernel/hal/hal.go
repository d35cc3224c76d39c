// Package hal connects the kernel output path to the display that the loader
// handed over.
package hal

import (
	"gopherboot/device/tty"
	"gopherboot/device/video/console"
	"gopherboot/device/video/console/font"
	"gopherboot/handoff"
	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
)

var (
	// The active console and terminal. Both are statically allocated as
	// the kernel has no heap.
	activeConsole console.FramebufferConsole
	activeTTY     tty.VT

	errNoFramebuffer = &kernel.Error{Module: "hal", Message: "handoff does not describe a usable framebuffer"}
	errNoFont        = &kernel.Error{Module: "hal", Message: "no font fits the framebuffer console"}
)

// InitTerminal attaches the framebuffer described by info to the kernel
// console, selects the font that best fits its resolution, links the
// terminal to the console and redirects kfmt output to the terminal. Output
// buffered before this call is flushed to the terminal.
func InitTerminal(info *handoff.FramebufferInfo) *kernel.Error {
	if info == nil || info.Pointer == 0 || info.Size == 0 {
		return errNoFramebuffer
	}

	activeConsole.InitFromHandoff(info)

	consW, consH := activeConsole.Dimensions(console.Pixels)
	selFont := font.BestFit(consW, consH)
	if selFont == nil {
		return errNoFont
	}
	activeConsole.SetFont(selFont)

	if w, h := activeConsole.Dimensions(console.Characters); w == 0 || h == 0 {
		return errNoFont
	}

	linkTTYToConsole()
	return nil
}

// ActiveTTY returns the kernel terminal.
func ActiveTTY() *tty.VT {
	return &activeTTY
}

// linkTTYToConsole connects the terminal to the active console, clears the
// screen and makes the terminal the kfmt output sink.
func linkTTYToConsole() {
	activeTTY.AttachTo(&activeConsole)
	activeTTY.Clear()
	kfmt.SetOutputSink(&activeTTY)
}
