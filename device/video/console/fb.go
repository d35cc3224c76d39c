package console

import (
	"gopherboot/device/video/console/font"
	"gopherboot/handoff"
	"gopherboot/kernel"
	"image/color"
)

const paletteSize = 16

// egaPalette holds the default colors for indices 0-15.
var egaPalette = [paletteSize]color.RGBA{
	{R: 0, G: 0, B: 0},       /* black */
	{R: 0, G: 0, B: 128},     /* blue */
	{R: 0, G: 128, B: 1},     /* green */
	{R: 0, G: 128, B: 128},   /* cyan */
	{R: 128, G: 0, B: 1},     /* red */
	{R: 128, G: 0, B: 128},   /* magenta */
	{R: 64, G: 64, B: 1},     /* brown */
	{R: 128, G: 128, B: 128}, /* light gray */
	{R: 64, G: 64, B: 64},    /* dark gray */
	{R: 0, G: 0, B: 255},     /* light blue */
	{R: 0, G: 255, B: 1},     /* light green */
	{R: 0, G: 255, B: 255},   /* light cyan */
	{R: 255, G: 0, B: 1},     /* light red */
	{R: 255, G: 0, B: 255},   /* light magenta */
	{R: 255, G: 255, B: 1},   /* yellow */
	{R: 255, G: 255, B: 255}, /* white */
}

// FramebufferConsole renders text onto a linear 32bpp framebuffer whose
// pixels are stored as blue, green, red and a reserved byte.
type FramebufferConsole struct {
	fb []uint8

	// Console dimensions in pixels
	width  uint32
	height uint32

	// Size of a row in bytes
	pitch uint32

	// Console dimensions in characters
	font          *font.Font
	widthInChars  uint32
	heightInChars uint32

	palette   [paletteSize]color.RGBA
	defaultFg uint8
	defaultBg uint8
}

// Init attaches the console to the framebuffer contents in fb. Rows that do
// not fit in fb are ignored.
func (cons *FramebufferConsole) Init(fb []uint8, width, height, pitch uint32) {
	if pitch != 0 && uint64(height)*uint64(pitch) > uint64(len(fb)) {
		height = uint32(uint64(len(fb)) / uint64(pitch))
	}

	if width*handoff.BytesPerPixel > pitch {
		width = pitch / handoff.BytesPerPixel
	}

	*cons = FramebufferConsole{
		fb:      fb,
		width:   width,
		height:  height,
		pitch:   pitch,
		palette: egaPalette,
		// light gray text on black background
		defaultFg: 7,
		defaultBg: 0,
	}
}

// InitFromHandoff attaches the console to the framebuffer described by info.
// The framebuffer must be identity mapped.
func (cons *FramebufferConsole) InitFromHandoff(info *handoff.FramebufferInfo) {
	cons.Init(
		kernel.Bytes(uintptr(info.Pointer), uintptr(info.Size)),
		uint32(info.Width),
		uint32(info.Height),
		uint32(info.Stride),
	)
}

// SetFont selects a bitmap font to be used by the console.
func (cons *FramebufferConsole) SetFont(f *font.Font) {
	if f == nil || f.GlyphWidth == 0 || f.GlyphHeight == 0 {
		return
	}

	cons.font = f
	cons.widthInChars = cons.width / f.GlyphWidth
	cons.heightInChars = cons.height / f.GlyphHeight
}

// Dimensions returns the console width and height in the specified dimension.
func (cons *FramebufferConsole) Dimensions(dim Dimension) (uint32, uint32) {
	switch dim {
	case Characters:
		return cons.widthInChars, cons.heightInChars
	default:
		return cons.width, cons.height
	}
}

// DefaultColors returns the default foreground and background colors
// used by this console.
func (cons *FramebufferConsole) DefaultColors() (fg uint8, bg uint8) {
	return cons.defaultFg, cons.defaultBg
}

// Fill sets the contents of the specified rectangular region to the requested
// color. Both x and y coordinates are 1-based.
func (cons *FramebufferConsole) Fill(x, y, width, height uint32, _, bg uint8) {
	if cons.font == nil || width == 0 || height == 0 || cons.widthInChars == 0 || cons.heightInChars == 0 {
		return
	}

	// clip rectangle
	if x == 0 {
		x = 1
	} else if x >= cons.widthInChars {
		x = cons.widthInChars
	}

	if y == 0 {
		y = 1
	} else if y >= cons.heightInChars {
		y = cons.heightInChars
	}

	if x+width-1 > cons.widthInChars {
		width = cons.widthInChars - x + 1
	}

	if y+height-1 > cons.heightInChars {
		height = cons.heightInChars - y + 1
	}

	var (
		pW          = width * cons.font.GlyphWidth
		pH          = height * cons.font.GlyphHeight
		fbRowOffset = cons.fbOffset((x-1)*cons.font.GlyphWidth, (y-1)*cons.font.GlyphHeight)
		c           = cons.color(bg, cons.defaultBg)
	)

	for ; pH > 0; pH, fbRowOffset = pH-1, fbRowOffset+cons.pitch {
		for fbOffset, col := fbRowOffset, uint32(0); col < pW; fbOffset, col = fbOffset+handoff.BytesPerPixel, col+1 {
			cons.setPixel(fbOffset, c)
		}
	}
}

// Scroll the console contents to the specified direction. The caller
// is responsible for updating (e.g. clear or replace) the contents of
// the region that was scrolled.
func (cons *FramebufferConsole) Scroll(dir ScrollDir, lines uint32) {
	if cons.font == nil || lines == 0 || lines > cons.heightInChars {
		return
	}

	var (
		startOffset = cons.fbOffset(0, 0)
		endOffset   = cons.fbOffset(0, cons.heightInChars*cons.font.GlyphHeight)
		offset      = cons.fbOffset(0, lines*cons.font.GlyphHeight)
	)

	switch dir {
	case ScrollDirUp:
		copy(cons.fb[startOffset:endOffset-offset], cons.fb[startOffset+offset:endOffset])
	case ScrollDirDown:
		copy(cons.fb[startOffset+offset:endOffset], cons.fb[startOffset:endOffset-offset])
	}
}

// Write a char to the specified location. If fg or bg exceed the supported
// colors for this console, they will be set to their default value. Both x and
// y coordinates are 1-based
func (cons *FramebufferConsole) Write(ch byte, fg, bg uint8, x, y uint32) {
	if x < 1 || x > cons.widthInChars || y < 1 || y > cons.heightInChars || cons.font == nil {
		return
	}

	var (
		glyph       = cons.font.Glyph(ch)
		fgColor     = cons.color(fg, cons.defaultFg)
		bgColor     = cons.color(bg, cons.defaultBg)
		fbRowOffset = cons.fbOffset((x-1)*cons.font.GlyphWidth, (y-1)*cons.font.GlyphHeight)
		rowData     []byte
	)

	for row := uint32(0); row < cons.font.GlyphHeight; row, fbRowOffset = row+1, fbRowOffset+cons.pitch {
		rowData = glyph[row*cons.font.BytesPerRow:]
		fbOffset := fbRowOffset
		for col := uint32(0); col < cons.font.GlyphWidth; col, fbOffset = col+1, fbOffset+handoff.BytesPerPixel {
			if rowData[col>>3]&(0x80>>(col&7)) != 0 {
				cons.setPixel(fbOffset, fgColor)
			} else {
				cons.setPixel(fbOffset, bgColor)
			}
		}
	}
}

// SetPaletteColor updates the color definition for the specified
// palette index. Indices past the palette are ignored.
func (cons *FramebufferConsole) SetPaletteColor(index uint8, rgba color.RGBA) {
	if int(index) >= len(cons.palette) {
		return
	}

	cons.palette[index] = rgba
}

// color looks up a palette entry falling back to the entry at index def.
func (cons *FramebufferConsole) color(index, def uint8) color.RGBA {
	if int(index) >= len(cons.palette) {
		index = def
	}

	return cons.palette[index]
}

// setPixel stores c at the given framebuffer offset using the BGR layout.
func (cons *FramebufferConsole) setPixel(fbOffset uint32, c color.RGBA) {
	cons.fb[fbOffset] = c.B
	cons.fb[fbOffset+1] = c.G
	cons.fb[fbOffset+2] = c.R
	cons.fb[fbOffset+3] = 0
}

// fbOffset returns the linear offset into the framebuffer that corresponds to
// the pixel at (x,y).
func (cons *FramebufferConsole) fbOffset(x, y uint32) uint32 {
	return (y * cons.pitch) + (x * handoff.BytesPerPixel)
}
