// Package font provides the bitmap fonts used by the framebuffer console.
// Fonts are stored as PSF1 or PSF2 containers and decoded on first use.
package font

var (
	// The list of available fonts.
	availableFonts = []*Font{&basic6x13Font}

	basic6x13Font = Font{
		Name:              "basic6x13",
		RecommendedWidth:  1024,
		RecommendedHeight: 768,
		container:         basic6x13,
	}
)

// Font describes a bitmap font that can be used by a console device.
type Font struct {
	// The name of the font
	Name string

	// The width of each glyph in pixels.
	GlyphWidth uint32

	// The height of each glyph in pixels.
	GlyphHeight uint32

	// The recommended console resolution for this font.
	RecommendedWidth  uint32
	RecommendedHeight uint32

	// Font priority (lower is better). When auto-detecting a font to use, the font with
	// the lowest priority will be preferred
	Priority uint32

	// The number of bytes describing a row in a glyph.
	BytesPerRow uint32

	// The number of glyphs in Data.
	NumGlyphs uint32

	// The font bitmap. Each character consists of BytesPerRow * Height
	// bytes where each bit indicates whether a pixel should be set to the
	// foreground or the background color.
	Data []byte

	// The encoded PSF container for built-in fonts that have not been
	// decoded yet.
	container []byte
}

// Glyph returns the bitmap for the glyph at index ch. Indices past the end of
// the font map to glyph 0.
func (f *Font) Glyph(ch byte) []byte {
	index := uint32(ch)
	if index >= f.NumGlyphs {
		index = 0
	}

	glyphSize := f.BytesPerRow * f.GlyphHeight
	return f.Data[index*glyphSize : (index+1)*glyphSize]
}

// load decodes the font container the first time the font is used. It
// returns false if the container is malformed.
func (f *Font) load() bool {
	if f.Data != nil {
		return true
	}

	decoded, err := Parse(f.Name, f.container)
	if err != nil {
		return false
	}

	f.GlyphWidth = decoded.GlyphWidth
	f.GlyphHeight = decoded.GlyphHeight
	f.BytesPerRow = decoded.BytesPerRow
	f.NumGlyphs = decoded.NumGlyphs
	f.Data = decoded.Data
	return true
}

// FindByName looks up a font instance by name. If the font is not found then
// the function returns nil.
func FindByName(name string) *Font {
	for _, f := range availableFonts {
		if f.Name == name && f.load() {
			return f
		}
	}

	return nil
}

// BestFit returns the best font from the available font list given the
// specified console dimensions. If multiple fonts match the dimension criteria
// then their priority attribute is used to select one.
//
// The algorithm for selecting the best font is the following:
//
//	For each font:
//	  - calculate the sum of abs differences between the font recommended dimension
//	    and the console dimensions.
//	  - if the font score is lower than the current best font's score then the
//	    font becomes the new best font.
//	  - if the font score is equal to the current best font's score then the
//	    font with the lowest priority becomes the new best font.
func BestFit(consoleWidth, consoleHeight uint32) *Font {
	var (
		best                           *Font
		bestDelta                      uint32
		absDeltaW, absDeltaH, absDelta uint32
	)

	for _, f := range availableFonts {
		if !f.load() {
			continue
		}

		if f.RecommendedWidth > consoleWidth {
			absDeltaW = f.RecommendedWidth - consoleWidth
		} else {
			absDeltaW = consoleWidth - f.RecommendedWidth
		}

		if f.RecommendedHeight > consoleHeight {
			absDeltaH = f.RecommendedHeight - consoleHeight
		} else {
			absDeltaH = consoleHeight - f.RecommendedHeight
		}

		absDelta = absDeltaW + absDeltaH

		if best == nil {
			best = f
			bestDelta = absDelta
			continue
		}

		if best.Priority < f.Priority || absDelta > bestDelta {
			continue
		}

		best = f
		bestDelta = absDelta
	}

	return best
}
