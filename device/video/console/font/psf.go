package font

import (
	"encoding/binary"
	"gopherboot/kernel"
)

const (
	psf1HeaderSize = 4
	psf1ModeHas512 = 0x01

	psf2HeaderSize = 32
)

var (
	psf1Magic = [2]byte{0x36, 0x04}
	psf2Magic = [4]byte{0x72, 0xb5, 0x4a, 0x86}

	errShortFont       = &kernel.Error{Module: "font", Message: "font container is smaller than its header"}
	errUnknownFormat   = &kernel.Error{Module: "font", Message: "font container is neither PSF1 nor PSF2"}
	errBadHeaderSize   = &kernel.Error{Module: "font", Message: "PSF2 header size is invalid"}
	errBadGlyphSize    = &kernel.Error{Module: "font", Message: "glyph size does not match the font dimensions"}
	errGlyphsTruncated = &kernel.Error{Module: "font", Message: "glyph data extends past the font container"}
)

// Parse decodes a PSF1 or PSF2 font container. The returned font references
// the glyph data inside container; any trailing unicode table is ignored.
func Parse(name string, container []byte) (Font, *kernel.Error) {
	switch {
	case len(container) >= 2 && container[0] == psf1Magic[0] && container[1] == psf1Magic[1]:
		return parsePSF1(name, container)
	case len(container) >= 4 && [4]byte(container[:4]) == psf2Magic:
		return parsePSF2(name, container)
	case len(container) < 4:
		return Font{}, errShortFont
	}

	return Font{}, errUnknownFormat
}

// parsePSF1 decodes a PSF1 container. PSF1 glyphs are always 8 pixels wide
// and the charsize header byte doubles as the glyph height.
func parsePSF1(name string, container []byte) (Font, *kernel.Error) {
	if len(container) < psf1HeaderSize {
		return Font{}, errShortFont
	}

	var (
		mode      = container[2]
		height    = uint32(container[3])
		numGlyphs = uint32(256)
	)

	if mode&psf1ModeHas512 != 0 {
		numGlyphs = 512
	}

	if height == 0 {
		return Font{}, errBadGlyphSize
	}

	return buildFont(name, container, psf1HeaderSize, numGlyphs, height, 8, height)
}

// parsePSF2 decodes a PSF2 container. All header fields are little-endian
// 32-bit values following the magic.
func parsePSF2(name string, container []byte) (Font, *kernel.Error) {
	if len(container) < psf2HeaderSize {
		return Font{}, errShortFont
	}

	var (
		headerSize    = binary.LittleEndian.Uint32(container[8:])
		numGlyphs     = binary.LittleEndian.Uint32(container[16:])
		bytesPerGlyph = binary.LittleEndian.Uint32(container[20:])
		height        = binary.LittleEndian.Uint32(container[24:])
		width         = binary.LittleEndian.Uint32(container[28:])
	)

	if headerSize < psf2HeaderSize || uint64(headerSize) > uint64(len(container)) {
		return Font{}, errBadHeaderSize
	}

	return buildFont(name, container, uint64(headerSize), numGlyphs, bytesPerGlyph, width, height)
}

func buildFont(name string, container []byte, dataOffset uint64, numGlyphs, bytesPerGlyph, width, height uint32) (Font, *kernel.Error) {
	bytesPerRow := (width + 7) / 8
	if width == 0 || height == 0 || uint64(bytesPerGlyph) != uint64(bytesPerRow)*uint64(height) {
		return Font{}, errBadGlyphSize
	}

	dataEnd := dataOffset + uint64(numGlyphs)*uint64(bytesPerGlyph)
	if numGlyphs == 0 || dataEnd > uint64(len(container)) {
		return Font{}, errGlyphsTruncated
	}

	return Font{
		Name:        name,
		GlyphWidth:  width,
		GlyphHeight: height,
		BytesPerRow: bytesPerRow,
		NumGlyphs:   numGlyphs,
		Data:        container[dataOffset:dataEnd],
	}, nil
}
