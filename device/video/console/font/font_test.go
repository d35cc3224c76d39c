package font

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestFindByName(t *testing.T) {
	defer func(origList []*Font) {
		availableFonts = origList
	}(availableFonts)

	availableFonts = []*Font{
		{Name: "foo", Data: []byte{0}},
		{Name: "bar", Data: []byte{0}},
		{Name: "broken", container: []byte{0xde, 0xad, 0xbe, 0xef}},
	}

	exp := availableFonts[1]
	if got := FindByName("bar"); got != exp {
		t.Fatalf("expected to get font: %v; got %v", exp, got)
	}

	if got := FindByName("not-existing-font"); got != nil {
		t.Fatalf("expected to get nil for a font that does not exist; got %v", got)
	}

	if got := FindByName("broken"); got != nil {
		t.Fatalf("expected to get nil for a font with a malformed container; got %v", got)
	}
}

func TestBestFit(t *testing.T) {
	defer func(origList []*Font) {
		availableFonts = origList
	}(availableFonts)

	availableFonts = []*Font{
		{Name: "retina1", RecommendedWidth: 2560, RecommendedHeight: 1600, Priority: 2, Data: []byte{0}},
		{Name: "retina2", RecommendedWidth: 2560, RecommendedHeight: 1600, Priority: 1, Data: []byte{0}},
		{Name: "default", RecommendedWidth: 800, RecommendedHeight: 600, Priority: 0, Data: []byte{0}},
		{Name: "standard", RecommendedWidth: 1024, RecommendedHeight: 768, Priority: 0, Data: []byte{0}},
		{Name: "broken", RecommendedWidth: 320, RecommendedHeight: 200, container: []byte{1, 2, 3}},
	}

	specs := []struct {
		consW, consH uint32
		expName      string
	}{
		{320, 200, "default"},
		{800, 600, "default"},
		{1024, 768, "standard"},
		{3000, 3000, "retina2"},
		{2500, 600, "retina2"},
	}

	for specIndex, spec := range specs {
		got := BestFit(spec.consW, spec.consH)
		if got == nil {
			t.Errorf("[spec %d] unable to find a font", specIndex)
			continue
		}

		if got.Name != spec.expName {
			t.Errorf("[spec %d] expected to get font %q; got %q", specIndex, spec.expName, got.Name)
		}
	}
}

func TestBuiltinFont(t *testing.T) {
	f := FindByName("basic6x13")
	if f == nil {
		t.Fatal("expected the built-in font to be available")
	}

	if f.GlyphWidth != 6 || f.GlyphHeight != 13 || f.BytesPerRow != 1 || f.NumGlyphs != 128 {
		t.Fatalf("unexpected font metrics: %dx%d, %d bytes per row, %d glyphs", f.GlyphWidth, f.GlyphHeight, f.BytesPerRow, f.NumGlyphs)
	}

	expA := []byte{0x00, 0x00, 0x30, 0x48, 0x84, 0x84, 0x84, 0xfc, 0x84, 0x84, 0x84, 0x00, 0x00}
	if got := f.Glyph('A'); !bytes.Equal(got, expA) {
		t.Fatalf("expected glyph 'A' to be %x; got %x", expA, got)
	}

	// Control characters and bytes past the font share the replacement glyph.
	if !bytes.Equal(f.Glyph(0x7f), f.Glyph(0)) || !bytes.Equal(f.Glyph(0xc8), f.Glyph(0)) {
		t.Fatal("expected out-of-range glyphs to map to the replacement glyph")
	}

	if got := BestFit(1600, 900); got != f {
		t.Fatalf("expected BestFit to select the built-in font; got %v", got)
	}
}

func psf2Container(numGlyphs, bytesPerGlyph, height, width uint32, dataLen int) []byte {
	buf := make([]byte, psf2HeaderSize+dataLen)
	copy(buf, psf2Magic[:])
	binary.LittleEndian.PutUint32(buf[8:], psf2HeaderSize)
	binary.LittleEndian.PutUint32(buf[16:], numGlyphs)
	binary.LittleEndian.PutUint32(buf[20:], bytesPerGlyph)
	binary.LittleEndian.PutUint32(buf[24:], height)
	binary.LittleEndian.PutUint32(buf[28:], width)
	for i := psf2HeaderSize; i < len(buf); i++ {
		buf[i] = byte(i)
	}
	return buf
}

func TestParse(t *testing.T) {
	psf1 := append([]byte{0x36, 0x04, 0x00, 16}, make([]byte, 256*16)...)
	psf1[4+'A'*16] = 0x18

	psf1With512 := append([]byte{0x36, 0x04, psf1ModeHas512, 8}, make([]byte, 512*8+10)...)

	specs := []struct {
		container     []byte
		expW, expH    uint32
		expBytesInRow uint32
		expGlyphs     uint32
	}{
		{psf1, 8, 16, 1, 256},
		{psf1With512, 8, 8, 1, 512},
		{psf2Container(4, 13, 13, 6, 4*13), 6, 13, 1, 4},
		{psf2Container(2, 32, 16, 10, 2*32+100), 10, 16, 2, 2},
	}

	for specIndex, spec := range specs {
		f, err := Parse("test", spec.container)
		if err != nil {
			t.Errorf("[spec %d] unexpected error: %v", specIndex, err)
			continue
		}

		if f.Name != "test" || f.GlyphWidth != spec.expW || f.GlyphHeight != spec.expH || f.BytesPerRow != spec.expBytesInRow || f.NumGlyphs != spec.expGlyphs {
			t.Errorf("[spec %d] unexpected font: %+v", specIndex, f)
		}

		if exp := int(spec.expGlyphs * spec.expBytesInRow * spec.expH); len(f.Data) != exp {
			t.Errorf("[spec %d] expected glyph data to be %d bytes; got %d", specIndex, exp, len(f.Data))
		}
	}

	f, _ := Parse("psf1", psf1)
	if got := f.Glyph('A'); got[0] != 0x18 || len(got) != 16 {
		t.Fatalf("expected PSF1 glyph data to start after the 4-byte header; got %x", got)
	}
}

func TestParseErrors(t *testing.T) {
	badHeaderSize := psf2Container(1, 13, 13, 6, 13)
	binary.LittleEndian.PutUint32(badHeaderSize[8:], 16)

	hugeHeaderSize := psf2Container(1, 13, 13, 6, 13)
	binary.LittleEndian.PutUint32(hugeHeaderSize[8:], 1<<31)

	specs := []struct {
		container []byte
		expErr    error
	}{
		{nil, errShortFont},
		{[]byte{0x72, 0xb5}, errShortFont},
		{[]byte{0x36, 0x04, 0x00}, errShortFont},
		{[]byte("GIF89a"), errUnknownFormat},
		{psf2Container(1, 13, 13, 6, 13)[:20], errShortFont},
		{badHeaderSize, errBadHeaderSize},
		{hugeHeaderSize, errBadHeaderSize},
		{psf2Container(1, 12, 13, 6, 13), errBadGlyphSize},
		{psf2Container(1, 0, 0, 6, 13), errBadGlyphSize},
		{psf2Container(2, 13, 13, 6, 13), errGlyphsTruncated},
		{psf2Container(0, 13, 13, 6, 13), errGlyphsTruncated},
		{psf2Container(0xffffffff, 0xffffffff, 0xffffffff, 8, 13), errGlyphsTruncated},
		{[]byte{0x36, 0x04, 0x00, 0x00}, errBadGlyphSize},
		{append([]byte{0x36, 0x04, 0x00, 16}, make([]byte, 100)...), errGlyphsTruncated},
	}

	for specIndex, spec := range specs {
		if _, err := Parse("test", spec.container); err != spec.expErr {
			t.Errorf("[spec %d] expected error %v; got %v", specIndex, spec.expErr, err)
		}
	}
}
