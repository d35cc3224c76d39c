// Command makefont converts the fixed-size font faces shipped with
// golang.org/x/image into PSF2 containers embedded by the console font
// package.
package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"

	"golang.org/x/image/font/basicfont"
)

const (
	// numGlyphs covers the 7-bit ASCII range; the console maps every other
	// byte to glyph 0.
	numGlyphs = 128

	psf2HeaderSize  = 32
	replacementRune = '\ufffd'
)

var psf2Magic = []byte{0x72, 0xb5, 0x4a, 0x86}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "[makefont] error: %s\n", err.Error())
	os.Exit(1)
}

// glyphRune returns the rune rendered for glyph index ch. Control characters
// use the replacement character.
func glyphRune(ch int) rune {
	if ch < 0x20 || ch > 0x7e {
		return replacementRune
	}
	return rune(ch)
}

// rasterize packs the mask of rune r into rows of MSB-first bits.
func rasterize(face *basicfont.Face, r rune) ([]byte, error) {
	var (
		height      = face.Ascent + face.Descent
		bytesPerRow = (face.Width + 7) / 8
		glyph       = make([]byte, height*bytesPerRow)
	)

	for _, rng := range face.Ranges {
		if r < rng.Low || r >= rng.High {
			continue
		}

		top := (int(r-rng.Low) + rng.Offset) * height
		for y := 0; y < height; y++ {
			for x := 0; x < face.Width; x++ {
				if _, _, _, a := face.Mask.At(x, top+y).RGBA(); a == 0 {
					continue
				}
				glyph[y*bytesPerRow+x/8] |= 0x80 >> uint(x%8)
			}
		}
		return glyph, nil
	}

	return nil, fmt.Errorf("font does not contain a glyph for %U", r)
}

// buildPSF2 encodes the first numGlyphs glyphs of face as a PSF2 container.
func buildPSF2(face *basicfont.Face) ([]byte, error) {
	var (
		buf           bytes.Buffer
		height        = face.Ascent + face.Descent
		bytesPerGlyph = height * ((face.Width + 7) / 8)
	)

	buf.Write(psf2Magic)
	for _, field := range []uint32{0, psf2HeaderSize, 0, numGlyphs, uint32(bytesPerGlyph), uint32(height), uint32(face.Width)} {
		binary.Write(&buf, binary.LittleEndian, field)
	}

	for ch := 0; ch < numGlyphs; ch++ {
		glyph, err := rasterize(face, glyphRune(ch))
		if err != nil {
			return nil, err
		}
		buf.Write(glyph)
	}

	return buf.Bytes(), nil
}

func writeBytes(buf *bytes.Buffer, data []byte) {
	buf.WriteByte('\t')
	for i, b := range data {
		if i != 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "0x%02x,", b)
	}
	buf.WriteByte('\n')
}

// genFontFile renders container as a Go source file declaring varName.
func genFontFile(container []byte, face *basicfont.Face, varName string) ([]byte, error) {
	var (
		buf           bytes.Buffer
		height        = face.Ascent + face.Descent
		bytesPerGlyph = height * ((face.Width + 7) / 8)
	)

	fmt.Fprint(&buf, "// Code generated by makefont; DO NOT EDIT.\n\npackage font\n\n")
	fmt.Fprintf(&buf, "// %s holds the %dx%d misc-fixed glyphs as a PSF2 container. Glyphs\n", varName, face.Width, height)
	fmt.Fprint(&buf, "// outside the printable ASCII range use the replacement character.\n")
	fmt.Fprintf(&buf, "var %s = []byte{\n", varName)

	fmt.Fprint(&buf, "\t// header\n")
	writeBytes(&buf, container[:16])
	writeBytes(&buf, container[16:psf2HeaderSize])

	for ch, offset := 0, psf2HeaderSize; ch < numGlyphs; ch, offset = ch+1, offset+bytesPerGlyph {
		if r := glyphRune(ch); r != replacementRune {
			fmt.Fprintf(&buf, "\t// 0x%02x %q\n", ch, r)
		} else {
			fmt.Fprintf(&buf, "\t// 0x%02x\n", ch)
		}
		writeBytes(&buf, container[offset:offset+bytesPerGlyph])
	}
	fmt.Fprint(&buf, "}\n")

	return format.Source(buf.Bytes())
}

func runTool() error {
	varName := flag.String("var-name", "basic6x13", "the name of the variable containing the font container")
	output := flag.String("out", "-", "a file to write the generated font or - to output to STDOUT")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "makefont: convert the 6x13 basicfont face to a PSF2 console font\n\n")
		fmt.Fprint(os.Stderr, "Usage: makefont [options]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *varName == "" {
		exit(errors.New("missing variable name"))
	}

	container, err := buildPSF2(basicfont.Face7x13)
	if err != nil {
		return err
	}

	src, err := genFontFile(container, basicfont.Face7x13, *varName)
	if err != nil {
		return err
	}

	switch *output {
	case "-":
		_, err = os.Stdout.Write(src)
		return err
	default:
		return os.WriteFile(*output, src, 0644)
	}
}

func main() {
	if err := runTool(); err != nil {
		exit(err)
	}
}
