//go:build linux

package main

import (
	"fmt"
	"gopherboot/handoff"
	"image"

	"github.com/fogleman/gg"
)

// captionHeight is the height of the status strip added below the screen.
const captionHeight = 20

// screenImage converts a BGR framebuffer capture into an RGBA image.
func screenImage(screen []byte, info handoff.FramebufferInfo) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(info.Width), int(info.Height)))

	for y := 0; y < int(info.Height); y++ {
		for x := 0; x < int(info.Width); x++ {
			src := y*int(info.Stride) + x*handoff.BytesPerPixel
			if src+handoff.BytesPerPixel > len(screen) {
				return img
			}

			dst := img.PixOffset(x, y)
			img.Pix[dst+0] = screen[src+2]
			img.Pix[dst+1] = screen[src+1]
			img.Pix[dst+2] = screen[src+0]
			img.Pix[dst+3] = 0xff
		}
	}

	return img
}

// renderScreen draws the captured framebuffer with a caption summarizing
// the handoff underneath it.
func renderScreen(res *result) *gg.Context {
	w, h := int(res.info.Width), int(res.info.Height)

	dc := gg.NewContext(w, h+captionHeight)
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.Clear()
	dc.DrawImage(screenImage(res.screen, res.info), 0, 0)

	dc.SetRGB(0.9, 0.9, 0.9)
	dc.DrawString(fmt.Sprintf("%dx%d stride %d | entry 0x%x | %d segments",
		res.info.Width, res.info.Height, res.info.Stride, res.entry, res.segments,
	), 4, float64(h+captionHeight-6))

	return dc
}
