package boot

import (
	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
)

// The display mode required by the kernel console.
const (
	RequiredWidth  = 1600
	RequiredHeight = 900
	RequiredFormat = PixelBGR
)

var errNoDisplayMode = &kernel.Error{Module: "boot", Message: "no 1600x900 BGR display mode available"}

// Mode is the display mode selected and activated by SelectMode.
type Mode struct {
	Number          uint32
	Info            ModeInfo
	FramebufferBase uint64
	FramebufferSize uint64
}

// SelectMode activates the first mode with the required resolution and BGR
// pixel format. Modes that cannot be queried are skipped. The search stops
// as soon as a matching mode has been activated.
func SelectMode(gop GraphicsOutput) (Mode, *kernel.Error) {
	count := gop.ModeCount()
	for mode := uint32(0); mode < count; mode++ {
		info, err := gop.QueryMode(mode)
		if err != nil {
			kfmt.Fprintf(&bootLog, "mode %d: query failed: %s\n", mode, err.Message)
			continue
		}

		if info.Width != RequiredWidth || info.Height != RequiredHeight || info.Format != RequiredFormat {
			continue
		}

		if err = gop.SetMode(mode); err != nil {
			return Mode{}, err
		}

		base, size := gop.Framebuffer()
		kfmt.Fprintf(&bootLog, "display mode %d: %dx%d, %d pixels per scan line, framebuffer 0x%x (%d bytes)\n",
			mode, info.Width, info.Height, info.PixelsPerScanLine, base, size)

		return Mode{
			Number:          mode,
			Info:            info,
			FramebufferBase: base,
			FramebufferSize: size,
		}, nil
	}

	return Mode{}, errNoDisplayMode
}
