package boot

import "gopherboot/kernel"

// State tracks the progress of the boot sequence.
type State uint8

// The boot states in the order they are entered.
const (
	Initializing State = iota
	GraphicsConfigured
	KernelImageLoaded
	SegmentsLoaded
	ServicesExited
)

var errBadTransition = &kernel.Error{Module: "boot", Message: "invalid boot state transition"}

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case GraphicsConfigured:
		return "graphics-configured"
	case KernelImageLoaded:
		return "kernel-image-loaded"
	case SegmentsLoaded:
		return "segments-loaded"
	case ServicesExited:
		return "services-exited"
	default:
		return "unknown"
	}
}

// advance moves the loader to next. Only transitions to the immediately
// following state are permitted; ServicesExited is terminal.
func (l *Loader) advance(next State) *kernel.Error {
	if l.state == ServicesExited || next != l.state+1 {
		return errBadTransition
	}

	l.state = next
	return nil
}
