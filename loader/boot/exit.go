package boot

import (
	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
)

// DefaultMapHeadroom is the number of extra memory map descriptors reserved
// for entries the firmware adds between querying the map size and exiting
// boot services (the allocation for the map itself may add one).
const DefaultMapHeadroom = 8

var errAlreadyExited = &kernel.Error{Module: "boot", Message: "boot services have already been exited"}

// exitBootServices allocates a memory map buffer with headroom and exits
// the firmware boot services. The firmware is only ever asked to exit once;
// any later call fails without reaching the firmware. kfmt output is
// detached from the firmware console before the exit and reattached if the
// exit fails.
func (l *Loader) exitBootServices() *kernel.Error {
	if l.exitAttempted {
		return errAlreadyExited
	}

	mapSize, descSize, err := l.Firmware.MemoryMapSize()
	if err != nil {
		return err
	}

	mapBuf, err := l.Firmware.Allocate(mapSize + l.MapHeadroom*descSize)
	if err != nil {
		return err
	}

	kfmt.Fprintf(&bootLog, "exiting boot services (memory map: %d bytes, %d bytes reserved)\n", mapSize, uint64(len(mapBuf)))

	console := kfmt.GetOutputSink()
	kfmt.SetOutputSink(nil)

	l.exitAttempted = true
	if err = l.Firmware.ExitBootServices(mapBuf); err != nil {
		kfmt.SetOutputSink(console)
		return err
	}

	return l.advance(ServicesExited)
}
