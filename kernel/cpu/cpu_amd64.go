// Package cpu exposes the handful of privileged amd64 instructions used by the
// loader and the kernel.
package cpu

var (
	cpuidFn = ID
)

// EnableInterrupts enables interrupt handling.
func EnableInterrupts()

// DisableInterrupts disables interrupt handling.
func DisableInterrupts()

// Halt stops instruction execution.
func Halt()

// ReadCR2 returns the value stored in the CR2 register. After a page fault
// CR2 holds the linear address whose access triggered the fault.
func ReadCR2() uint64

// ReadCS returns the code segment selector that is currently loaded.
func ReadCS() uint16

// LoadIDT loads the interrupt descriptor table register from the 10-byte
// pseudo-descriptor (16-bit limit followed by the 64-bit base) at descAddr.
func LoadIDT(descAddr uintptr)

// ID returns information about the CPU and its features. It
// is implemented as a CPUID instruction with EAX=leaf and
// returns the values in EAX, EBX, ECX and EDX.
func ID(leaf uint32) (uint32, uint32, uint32, uint32)

// Vendor returns the 12-character vendor identification string reported by
// CPUID leaf 0 (e.g. "GenuineIntel" or "AuthenticAMD").
func Vendor() [12]byte {
	var vendor [12]byte

	_, ebx, ecx, edx := cpuidFn(0)

	for i, reg := range [3]uint32{ebx, edx, ecx} {
		vendor[i*4] = byte(reg)
		vendor[i*4+1] = byte(reg >> 8)
		vendor[i*4+2] = byte(reg >> 16)
		vendor[i*4+3] = byte(reg >> 24)
	}

	return vendor
}
