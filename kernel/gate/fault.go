package gate

// PageFaultErrorCode is the error code pushed by the CPU for page faults.
type PageFaultErrorCode uint64

const (
	// ProtectionViolation is set when the fault was caused by a
	// protection check; if clear the page was not present.
	ProtectionViolation PageFaultErrorCode = 1 << iota

	// CausedByWrite is set for write accesses and clear for reads.
	CausedByWrite

	// UserMode is set when the access originated in ring 3.
	UserMode

	// MalformedTable is set when a reserved bit was set in a paging
	// structure entry.
	MalformedTable

	// InstructionFetch is set when the fault was caused by fetching an
	// instruction.
	InstructionFetch
)

// pageFaultFlags lists the decodable flags in bit order.
var pageFaultFlags = [...]struct {
	flag PageFaultErrorCode
	name string
}{
	{ProtectionViolation, "protection-violation"},
	{CausedByWrite, "write"},
	{UserMode, "user-mode"},
	{MalformedTable, "malformed-table"},
	{InstructionFetch, "instruction-fetch"},
}

// Has returns true if all bits in flag are set.
func (c PageFaultErrorCode) Has(flag PageFaultErrorCode) bool {
	return c&flag == flag
}
