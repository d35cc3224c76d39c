package kernel

// Error describes a kernel or loader error. All errors returned by the
// freestanding packages must be defined as global variables that are pointers
// to the Error structure. This requirement stems from the fact that neither
// the loader nor the kernel runs with a Go allocator so errors.New cannot be
// used.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
