package efi

// simpleTextOutput overlays EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL.
type simpleTextOutput struct {
	reset        uintptr
	outputString uintptr
}

// Console is an io.Writer backed by the firmware text output protocol. Line
// feeds are expanded to CR LF. Bytes are treated as Latin-1.
type Console struct {
	proto *simpleTextOutput

	// NUL-terminated UCS-2 staging buffer.
	buf [128]uint16
	n   int
}

// Write implements io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	if c.proto == nil {
		return len(p), nil
	}

	for _, b := range p {
		// reserve room for CR LF and the terminator
		if c.n+3 > len(c.buf) {
			c.flush()
		}

		if b == '\n' {
			c.buf[c.n] = '\r'
			c.n++
		}
		c.buf[c.n] = uint16(b)
		c.n++
	}
	c.flush()

	return len(p), nil
}

func (c *Console) flush() {
	if c.n == 0 {
		return
	}

	c.buf[c.n] = 0
	callFn(c.proto.outputString, ptr(c.proto), ptr(&c.buf[0]), 0, 0, 0, 0)
	c.n = 0
}
