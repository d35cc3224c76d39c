package kfmt

import "io"

// ringBufferSize defines the size of the ring buffer that holds Printf output
// while no output sink is attached. It is large enough for a full page of
// loader progress messages. The ring buffer size must always be a power of 2.
const ringBufferSize = 4096

// ringBuffer is a fixed-size FIFO that overwrites its oldest contents when
// full. It lives in static storage so it can be used before (or without) a
// heap.
type ringBuffer struct {
	buffer         [ringBufferSize]byte
	rIndex, wIndex int
}

// Write appends p to the ringBuffer, discarding the oldest bytes if needed.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.buffer[rb.wIndex] = b
		rb.wIndex = (rb.wIndex + 1) & (ringBufferSize - 1)
		if rb.rIndex == rb.wIndex {
			rb.rIndex = (rb.rIndex + 1) & (ringBufferSize - 1)
		}
	}

	return len(p), nil
}

// Read reads up to len(p) bytes into p. It returns io.EOF once the buffer
// has been drained.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	chunk := rb.nextChunk()
	if len(chunk) == 0 {
		return 0, io.EOF
	}

	n := copy(p, chunk)
	rb.consume(n)
	return n, nil
}

// WriteTo drains the buffer into w without requiring an intermediate copy
// buffer. Together with Read this lets io.Copy work without allocating.
func (rb *ringBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		chunk := rb.nextChunk()
		if len(chunk) == 0 {
			return total, nil
		}

		n, err := w.Write(chunk)
		rb.consume(n)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
}

// nextChunk returns the longest contiguous run of unread bytes.
func (rb *ringBuffer) nextChunk() []byte {
	switch {
	case rb.rIndex < rb.wIndex:
		return rb.buffer[rb.rIndex:rb.wIndex]
	case rb.rIndex > rb.wIndex:
		return rb.buffer[rb.rIndex:]
	default:
		return nil
	}
}

func (rb *ringBuffer) consume(n int) {
	rb.rIndex = (rb.rIndex + n) & (ringBufferSize - 1)
}
