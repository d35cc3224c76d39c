package kernel

import (
	"testing"
	"unsafe"
)

func TestMemset(t *testing.T) {
	// memset with a 0 size should be a no-op
	Memset(uintptr(0), 0x00, 0)

	for size := 1; size <= 1<<14; size <<= 1 {
		buf := make([]byte, size+1)
		for i := 0; i < len(buf); i++ {
			buf[i] = 0xFE
		}

		addr := uintptr(unsafe.Pointer(&buf[0]))
		Memset(addr, 0x00, uintptr(size))

		for i := 0; i < size; i++ {
			if got := buf[i]; got != 0x00 {
				t.Errorf("[block with %d bytes] expected byte: %d to be 0x00; got 0x%x", size, i, got)
			}
		}

		if got := buf[size]; got != 0xFE {
			t.Errorf("[block with %d bytes] expected guard byte to remain 0xfe; got 0x%x", size, got)
		}
	}
}

func TestMemcopy(t *testing.T) {
	// memcopy with a 0 size should be a no-op
	Memcopy(uintptr(0), uintptr(0), 0)

	var (
		src = make([]byte, 0x400)
		dst = make([]byte, 0x1000)
	)

	for i := 0; i < len(src); i++ {
		src[i] = byte(i % 251)
	}

	Memcopy(uintptr(unsafe.Pointer(&src[0])), uintptr(unsafe.Pointer(&dst[0])), uintptr(len(src)))

	for i := 0; i < len(dst); i++ {
		exp := byte(0)
		if i < len(src) {
			exp = src[i]
		}

		if dst[i] != exp {
			t.Fatalf("expected byte %d to be 0x%x; got 0x%x", i, exp, dst[i])
		}
	}
}

func TestBytes(t *testing.T) {
	if got := Bytes(0, 0); got != nil {
		t.Fatalf("expected a nil slice for a zero-sized region; got %v", got)
	}

	buf := []byte{1, 2, 3, 4}
	overlay := Bytes(uintptr(unsafe.Pointer(&buf[1])), 2)
	if len(overlay) != 2 || overlay[0] != 2 || overlay[1] != 3 {
		t.Fatalf("unexpected overlay contents: %v", overlay)
	}
}
