package elfimage

import (
	"gopherboot/kernel"
	"gopherboot/loader/elfimage/elftest"
	"math/rand"
	"testing"
)

func TestLoadScenario(t *testing.T) {
	img := elftest.Build(0x2000, 0x200000, 0x40, []elftest.Prog{
		{Type: 1, Offset: 0x1000, Addr: 0x200000, FileSize: 0x400, MemSize: 0x1000},
		{Type: 4, Offset: 0x1400, Addr: 0x300000, FileSize: 0x20, MemSize: 0x20},
	})

	hdr, err := ReadHeader(img)
	if err != nil {
		t.Fatal(err)
	}

	mem := newSparseMemory()
	if err = Load(img, hdr, mem); err != nil {
		t.Fatal(err)
	}

	if exp := 0x1000; len(mem.bytes) != exp {
		t.Fatalf("expected exactly %d bytes to be written; got %d", exp, len(mem.bytes))
	}

	for i := uint64(0); i < 0x1000; i++ {
		got, written := mem.bytes[0x200000+i]
		if !written {
			t.Fatalf("expected byte at 0x%x to be written", 0x200000+i)
		}

		var exp byte
		if i < 0x400 {
			exp = img[0x1000+i]
		}
		if got != exp {
			t.Fatalf("byte at 0x%x: expected 0x%x; got 0x%x", 0x200000+i, exp, got)
		}
	}

	if _, written := mem.bytes[0x300000]; written {
		t.Fatal("expected the non-loadable segment to be skipped")
	}
}

func TestLoadRejectsMalformedSegments(t *testing.T) {
	specs := []struct {
		descr  string
		progs  []elftest.Prog
		expErr *kernel.Error
	}{
		{
			"file range past the image",
			[]elftest.Prog{
				{Type: 1, Offset: 0x100, Addr: 0x200000, FileSize: 0x10, MemSize: 0x10},
				{Type: 1, Offset: 0x1f00, Addr: 0x300000, FileSize: 0x200, MemSize: 0x200},
			},
			errSegmentOutOfBounds,
		},
		{
			"offset past the image",
			[]elftest.Prog{{Type: 1, Offset: 0x2001, Addr: 0x200000, FileSize: 0, MemSize: 0x10}},
			errSegmentOutOfBounds,
		},
		{
			"offset plus size overflows",
			[]elftest.Prog{{Type: 1, Offset: 0x100, Addr: 0x200000, FileSize: ^uint64(0), MemSize: ^uint64(0)}},
			errSegmentOutOfBounds,
		},
		{
			"memory size smaller than file size",
			[]elftest.Prog{
				{Type: 1, Offset: 0x100, Addr: 0x200000, FileSize: 0x10, MemSize: 0x10},
				{Type: 1, Offset: 0x200, Addr: 0x300000, FileSize: 0x20, MemSize: 0x10},
			},
			errSegmentMemSize,
		},
	}

	for _, spec := range specs {
		t.Run(spec.descr, func(t *testing.T) {
			img := elftest.Build(0x2000, 0x200000, 0x40, spec.progs)
			hdr, err := ReadHeader(img)
			if err != nil {
				t.Fatal(err)
			}

			mem := newSparseMemory()
			if err = Load(img, hdr, mem); err != spec.expErr {
				t.Fatalf("expected error %v; got %v", spec.expErr, err)
			}

			if mem.writes != 0 {
				t.Fatalf("expected no writes before validation completes; got %d", mem.writes)
			}
		})
	}
}

func TestLoadIgnoresBoundsOfNonLoadableSegments(t *testing.T) {
	img := elftest.Build(0x1000, 0x200000, 0x40, []elftest.Prog{
		{Type: 4, Offset: 0xffff0000, Addr: 0x300000, FileSize: 0x100, MemSize: 0x10},
	})

	hdr, err := ReadHeader(img)
	if err != nil {
		t.Fatal(err)
	}

	mem := newSparseMemory()
	if err = Load(img, hdr, mem); err != nil {
		t.Fatal(err)
	}

	if mem.writes != 0 {
		t.Fatalf("expected no writes; got %d", mem.writes)
	}
}

func TestVisitSegmentsStopsOnError(t *testing.T) {
	img := elftest.Build(0x1000, 0x200000, 0x40, []elftest.Prog{
		{Type: 1}, {Type: 1}, {Type: 1},
	})

	hdr, err := ReadHeader(img)
	if err != nil {
		t.Fatal(err)
	}

	var (
		visited int
		stopErr = &kernel.Error{Module: "test", Message: "stop"}
	)
	err = VisitSegments(img, hdr, func(index int, _ Segment) *kernel.Error {
		visited++
		if index == 1 {
			return stopErr
		}
		return nil
	})

	if err != stopErr || visited != 2 {
		t.Fatalf("expected iteration to stop at the second entry; visited %d, err %v", visited, err)
	}
}

// TestLoadRandomImages generates images with random non-overlapping segments
// and checks the resulting memory against a byte-level model.
func TestLoadRandomImages(t *testing.T) {
	rng := rand.New(rand.NewSource(0x6b65726e656c))

	for iter := 0; iter < 50; iter++ {
		var (
			count    = rng.Intn(6) + 1
			progs    = make([]elftest.Prog, count)
			dataBase = uint64(0x40 + count*elftest.ProgHeaderSize)
			fileOff  = dataBase
			addr     = uint64(0x100000)
			expected = make(map[uint64]byte)
		)

		for i := range progs {
			fileSize := uint64(rng.Intn(0x300))
			memSize := fileSize + uint64(rng.Intn(0x300))
			progType := uint32(1)
			if rng.Intn(4) == 0 {
				progType = uint32(rng.Intn(5) + 2)
			}

			progs[i] = elftest.Prog{Type: progType, Offset: fileOff, Addr: addr, FileSize: fileSize, MemSize: memSize}
			fileOff += fileSize
			addr += memSize + uint64(rng.Intn(0x100))
		}

		img := elftest.Build(int(fileOff)+rng.Intn(0x40), 0x100000, 0x40, progs)
		for _, p := range progs {
			if p.Type != 1 {
				continue
			}
			for i := uint64(0); i < p.MemSize; i++ {
				var b byte
				if i < p.FileSize {
					b = img[p.Offset+i]
				}
				expected[p.Addr+i] = b
			}
		}

		hdr, err := ReadHeader(img)
		if err != nil {
			t.Fatalf("[iter %d] %v", iter, err)
		}

		mem := newSparseMemory()
		if err = Load(img, hdr, mem); err != nil {
			t.Fatalf("[iter %d] %v", iter, err)
		}

		if len(mem.bytes) != len(expected) {
			t.Fatalf("[iter %d] expected %d bytes written; got %d", iter, len(expected), len(mem.bytes))
		}

		for addr, exp := range expected {
			if got := mem.bytes[addr]; got != exp {
				t.Fatalf("[iter %d] byte at 0x%x: expected 0x%x; got 0x%x", iter, addr, exp, got)
			}
		}
	}
}
