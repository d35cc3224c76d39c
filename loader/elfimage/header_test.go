package elfimage

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"gopherboot/kernel"
	"gopherboot/loader/elfimage/elftest"
	"testing"
)

func TestReadHeader(t *testing.T) {
	img := elftest.Build(0x2000, 0x200120, 0x40, []elftest.Prog{
		{Type: 1, Offset: 0x1000, Addr: 0x200000, FileSize: 0x400, MemSize: 0x1000},
		{Type: 4, Offset: 0x1400, Addr: 0x300000, FileSize: 0x20, MemSize: 0x20},
	})

	hdr, err := ReadHeader(img)
	if err != nil {
		t.Fatal(err)
	}

	exp := Header{Entry: 0x200120, TableOffset: 0x40, EntrySize: elftest.ProgHeaderSize, EntryCount: 2}
	if hdr != exp {
		t.Fatalf("expected header %+v; got %+v", exp, hdr)
	}
}

func TestReadHeaderErrors(t *testing.T) {
	valid := func() []byte {
		return elftest.Build(0x200, 0x1000, 0x40, []elftest.Prog{{Type: 1, Offset: 0, FileSize: 0x10, MemSize: 0x10}})
	}

	specs := []struct {
		descr  string
		img    func() []byte
		expErr *kernel.Error
	}{
		{
			"shorter than the header",
			func() []byte { return valid()[:HeaderSize-1] },
			errShortHeader,
		},
		{
			"bad magic",
			func() []byte { img := valid(); img[1] = 'X'; return img },
			errBadMagic,
		},
		{
			"32-bit class",
			func() []byte { img := valid(); img[4] = 1; return img },
			errNotELF64,
		},
		{
			"big endian",
			func() []byte { img := valid(); img[5] = 2; return img },
			errNotLittleEndian,
		},
		{
			"entry size below decoded fields",
			func() []byte {
				img := valid()
				binary.LittleEndian.PutUint16(img[offPhEntSize:], minPhEntSize-1)
				return img
			},
			errEntrySizeTooSmall,
		},
		{
			"table offset past the image",
			func() []byte {
				img := valid()
				binary.LittleEndian.PutUint64(img[offPhOff:], 0x201)
				return img
			},
			errTableOutOfBounds,
		},
		{
			"table end past the image",
			func() []byte {
				img := valid()
				binary.LittleEndian.PutUint16(img[offPhNum:], 9)
				return img
			},
			errTableOutOfBounds,
		},
		{
			"offset overflows when adding the table size",
			func() []byte {
				img := valid()
				binary.LittleEndian.PutUint64(img[offPhOff:], ^uint64(0)-8)
				return img
			},
			errTableOutOfBounds,
		},
	}

	for _, spec := range specs {
		t.Run(spec.descr, func(t *testing.T) {
			if _, err := ReadHeader(spec.img()); err != spec.expErr {
				t.Fatalf("expected error %v; got %v", spec.expErr, err)
			}
		})
	}
}

func TestReadHeaderNoSegments(t *testing.T) {
	img := elftest.Build(HeaderSize, 0x1000, 0, nil)
	binary.LittleEndian.PutUint16(img[offPhEntSize:], 0)

	hdr, err := ReadHeader(img)
	if err != nil {
		t.Fatal(err)
	}

	if err = Load(img, hdr, newSparseMemory()); err != nil {
		t.Fatal(err)
	}
}

func TestReadHeaderMatchesDebugELF(t *testing.T) {
	img := elftest.Build(0x3000, 0xffff800000200000, 0x80, []elftest.Prog{
		{Type: 6, Offset: 0x80, Addr: 0x200080, FileSize: 0xa8, MemSize: 0xa8},
		{Type: 1, Offset: 0x1000, Addr: 0x200000, FileSize: 0x800, MemSize: 0x2000},
		{Type: 1, Offset: 0x2000, Addr: 0x400000, FileSize: 0x1000, MemSize: 0x1000},
	})

	hdr, kErr := ReadHeader(img)
	if kErr != nil {
		t.Fatal(kErr)
	}

	f, err := elf.NewFile(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}

	if hdr.Entry != f.Entry {
		t.Fatalf("expected entry 0x%x; got 0x%x", f.Entry, hdr.Entry)
	}

	if int(hdr.EntryCount) != len(f.Progs) {
		t.Fatalf("expected %d program headers; got %d", len(f.Progs), hdr.EntryCount)
	}

	VisitSegments(img, hdr, func(index int, seg Segment) *kernel.Error {
		prog := f.Progs[index]
		exp := Segment{
			Type:     SegmentType(prog.Type),
			Offset:   prog.Off,
			Addr:     prog.Vaddr,
			FileSize: prog.Filesz,
			MemSize:  prog.Memsz,
		}
		if seg != exp {
			t.Errorf("[segment %d] expected %+v; got %+v", index, exp, seg)
		}
		return nil
	})
}
