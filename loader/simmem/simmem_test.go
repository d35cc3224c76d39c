//go:build linux

package simmem

import (
	"bytes"
	"gopherboot/loader/elfimage"
	"gopherboot/loader/elfimage/elftest"
	"testing"
)

func TestRegionLoadsImage(t *testing.T) {
	r, err := New(0x200000, 0x4000)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	img := elftest.Build(0x2000, 0x200000, 0x40, []elftest.Prog{
		{Type: 1, Offset: 0x1000, Addr: 0x200000, FileSize: 0x400, MemSize: 0x1000},
		{Type: 1, Offset: 0x1400, Addr: 0x202000, FileSize: 0x100, MemSize: 0x100},
	})

	// dirty the region so that zero-filling is observable
	copy(r.Slice(0x200000, 0x4000), bytes.Repeat([]byte{0xaa}, 0x4000))

	hdr, kErr := elfimage.ReadHeader(img)
	if kErr != nil {
		t.Fatal(kErr)
	}

	if kErr = elfimage.Load(img, hdr, r); kErr != nil {
		t.Fatal(kErr)
	}

	if err = r.Err(); err != nil {
		t.Fatal(err)
	}

	specs := []struct {
		addr uint64
		exp  []byte
	}{
		{0x200000, img[0x1000:0x1400]},
		{0x200400, make([]byte, 0xc00)},
		{0x201000, bytes.Repeat([]byte{0xaa}, 0x1000)},
		{0x202000, img[0x1400:0x1500]},
	}

	for specIndex, spec := range specs {
		if got := r.Slice(spec.addr, uint64(len(spec.exp))); !bytes.Equal(got, spec.exp) {
			t.Errorf("[spec %d] unexpected contents at 0x%x", specIndex, spec.addr)
		}
	}
}

func TestRegionOutOfRange(t *testing.T) {
	r, err := New(0x1000, 0x1000)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	specs := []struct {
		addr, size uint64
	}{
		{0x0, 0x10},
		{0xff0, 0x20},
		{0x1ff0, 0x20},
		{0x2000, 0x1},
		{0x1001, ^uint64(0)},
	}

	for specIndex, spec := range specs {
		if r.Slice(spec.addr, spec.size) != nil {
			t.Errorf("[spec %d] expected nil slice for [0x%x, +0x%x)", specIndex, spec.addr, spec.size)
		}
	}

	r.Zero(0x1ff0, 0x20)
	r.Copy(0x3000, []byte{1})
	if r.Err() == nil {
		t.Fatal("expected out-of-range writes to be reported")
	}

	if got := r.Slice(0x2000, 0); got == nil || len(got) != 0 {
		t.Fatal("expected an empty slice at the end of the region")
	}
}

func TestNewEmptyRegion(t *testing.T) {
	if _, err := New(0x1000, 0); err == nil {
		t.Fatal("expected an error for an empty region")
	}
}
