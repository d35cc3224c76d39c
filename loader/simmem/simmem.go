//go:build linux

// Package simmem provides an anonymous memory mapping that stands in for a
// range of physical memory when the loader runs as a host process.
package simmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Region is a simulated physical address range [Base, Base+Size). It
// implements elfimage.Memory. Writes that fall outside the region are
// dropped and reported by Err.
type Region struct {
	base uint64
	mem  []byte
	err  error
}

// New maps size bytes of zeroed anonymous memory that simulate the physical
// range starting at base.
func New(base, size uint64) (*Region, error) {
	if size == 0 {
		return nil, fmt.Errorf("simmem: empty region at 0x%x", base)
	}

	mem, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("simmem: mapping %d bytes: %w", size, err)
	}

	return &Region{base: base, mem: mem}, nil
}

// Base returns the simulated physical address of the first byte.
func (r *Region) Base() uint64 { return r.base }

// Size returns the region size in bytes.
func (r *Region) Size() uint64 { return uint64(len(r.mem)) }

// Slice returns the backing bytes for [addr, addr+size) or nil if the
// range is not fully inside the region.
func (r *Region) Slice(addr, size uint64) []byte {
	if addr < r.base || addr-r.base > uint64(len(r.mem)) || size > uint64(len(r.mem))-(addr-r.base) {
		return nil
	}

	off := addr - r.base
	return r.mem[off : off+size]
}

// Zero implements elfimage.Memory.
func (r *Region) Zero(addr, size uint64) {
	dst := r.Slice(addr, size)
	if dst == nil && size != 0 {
		r.recordOutOfRange(addr, size)
		return
	}

	clear(dst)
}

// Copy implements elfimage.Memory.
func (r *Region) Copy(addr uint64, data []byte) {
	dst := r.Slice(addr, uint64(len(data)))
	if dst == nil && len(data) != 0 {
		r.recordOutOfRange(addr, uint64(len(data)))
		return
	}

	copy(dst, data)
}

// Err returns the first out-of-range write, if any.
func (r *Region) Err() error {
	return r.err
}

func (r *Region) recordOutOfRange(addr, size uint64) {
	if r.err == nil {
		r.err = fmt.Errorf("simmem: write to [0x%x, 0x%x) outside [0x%x, 0x%x)", addr, addr+size, r.base, r.base+r.Size())
	}
}

// Close unmaps the region.
func (r *Region) Close() error {
	if r.mem == nil {
		return nil
	}

	err := unix.Munmap(r.mem)
	r.mem = nil
	return err
}
