package boot

import (
	"gopherboot/kernel"
)

var (
	errFakeNotFound = &kernel.Error{Module: "fake", Message: "file not found"}
	errFakeMapSmall = &kernel.Error{Module: "fake", Message: "memory map buffer too small"}
	errFakeQuery    = &kernel.Error{Module: "fake", Message: "query failed"}
)

type fakeGOP struct {
	modes     []ModeInfo
	failQuery map[uint32]bool
	queried   []uint32
	setCalls  []uint32
}

func (g *fakeGOP) ModeCount() uint32 { return uint32(len(g.modes)) }

func (g *fakeGOP) QueryMode(mode uint32) (ModeInfo, *kernel.Error) {
	g.queried = append(g.queried, mode)
	if g.failQuery[mode] {
		return ModeInfo{}, errFakeQuery
	}
	return g.modes[mode], nil
}

func (g *fakeGOP) SetMode(mode uint32) *kernel.Error {
	g.setCalls = append(g.setCalls, mode)
	return nil
}

func (g *fakeGOP) Framebuffer() (uint64, uint64) {
	if len(g.setCalls) == 0 {
		return 0, 0
	}
	info := g.modes[g.setCalls[len(g.setCalls)-1]]
	return 0x80000000, uint64(info.PixelsPerScanLine) * uint64(info.Height) * 4
}

type fakeFile struct {
	data   []byte
	isDir  bool
	short  int
	reads  int
	closed bool
}

func (f *fakeFile) Info() (FileInfo, *kernel.Error) {
	return FileInfo{Size: uint64(len(f.data)), IsDir: f.isDir}, nil
}

func (f *fakeFile) Read(buf []byte) (int, *kernel.Error) {
	f.reads++
	n := copy(buf, f.data)
	return n - f.short, nil
}

func (f *fakeFile) Close() { f.closed = true }

type fakeVolume struct {
	files map[string]*fakeFile
	opens int
}

func (v *fakeVolume) Open(path string) (File, *kernel.Error) {
	v.opens++
	f, ok := v.files[path]
	if !ok {
		return nil, errFakeNotFound
	}
	return f, nil
}

// fakeFirmware models a memory map that grows by growth entries between the
// size query and the exit call.
type fakeFirmware struct {
	entries   uint64
	descSize  uint64
	growth    uint64
	allocated []uint64
	exitCalls int
}

func newFakeFirmware() *fakeFirmware {
	return &fakeFirmware{entries: 40, descSize: 48, growth: 1}
}

func (fw *fakeFirmware) Allocate(size uint64) ([]byte, *kernel.Error) {
	fw.allocated = append(fw.allocated, size)
	return make([]byte, size), nil
}

func (fw *fakeFirmware) MemoryMapSize() (uint64, uint64, *kernel.Error) {
	return fw.entries * fw.descSize, fw.descSize, nil
}

func (fw *fakeFirmware) ExitBootServices(mapBuf []byte) *kernel.Error {
	fw.exitCalls++
	if uint64(len(mapBuf)) < (fw.entries+fw.growth)*fw.descSize {
		return errFakeMapSmall
	}
	return nil
}

type recordingMemory struct {
	writes int
	data   map[uint64]byte
}

func (m *recordingMemory) Zero(addr, size uint64) {
	m.writes++
	for i := uint64(0); i < size; i++ {
		m.data[addr+i] = 0
	}
}

func (m *recordingMemory) Copy(addr uint64, data []byte) {
	m.writes++
	for i, b := range data {
		m.data[addr+uint64(i)] = b
	}
}
