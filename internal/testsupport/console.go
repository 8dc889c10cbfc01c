package testsupport

import (
	"context"
	"errors"
	"fmt"

	"stashmap/internal/console"
)

// FakeConsole implements console.Connector and console.Session over an
// in-memory address space, with switches for injecting each failure a scan
// can hit.
type FakeConsole struct {
	Meta    console.Metadata
	regions map[uint64][]byte

	Unavailable  bool
	ConnectErr   error
	MetadataErr  error
	FailReads    map[uint64]error
	TruncateRead map[uint64]int

	CloseCount int
}

// NewFakeConsole returns a fake with empty memory and the given metadata.
func NewFakeConsole(meta console.Metadata) *FakeConsole {
	return &FakeConsole{
		Meta:         meta,
		regions:      make(map[uint64][]byte),
		FailReads:    make(map[uint64]error),
		TruncateRead: make(map[uint64]int),
	}
}

// SetRegion installs bytes at an absolute address. Reads must start exactly
// at a region base; the fake is a map, not a flat address space.
func (f *FakeConsole) SetRegion(addr uint64, data []byte) {
	f.regions[addr] = data
}

// SetU64 installs a single little-endian 64-bit value, for pointer chains.
func (f *FakeConsole) SetU64(addr, value uint64) {
	data := make([]byte, 8)
	for i := 0; i < 8; i++ {
		data[i] = byte(value >> (8 * i))
	}
	f.SetRegion(addr, data)
}

func (f *FakeConsole) Available(context.Context) bool {
	return !f.Unavailable
}

func (f *FakeConsole) Connect(context.Context) (console.Session, error) {
	if f.ConnectErr != nil {
		return nil, f.ConnectErr
	}
	return f, nil
}

func (f *FakeConsole) Metadata(context.Context) (console.Metadata, error) {
	if f.MetadataErr != nil {
		return console.Metadata{}, f.MetadataErr
	}
	return f.Meta, nil
}

func (f *FakeConsole) ReadBytes(_ context.Context, addr uint64, length int) ([]byte, error) {
	if err, ok := f.FailReads[addr]; ok {
		return nil, err
	}
	data, ok := f.regions[addr]
	if !ok {
		return nil, fmt.Errorf("no region at %#x", addr)
	}
	if limit, ok := f.TruncateRead[addr]; ok && limit < length {
		return data[:limit], nil
	}
	if length > len(data) {
		return nil, errors.New("read past region end")
	}
	return data[:length], nil
}

func (f *FakeConsole) Close() error {
	f.CloseCount++
	return nil
}
