package stash

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"stashmap/internal/console"
	"stashmap/internal/gamever"
	"stashmap/internal/logging"
	"stashmap/internal/pkx"
	"stashmap/internal/spawner"
	"stashmap/internal/testsupport"
)

var testBuild = [8]byte{0x8A, 0x1C, 0x86, 0xC4, 0x37, 0x39, 0x4B, 0x69} // 2.0.0

const (
	testMainBase = 0x1000000
	testWindow   = 0x4000
)

// wireConsole builds a fake whose pointer chain resolves to testWindow.
func wireConsole(window []byte) *testsupport.FakeConsole {
	fake := testsupport.NewFakeConsole(console.Metadata{
		TitleID:  gamever.TitleID,
		BuildID:  testBuild,
		MainBase: testMainBase,
	})
	profile, _ := gamever.Detect(testBuild)
	fake.SetU64(testMainBase+profile.StashBase, 0x2000)
	fake.SetU64(0x2000+0x120, 0x3000)
	fake.SetU64(0x3000+0x168, testWindow)
	fake.SetRegion(testWindow, window)
	return fake
}

// makeSlot encodes one stash slot: spawner hash, then the encrypted record.
func makeSlot(hash uint64, species uint16, ec uint32) []byte {
	slot := make([]byte, slotSize)
	binary.LittleEndian.PutUint64(slot, hash)

	record := slot[recordOffset : recordOffset+pkx.RecordLen]
	binary.LittleEndian.PutUint32(record, ec)
	binary.LittleEndian.PutUint16(record[pkx.SpeciesOffset:], species)
	pkx.Encrypt(record)
	return slot
}

func buildWindow(slots ...[]byte) []byte {
	window := make([]byte, windowSize)
	off := 0
	for _, slot := range slots {
		copy(window[off:], slot)
		off += slotSize
	}
	return window
}

func testCatalog(t *testing.T, hashes ...uint64) *spawner.Catalog {
	t.Helper()
	var dump string
	for i, hash := range hashes {
		dump += fmt.Sprintf("Spot %d - %016X - V3f(%d, 0, %d)\n", i, hash, i+1, -(i + 1))
	}
	path := filepath.Join(t.TempDir(), "t1_point_spawners.txt")
	if err := os.WriteFile(path, []byte(dump), 0o644); err != nil {
		t.Fatal(err)
	}
	catalog := spawner.NewCatalog()
	if err := catalog.LoadFile(path, 0, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	return catalog
}

func TestScanEndToEnd(t *testing.T) {
	window := buildWindow(
		makeSlot(0xAAAA, 917, 0x12345678), // remapped species
		makeSlot(0xBBBB, 25, 0x9ABCDEF0),  // passthrough species
		makeSlot(0xAAAA, 917, 0x12345678), // duplicate hash, dropped
		makeSlot(0xCCCC, 25, 0x11111111),  // no spawner, dropped
		makeSlot(0xDDDD, 0, 0x22222222),   // empty record, dropped
		makeSlot(terminatorHash, 1, 0x1),
		makeSlot(0xEEEE, 25, 0x1), // past the terminator, never seen
	)
	fake := wireConsole(window)
	scanner := NewScanner(fake, testCatalog(t, 0xAAAA, 0xBBBB, 0xEEEE), logging.NewNop())

	result, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(result.Entries))
	}
	first, second := result.Entries[0], result.Entries[1]
	if first.Hash != 0xAAAA || first.SpeciesInternal != 917 || first.National != 982 {
		t.Errorf("first entry = %+v", first)
	}
	if second.Hash != 0xBBBB || second.National != 25 {
		t.Errorf("second entry = %+v", second)
	}
	if first.Location.Name != "Spot 0" {
		t.Errorf("location = %+v", first.Location)
	}
	if result.Version != "2.0.0" {
		t.Errorf("version = %q", result.Version)
	}
	if result.Status != "2 shiny entries loaded (v2.0.0)" {
		t.Errorf("status = %q", result.Status)
	}
	if result.ScanID == "" {
		t.Error("scan ID should be set")
	}
	if fake.CloseCount != 1 {
		t.Errorf("close count = %d", fake.CloseCount)
	}
}

func TestScanZeroHashTerminates(t *testing.T) {
	window := buildWindow(
		makeSlot(0xAAAA, 25, 0x1),
		makeSlot(0, 25, 0x2),
		makeSlot(0xBBBB, 25, 0x3),
	)
	scanner := NewScanner(wireConsole(window), testCatalog(t, 0xAAAA, 0xBBBB), logging.NewNop())

	result, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Entries) != 1 || result.Entries[0].Hash != 0xAAAA {
		t.Fatalf("entries = %+v", result.Entries)
	}
}

func TestScanEmptyStash(t *testing.T) {
	window := buildWindow(makeSlot(terminatorHash, 1, 0x1))
	scanner := NewScanner(wireConsole(window), testCatalog(t), logging.NewNop())

	result, err := scanner.Scan(context.Background())
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("err = %v, want ErrEmptyResult", err)
	}
	if result == nil || result.Status != "shiny stash is empty" {
		t.Fatalf("result = %+v", result)
	}
	if result.Version != "2.0.0" {
		t.Errorf("version should survive an empty scan, got %q", result.Version)
	}
}

func TestScanConsoleUnavailable(t *testing.T) {
	fake := wireConsole(buildWindow())
	fake.Unavailable = true
	scanner := NewScanner(fake, testCatalog(t), logging.NewNop())

	if _, err := scanner.Scan(context.Background()); !errors.Is(err, ErrTargetUnavailable) {
		t.Fatalf("err = %v, want ErrTargetUnavailable", err)
	}
}

func TestScanWrongTitle(t *testing.T) {
	fake := wireConsole(buildWindow())
	fake.Meta.TitleID = 0x0100ABCDEF000000
	scanner := NewScanner(fake, testCatalog(t), logging.NewNop())

	if _, err := scanner.Scan(context.Background()); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestScanUnknownBuild(t *testing.T) {
	fake := wireConsole(buildWindow())
	fake.Meta.BuildID = [8]byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 0, 0, 0}
	scanner := NewScanner(fake, testCatalog(t), logging.NewNop())

	_, err := scanner.Scan(context.Background())
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestScanPointerReadFailure(t *testing.T) {
	fake := wireConsole(buildWindow())
	profile, _ := gamever.Detect(testBuild)
	fake.FailReads[testMainBase+profile.StashBase] = errors.New("debugger detached")
	scanner := NewScanner(fake, testCatalog(t), logging.NewNop())

	if _, err := scanner.Scan(context.Background()); !errors.Is(err, ErrMemoryRead) {
		t.Fatalf("err = %v, want ErrMemoryRead", err)
	}
}

func TestScanShortWindowRead(t *testing.T) {
	fake := wireConsole(buildWindow(makeSlot(0xAAAA, 25, 0x1)))
	fake.TruncateRead[testWindow] = 100
	scanner := NewScanner(fake, testCatalog(t, 0xAAAA), logging.NewNop())

	if _, err := scanner.Scan(context.Background()); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
}

func TestResolveStashWalksChain(t *testing.T) {
	fake := wireConsole(buildWindow())
	session, err := fake.Connect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	profile, _ := gamever.Detect(testBuild)

	addr, err := resolveStash(context.Background(), session, testMainBase, profile.StashBase)
	if err != nil {
		t.Fatal(err)
	}
	if addr != testWindow {
		t.Fatalf("resolved %#x, want %#x", addr, testWindow)
	}
}
