package spawner

import (
	"os"
	"path/filepath"
	"testing"

	"stashmap/internal/logging"
)

func TestParseLineValid(t *testing.T) {
	line := `"Vert Plaza" - 0123456789ABCDEF - V3f(12.5, 3.0, -401.25)`
	location, reason := ParseLine(line, 2)
	if reason != skipNone {
		t.Fatalf("unexpected skip: %v", reason)
	}
	if location.Hash != 0x0123456789ABCDEF {
		t.Errorf("hash = %#x", location.Hash)
	}
	if location.Name != "Vert Plaza" {
		t.Errorf("name = %q, want quotes trimmed", location.Name)
	}
	if location.X != 12.5 || location.Y != 3.0 || location.Z != -401.25 {
		t.Errorf("coordinates = (%v, %v, %v)", location.X, location.Y, location.Z)
	}
	if location.MapIndex != 2 {
		t.Errorf("map index = %d", location.MapIndex)
	}
}

func TestParseLineLowercaseHash(t *testing.T) {
	line := `Rooftop - 00deadbeef001234 - V3f(1, 2, 3)`
	location, reason := ParseLine(line, 0)
	if reason != skipNone {
		t.Fatalf("unexpected skip: %v", reason)
	}
	if location.Hash != 0x00DEADBEEF001234 {
		t.Errorf("hash = %#x", location.Hash)
	}
}

func TestParseLineSkipReasons(t *testing.T) {
	cases := []struct {
		name string
		line string
		want SkipReason
	}{
		{"short", "x - y", SkipTooShort},
		{"no delimiter", "a line that is long enough but has no separators", SkipMissingDelimiter},
		{"one delimiter", "Name - 0123456789ABCDEF V3f(1, 2, 3)", SkipMissingDelimiter},
		{"short hash", "Name - 123456789ABCDEF - V3f(1, 2, 3)", SkipBadHash},
		{"long hash", "Name - 00123456789ABCDEF - V3f(1, 2, 3)", SkipBadHash},
		{"non-hex hash", "Name - 0123456789ABCDEG - V3f(1, 2, 3)", SkipBadHash},
		{"no vector", "Name - 0123456789ABCDEF - somewhere else entirely", SkipMissingVector},
		{"unclosed vector", "Name - 0123456789ABCDEF - V3f(1, 2, 3", SkipMissingVector},
		{"two coordinates", "Name - 0123456789ABCDEF - V3f(1, 2)", SkipBadCoordinates},
		{"non-numeric", "Name - 0123456789ABCDEF - V3f(1, 2, north)", SkipBadCoordinates},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, reason := ParseLine(tc.line, 0); reason != tc.want {
				t.Errorf("reason = %v, want %v", reason, tc.want)
			}
		})
	}
}

func writeDump(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileTolerant(t *testing.T) {
	dump := "# comment line that should be skipped quietly\n" +
		`First - 0000000000000001 - V3f(1, 1, 1)` + "\n" +
		"\n" +
		`Second - 0000000000000002 - V3f(2, 2, 2)` + "\n" +
		"garbage that still gets counted as skipped, not fatal\n"

	catalog := NewCatalog()
	if err := catalog.LoadFile(writeDump(t, "t1_point_spawners.txt", dump), 0, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("entries = %d, want 2", catalog.Len())
	}
	if catalog.Skipped() != 3 {
		t.Errorf("skipped = %d, want 3", catalog.Skipped())
	}
	if _, ok := catalog.Lookup(0x2); !ok {
		t.Error("second entry missing")
	}
}

func TestLoadFileDuplicateHashLastWins(t *testing.T) {
	dump := `Old Name - 00000000000000AA - V3f(1, 1, 1)` + "\n" +
		`New Name - 00000000000000AA - V3f(9, 9, 9)` + "\n"

	catalog := NewCatalog()
	if err := catalog.LoadFile(writeDump(t, "dump.txt", dump), 0, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("entries = %d, want 1", catalog.Len())
	}
	location, _ := catalog.Lookup(0xAA)
	if location.Name != "New Name" || location.X != 9 {
		t.Errorf("later line should win, got %+v", location)
	}
	if len(catalog.All()) != 2 {
		t.Errorf("All should keep both lines, got %d", len(catalog.All()))
	}
}

func TestLoadStandardMissingFileIsWarning(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "t1_point_spawners.txt")
	if err := os.WriteFile(one, []byte(`Plaza - 0000000000000001 - V3f(1, 2, 3)`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog := NewCatalog()
	paths := [4]string{
		one,
		filepath.Join(dir, "t2_point_spawners.txt"),
		filepath.Join(dir, "t3_point_spawners.txt"),
		filepath.Join(dir, "t4_point_spawners.txt"),
	}
	if err := catalog.LoadStandard(paths, logging.NewNop()); err != nil {
		t.Fatalf("missing files must not fail the load: %v", err)
	}
	if catalog.Len() != 1 {
		t.Errorf("entries = %d, want 1", catalog.Len())
	}
}

func TestByMap(t *testing.T) {
	catalog := NewCatalog()
	dumpA := `A - 0000000000000001 - V3f(1, 1, 1)` + "\n"
	dumpB := `B - 0000000000000002 - V3f(2, 2, 2)` + "\n" +
		`C - 0000000000000003 - V3f(3, 3, 3)` + "\n"
	if err := catalog.LoadFile(writeDump(t, "a.txt", dumpA), 0, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	if err := catalog.LoadFile(writeDump(t, "b.txt", dumpB), 3, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	if got := len(catalog.ByMap(3)); got != 2 {
		t.Errorf("ByMap(3) = %d entries, want 2", got)
	}
	if got := len(catalog.ByMap(1)); got != 0 {
		t.Errorf("ByMap(1) = %d entries, want 0", got)
	}
}
