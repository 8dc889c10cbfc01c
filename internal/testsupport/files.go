package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteSpeciesList writes a species name file where line N names national dex
// number N. Empty entries stay blank lines so lookups fall back.
func WriteSpeciesList(t *testing.T, dir string, names []string) string {
	t.Helper()
	path := filepath.Join(dir, "species_en.txt")
	if err := os.WriteFile(path, []byte(strings.Join(names, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write species list: %v", err)
	}
	return path
}

// WriteSpawnerDump writes one spawner catalog file with the given raw lines.
func WriteSpawnerDump(t *testing.T, path string, lines ...string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write spawner dump: %v", err)
	}
	return path
}
