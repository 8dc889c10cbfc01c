package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stashmap/internal/testsupport"
)

// cliTestEnv holds the temp config and data directory backing one CLI test.
type cliTestEnv struct {
	configPath string
	dataDir    string
	lockPath   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	dataDir := filepath.Join(base, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}

	// Species 25 resolves to a real name; everything else falls back.
	species := make([]string, 26)
	species[25] = "Pikachu"
	testsupport.WriteSpeciesList(t, dataDir, species)

	testsupport.WriteSpawnerDump(t, filepath.Join(dataDir, "t1_point_spawners.txt"),
		"Vert Plaza - 000000000000AAAA - V3f(-500, 12, -500)",
		"Rouge Alley - 000000000000BBBB - V3f(10, 0, 20)")
	// The other three map files stay absent; loading must tolerate that.

	env := &cliTestEnv{
		configPath: filepath.Join(base, "config.toml"),
		dataDir:    dataDir,
		lockPath:   filepath.Join(base, "scan.lock"),
	}
	writeFile(t, env.configPath, fmt.Sprintf(
		"[console]\naddress = \"127.0.0.1:6000\"\n\n"+
			"[data]\ndir = %q\n\n"+
			"[scan]\nlock_path = %q\n\n"+
			"[logging]\nformat = \"json\"\nlevel = \"error\"\n",
		dataDir, env.lockPath))
	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
