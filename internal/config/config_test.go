package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("exists should be false for a missing config file")
	}
	if cfg.Console.Address != defaultConsoleAddress {
		t.Errorf("address should default, got %q", cfg.Console.Address)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("logging format should default to console, got %q", cfg.Logging.Format)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[console]
address = "10.0.0.7:6000"
dial_timeout = 2

[data]
dir = "` + dir + `"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Error("exists should be true")
	}
	if resolved != path {
		t.Errorf("resolved path mismatch: %q", resolved)
	}
	if cfg.Console.Address != "10.0.0.7:6000" {
		t.Errorf("address mismatch: %q", cfg.Console.Address)
	}
	if cfg.Console.ReadTimeout != defaultReadTimeout {
		t.Errorf("omitted read_timeout should default, got %d", cfg.Console.ReadTimeout)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format should normalize to lowercase, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level should normalize to lowercase, got %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadAddress(t *testing.T) {
	cfg := Default()
	cfg.Console.Address = "not-an-address"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for address without port")
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}

func TestValidateRejectsSpeciesFileWithPath(t *testing.T) {
	cfg := Default()
	cfg.Data.SpeciesFile = "../species_en.txt"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for species_file containing a path")
	}
}

func TestSpawnerFilesOrderedByMapIndex(t *testing.T) {
	cfg := Default()
	cfg.Data.Dir = "/data"
	files := cfg.SpawnerFiles()
	for i, path := range files {
		want := filepath.Join("/data", spawnerFileNames[i])
		if path != want {
			t.Errorf("map %d: got %q, want %q", i, path, want)
		}
	}
	if !strings.HasSuffix(files[0], "t1_point_spawners.txt") {
		t.Errorf("map 0 should be tier 1, got %q", files[0])
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if !exists {
		t.Error("sample config file should exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config should validate: %v", err)
	}
}
