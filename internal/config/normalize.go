package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeConsole(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeConsole() error {
	c.Console.Address = strings.TrimSpace(c.Console.Address)
	if c.Console.Address == "" {
		if value, ok := os.LookupEnv("STASHMAP_CONSOLE"); ok {
			c.Console.Address = strings.TrimSpace(value)
		}
	}
	if c.Console.DialTimeout <= 0 {
		c.Console.DialTimeout = defaultDialTimeout
	}
	if c.Console.ReadTimeout <= 0 {
		c.Console.ReadTimeout = defaultReadTimeout
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Data.Dir) == "" {
		c.Data.Dir = defaultDataDir
	}
	if c.Data.Dir, err = expandPath(c.Data.Dir); err != nil {
		return fmt.Errorf("data.dir: %w", err)
	}
	c.Data.SpeciesFile = strings.TrimSpace(c.Data.SpeciesFile)
	if c.Data.SpeciesFile == "" {
		c.Data.SpeciesFile = defaultSpeciesFile
	}
	if strings.TrimSpace(c.Scan.LockPath) == "" {
		c.Scan.LockPath = defaultLockPath
	}
	if c.Scan.LockPath, err = expandPath(c.Scan.LockPath); err != nil {
		return fmt.Errorf("scan.lock_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
