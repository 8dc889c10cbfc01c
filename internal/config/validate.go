package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConsole(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateConsole() error {
	if c.Console.Address == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/stashmap/config.toml"
		}
		return fmt.Errorf("console.address is required. Set STASHMAP_CONSOLE env var or edit %s (create with 'stashmap config init')", defaultPath)
	}
	if _, _, err := net.SplitHostPort(c.Console.Address); err != nil {
		return fmt.Errorf("console.address must be host:port: %w", err)
	}
	if c.Console.DialTimeout <= 0 {
		return errors.New("console.dial_timeout must be positive (seconds)")
	}
	if c.Console.ReadTimeout <= 0 {
		return errors.New("console.read_timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.Dir) == "" {
		return errors.New("data.dir must be set")
	}
	if strings.ContainsAny(c.Data.SpeciesFile, "/\\") {
		return errors.New("data.species_file must be a bare file name inside data.dir")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
