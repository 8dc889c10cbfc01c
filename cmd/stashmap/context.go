package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"stashmap/internal/config"
	"stashmap/internal/console"
	"stashmap/internal/logging"
)

type commandContext struct {
	configFlag  *string
	consoleFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	// newConnector is swapped out by tests to avoid real TCP dials.
	newConnector func(cfg *config.Config) console.Connector
}

func newCommandContext(configFlag, consoleFlag *string) *commandContext {
	ctx := &commandContext{
		configFlag:  configFlag,
		consoleFlag: consoleFlag,
	}
	ctx.newConnector = func(cfg *config.Config) console.Connector {
		return console.NewClient(cfg.Console.Address,
			time.Duration(cfg.Console.DialTimeout)*time.Second,
			time.Duration(cfg.Console.ReadTimeout)*time.Second)
	}
	return ctx
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.consoleFlag != nil {
			if address := strings.TrimSpace(*c.consoleFlag); address != "" {
				cfg.Console.Address = address
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}

func (c *commandContext) connector() (console.Connector, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return c.newConnector(cfg), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
