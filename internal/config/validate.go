package config

import (
	"errors"
	"fmt"
)

var knownStatuses = map[string]struct{}{
	"owned":  {},
	"wanted": {},
	"sold":   {},
}

var knownLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateDefaults() error {
	if _, ok := knownStatuses[c.Defaults.StampStatus]; !ok {
		return fmt.Errorf("defaults.stamp_status: unknown status %q (expected owned, wanted, or sold)", c.Defaults.StampStatus)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := knownLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
