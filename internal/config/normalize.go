package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDefaults()
	c.normalizeReports()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.BackupDir) == "" {
		c.Paths.BackupDir = defaultBackupDir
	}
	if c.Paths.BackupDir, err = expandPath(c.Paths.BackupDir); err != nil {
		return fmt.Errorf("paths.backup_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDefaults() {
	c.Defaults.CatalogSystem = strings.ToLower(strings.TrimSpace(c.Defaults.CatalogSystem))
	if c.Defaults.CatalogSystem == "" {
		c.Defaults.CatalogSystem = defaultCatalogSystem
	}
	c.Defaults.StampStatus = strings.ToLower(strings.TrimSpace(c.Defaults.StampStatus))
	if c.Defaults.StampStatus == "" {
		c.Defaults.StampStatus = defaultStampStatus
	}
	c.Defaults.StampCondition = strings.ToLower(strings.TrimSpace(c.Defaults.StampCondition))
	if c.Defaults.StampCondition == "" {
		c.Defaults.StampCondition = defaultStampCondition
	}
}

func (c *Config) normalizeReports() {
	if c.Reports.MaxGapSpan <= 0 {
		c.Reports.MaxGapSpan = defaultMaxGapSpan
	}
	if c.Reports.DisplayRangeLimit < 0 {
		c.Reports.DisplayRangeLimit = defaultDisplayRangeLimit
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
