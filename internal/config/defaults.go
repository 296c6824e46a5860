package config

const (
	defaultDataDir           = "~/.local/share/perfin"
	defaultLogDir            = "~/.local/share/perfin/logs"
	defaultBackupDir         = "~/.local/share/perfin/backups"
	defaultExportDir         = "~/exports"
	defaultCatalogSystem     = "scott"
	defaultStampStatus       = "owned"
	defaultStampCondition    = "mint"
	defaultMaxGapSpan        = 1000
	defaultDisplayRangeLimit = 50
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			BackupDir: defaultBackupDir,
			ExportDir: defaultExportDir,
		},
		Defaults: Defaults{
			CatalogSystem:  defaultCatalogSystem,
			StampStatus:    defaultStampStatus,
			StampCondition: defaultStampCondition,
		},
		Reports: Reports{
			MaxGapSpan:        defaultMaxGapSpan,
			DisplayRangeLimit: defaultDisplayRangeLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
