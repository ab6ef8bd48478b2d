package config

// DefaultConfigPath is where Load looks when no --config flag is given.
const DefaultConfigPath = "~/.config/mediasweep/config.toml"

const (
	defaultLogDir         = "~/.local/share/mediasweep/logs"
	defaultBackupDir      = "~/.local/share/mediasweep/backups"
	defaultConcurrency    = 8
	defaultMetadataMarker = "/metadata/"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			BackupDir: defaultBackupDir,
		},
		Reconcile: Reconcile{
			Concurrency:    defaultConcurrency,
			MetadataMarker: defaultMetadataMarker,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
