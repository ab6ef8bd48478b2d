package config

import "strings"

// normalize expands paths and fills zero values with defaults so validation
// only ever sees a fully-resolved config.
func (c *Config) normalize() error {
	var err error
	if c.Paths.CatalogDB, err = expandPath(c.Paths.CatalogDB); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}
	if c.Paths.BackupDir, err = expandPath(c.Paths.BackupDir); err != nil {
		return err
	}

	c.Server.URL = strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")

	if c.Reconcile.Concurrency == 0 {
		c.Reconcile.Concurrency = defaultConcurrency
	}
	if strings.TrimSpace(c.Reconcile.MetadataMarker) == "" {
		c.Reconcile.MetadataMarker = defaultMetadataMarker
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	return nil
}
