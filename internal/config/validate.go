package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the resolved configuration for contradictions. It runs
// after normalize, so empty defaults have already been filled.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.CatalogDB) == "" {
		return errors.New("paths.catalog_db is required: set it to the media server's library database")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.BackupDir) == "" {
		return errors.New("paths.backup_dir must not be empty")
	}

	if c.Server.URL != "" {
		parsed, err := url.Parse(c.Server.URL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("server.url %q is not a valid http(s) URL", c.Server.URL)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("server.url scheme %q is not supported", parsed.Scheme)
		}
	}

	if c.Reconcile.Concurrency < 1 {
		return fmt.Errorf("reconcile.concurrency must be at least 1, got %d", c.Reconcile.Concurrency)
	}
	if strings.ContainsAny(c.Reconcile.MetadataMarker, "%_") {
		return fmt.Errorf("reconcile.metadata_marker %q must not contain SQL wildcard characters", c.Reconcile.MetadataMarker)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	return nil
}
