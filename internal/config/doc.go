// Package config loads and validates mediasweep's TOML configuration.
//
// Load layers a user config file over repository defaults, expands ~ paths,
// and validates the result. The catalog database path is the only required
// setting; everything else has a usable default.
package config
