// Package config loads and validates the stashmap TOML configuration.
//
// Configuration covers the console connection (address and timeouts), the data
// directory holding spawner catalogs and species names, the scan lock path, and
// logging output. Load applies defaults, expands ~ paths, normalizes values,
// and validates the result, so callers always receive a usable Config.
package config
