// Package config loads, normalizes, and validates scribe's TOML
// configuration.
//
// Load resolves the config file (explicit path, ~/.config/scribe/config.toml,
// or ./scribe.toml), applies defaults for missing values, expands ~ in path
// fields, and validates every section. A missing config file is not an
// error: the defaults describe a working local setup.
package config
