// Package config loads, normalizes, and validates the harvest configuration
// file. All settings have working defaults; a config file is optional and
// the incoming/library directories may come from it instead of the command
// line.
package config
