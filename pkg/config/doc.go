// Package config provides layered server configuration.
//
// Values come from three layers, lowest to highest precedence: built-in
// defaults, an optional YAML file, and HOMEMANAGER_* environment
// variables. Each attribute remembers which layer supplied it so
// `homectl configuration show` can display the effective configuration
// with sources.
package config
