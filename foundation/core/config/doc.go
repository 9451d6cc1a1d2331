// Package config loads strkit configuration from TOML or YAML.
//
// Package: config
// Title: strkit Configuration
// Description: Reads a TOML or YAML document (format chosen by file
//              extension), exposes values through dot-path getters with
//              defaults, and lets environment variables override any key.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support and env overrides
// - 2025-10-18 v0.2.0: Flat dot-path defaults, string map getter, no file watching
//
// Environment overrides use the configured prefix and the upper-cased key
// with dots replaced by underscores: with prefix "STRKIT", the key
// "log.level" is overridden by STRKIT_LOG_LEVEL.
//
//	cfg, err := config.LoadWithOptions("strkit.toml", config.LoadOptions{
//	    EnvPrefix: "STRKIT",
//	    Defaults:  map[string]interface{}{"log.level": "warn"},
//	})
//	level := cfg.GetString("log.level")
package config
