// File: config.go
// Title: Configuration Loading and Access
// Description: Parses TOML (BurntSushi/toml) and YAML (yaml.v3) documents
//              into a nested map and serves typed values by dot path, with
//              flat defaults and environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-10-18 v0.2.0: Reduced to the getters the CLI needs, strkit error codes
// - 2026-10-18 v0.2.0: Removed Set; configuration is read-only after loading

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	skerror "github.com/msto63/strkit/foundation/core/error"
	skerrors "github.com/msto63/strkit/foundation/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a loaded configuration with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	defaults  map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values keyed by dot path
}

// Load loads configuration from a file with auto-detected format
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, skerrors.InvalidInput("config", "load", filePath, "non-empty file path")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, skerrors.ConfigLoadFailed("load", filePath, err)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, skerrors.ConfigLoadFailed("load", filePath, err)
	}

	return &Config{
		data:      data,
		defaults:  copyMap(options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	return LoadFromStringWithOptions(content, LoadOptions{Format: format})
}

// LoadFromStringWithOptions loads configuration from a string with custom options
func LoadFromStringWithOptions(content string, options LoadOptions) (*Config, error) {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, skerrors.ConfigLoadFailed("load_from_string", format.String()+" string", err)
	}

	return &Config{
		data:      data,
		defaults:  copyMap(options.Defaults),
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// Empty returns a configuration without file content, serving only defaults
// and environment overrides.
func Empty(options LoadOptions) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		defaults:  copyMap(options.Defaults),
		format:    options.Format,
		envPrefix: options.EnvPrefix,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, skerror.Wrap(err, "TOML parse error").
				WithCode(skerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, skerror.Wrap(err, "YAML parse error").
				WithCode(skerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, skerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(skerror.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

// FilePath returns the file the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format the configuration was parsed as
func (c *Config) Format() Format {
	return c.format
}

// Has reports whether key is set in the document, the defaults or the environment
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.envValue(key); ok {
		return true
	}
	return c.value(key) != nil
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if env, ok := c.envValue(key); ok {
		return env
	}

	switch v := c.value(key).(type) {
	case nil:
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if env, ok := c.envValue(key); ok {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
	}

	switch v := c.value(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if env, ok := c.envValue(key); ok {
		if b, err := strconv.ParseBool(env); err == nil {
			return b
		}
	}

	switch v := c.value(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringMap returns a table of string values. Non-string values are
// rendered with %v. A missing key yields nil.
func (c *Config) GetStringMap(key string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, ok := c.value(key).(map[string]interface{})
	if !ok {
		return nil
	}

	result := make(map[string]string, len(table))
	for k, v := range table {
		if s, ok := v.(string); ok {
			result[k] = s
		} else {
			result[k] = fmt.Sprintf("%v", v)
		}
	}
	return result
}

// Keys returns the sorted dot paths of all leaf values in the document
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	collectKeys("", c.data, &keys)
	sort.Strings(keys)
	return keys
}

// value resolves key in the document, falling back to the defaults
func (c *Config) value(key string) interface{} {
	var current interface{} = c.data
	for _, part := range strings.Split(key, ".") {
		table, ok := current.(map[string]interface{})
		if !ok {
			current = nil
			break
		}
		current = table[part]
	}

	if current != nil {
		return current
	}
	return c.defaults[key]
}

// envValue looks up PREFIX_KEY_PATH in the environment
func (c *Config) envValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	name := strings.ToUpper(c.envPrefix + "_" + strings.ReplaceAll(key, ".", "_"))
	return os.LookupEnv(name)
}

func collectKeys(prefix string, table map[string]interface{}, keys *[]string) {
	for k, v := range table {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			collectKeys(path, nested, keys)
			continue
		}
		*keys = append(*keys, path)
	}
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
