// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-seedshare.
//
// go-seedshare is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package config loads go-seedshare settings from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeremyhahn/go-seedshare/pkg/codes"
	"github.com/jeremyhahn/go-seedshare/pkg/threshold/shamir"
	"github.com/jeremyhahn/go-seedshare/pkg/validation"
)

// Config represents the complete configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Sharing  SharingConfig  `yaml:"sharing"`
	Codes    CodesConfig    `yaml:"codes"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DefaultsConfig holds values used when a command does not specify them
type DefaultsConfig struct {
	Version    string `yaml:"version"`
	Wordlist   string `yaml:"wordlist"`
	ShareCount int    `yaml:"share_count"`
	Threshold  int    `yaml:"threshold"`
}

// SharingConfig selects the secret sharing scheme
type SharingConfig struct {
	Scheme string `yaml:"scheme"` // gf256, sssa
}

// CodesConfig optionally replaces the built-in code tables. Changing a table
// makes previously issued shareable codes undecodable.
type CodesConfig struct {
	Wordlists map[string]string `yaml:"wordlists,omitempty"`
	Versions  map[string]string `yaml:"versions,omitempty"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls metrics collection
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Version:    codes.VersionV1,
			Wordlist:   codes.WordlistEnglish,
			ShareCount: 5,
			Threshold:  3,
		},
		Sharing: SharingConfig{
			Scheme: shamir.SchemeGF256,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from a YAML file over the defaults and applies
// environment variable overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 - Config file path is provided by the user
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies SEEDSHARE_* environment variables
func applyEnvOverrides(cfg *Config) {
	if version, ok := os.LookupEnv("SEEDSHARE_VERSION"); ok {
		cfg.Defaults.Version = version
	}
	if wordlist := os.Getenv("SEEDSHARE_WORDLIST"); wordlist != "" {
		cfg.Defaults.Wordlist = wordlist
	}
	if scheme := os.Getenv("SEEDSHARE_SCHEME"); scheme != "" {
		cfg.Sharing.Scheme = scheme
	}
	if count := os.Getenv("SEEDSHARE_SHARE_COUNT"); count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			log.Printf("Warning: invalid SEEDSHARE_SHARE_COUNT value %q, using %d: %v",
				validation.SanitizeForLog(count), cfg.Defaults.ShareCount, err)
		} else {
			cfg.Defaults.ShareCount = n
		}
	}
	if threshold := os.Getenv("SEEDSHARE_THRESHOLD"); threshold != "" {
		n, err := strconv.Atoi(threshold)
		if err != nil {
			log.Printf("Warning: invalid SEEDSHARE_THRESHOLD value %q, using %d: %v",
				validation.SanitizeForLog(threshold), cfg.Defaults.Threshold, err)
		} else {
			cfg.Defaults.Threshold = n
		}
	}
	if level := os.Getenv("SEEDSHARE_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("SEEDSHARE_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	if enabled := os.Getenv("SEEDSHARE_METRICS_ENABLED"); enabled != "" {
		b, err := strconv.ParseBool(enabled)
		if err != nil {
			log.Printf("Warning: invalid SEEDSHARE_METRICS_ENABLED value %q, using %t: %v",
				validation.SanitizeForLog(enabled), cfg.Metrics.Enabled, err)
		} else {
			cfg.Metrics.Enabled = b
		}
	}
	if textfile := os.Getenv("SEEDSHARE_METRICS_TEXTFILE"); textfile != "" {
		cfg.Metrics.Textfile = textfile
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Defaults.ShareCount < 2 || c.Defaults.ShareCount > shamir.MaxShares {
		return fmt.Errorf("invalid share_count: %d (must be 2-%d)", c.Defaults.ShareCount, shamir.MaxShares)
	}
	if c.Defaults.Threshold < 2 || c.Defaults.Threshold > c.Defaults.ShareCount {
		return fmt.Errorf("invalid threshold: %d (must be 2-%d)", c.Defaults.Threshold, c.Defaults.ShareCount)
	}

	if _, err := shamir.New(c.Sharing.Scheme); err != nil {
		return err
	}

	wordlists, _, err := c.CodeTables()
	if err != nil {
		return err
	}
	if _, ok := wordlists.Code(c.Defaults.Wordlist); !ok {
		return fmt.Errorf("default wordlist %q has no code (known: %s)",
			c.Defaults.Wordlist, strings.Join(wordlists.Names(), ", "))
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}
	validFormats := map[string]bool{
		"json": true, "text": true,
	}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logging.Format)
	}

	return nil
}

// CodeTables returns the configured code tables, falling back to the
// built-in tables for any that are not overridden.
func (c *Config) CodeTables() (wordlists, versions *codes.Table, err error) {
	wordlists, versions = codes.Wordlists(), codes.Versions()
	for _, overrides := range []map[string]string{c.Codes.Wordlists, c.Codes.Versions} {
		for name := range overrides {
			if err := validation.ValidateName(name); err != nil {
				return nil, nil, fmt.Errorf("invalid code table entry %q: %w", validation.SanitizeForLog(name), err)
			}
		}
	}
	if len(c.Codes.Wordlists) > 0 {
		if wordlists, err = codes.NewTable(c.Codes.Wordlists); err != nil {
			return nil, nil, fmt.Errorf("invalid wordlist codes: %w", err)
		}
	}
	if len(c.Codes.Versions) > 0 {
		if versions, err = codes.NewTable(c.Codes.Versions); err != nil {
			return nil, nil, fmt.Errorf("invalid version codes: %w", err)
		}
	}
	return wordlists, versions, nil
}
