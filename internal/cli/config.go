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

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jeremyhahn/go-seedshare/internal/config"
	"github.com/jeremyhahn/go-seedshare/pkg/correlation"
	"github.com/jeremyhahn/go-seedshare/pkg/logging"
	"github.com/jeremyhahn/go-seedshare/pkg/metrics"
	"github.com/jeremyhahn/go-seedshare/pkg/seedshare"
	"github.com/jeremyhahn/go-seedshare/pkg/shareable"
	"github.com/jeremyhahn/go-seedshare/pkg/threshold/shamir"
)

// Config holds global CLI configuration
type Config struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// OutputFormat controls output formatting (text, json)
	OutputFormat string

	// Verbose enables debug logging
	Verbose bool

	// Scheme overrides the configured secret sharing scheme (gf256, sssa)
	Scheme string

	// MetricsTextfile overrides the configured metrics textfile path
	MetricsTextfile string

	settings *config.Config
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		OutputFormat: "text",
	}
}

// Settings loads the configuration file once and applies flag overrides on
// top of it.
func (c *Config) Settings() (*config.Config, error) {
	if c.settings != nil {
		return c.settings, nil
	}
	settings, err := config.Load(c.ConfigFile)
	if err != nil {
		return nil, err
	}
	if c.Scheme != "" {
		settings.Sharing.Scheme = c.Scheme
	}
	if c.MetricsTextfile != "" {
		settings.Metrics.Textfile = c.MetricsTextfile
	}
	if c.Verbose {
		settings.Logging.Level = "debug"
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if settings.Metrics.Enabled {
		metrics.Enable()
	} else {
		metrics.Disable()
	}
	c.settings = settings
	return settings, nil
}

// CreateSplitter builds a Splitter from the loaded settings. Logs go to w and
// carry the correlation ID of ctx.
func (c *Config) CreateSplitter(ctx context.Context, w io.Writer) (*seedshare.Splitter, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}

	wordlists, versions, err := settings.CodeTables()
	if err != nil {
		return nil, err
	}
	codec, err := shareable.NewCodec(
		shareable.WithWordlists(wordlists),
		shareable.WithVersions(versions),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create codec: %w", err)
	}

	scheme, err := shamir.New(settings.Sharing.Scheme)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Options{
		Level:  settings.Logging.Level,
		Format: settings.Logging.Format,
		Writer: w,
	}).With(correlation.LogKey, correlation.ID(ctx))

	return seedshare.New(
		seedshare.WithCodec(codec),
		seedshare.WithScheme(scheme),
		seedshare.WithLogger(logger),
	)
}

// flushMetrics writes the metrics textfile when one is configured
func (c *Config) flushMetrics() error {
	if c.settings == nil || !c.settings.Metrics.Enabled || c.settings.Metrics.Textfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(c.settings.Metrics.Textfile); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
