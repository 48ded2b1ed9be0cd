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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// TestLoad_Success tests successful loading of a valid config file
func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
defaults:
  version: "v1"
  wordlist: "japanese"
  share_count: 7
  threshold: 4

sharing:
  scheme: "sssa"

logging:
  level: "debug"
  format: "json"

metrics:
  enabled: false
  textfile: "/var/lib/node_exporter/seedshare.prom"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Defaults.Wordlist != "japanese" {
		t.Errorf("Wordlist = %v, want japanese", cfg.Defaults.Wordlist)
	}
	if cfg.Defaults.ShareCount != 7 || cfg.Defaults.Threshold != 4 {
		t.Errorf("ShareCount/Threshold = %d/%d, want 7/4", cfg.Defaults.ShareCount, cfg.Defaults.Threshold)
	}
	if cfg.Sharing.Scheme != "sssa" {
		t.Errorf("Scheme = %v, want sssa", cfg.Sharing.Scheme)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics should be disabled")
	}
	if cfg.Metrics.Textfile != "/var/lib/node_exporter/seedshare.prom" {
		t.Errorf("Textfile = %v", cfg.Metrics.Textfile)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
sharing:
  scheme: "gf256"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	def := Default()
	if cfg.Defaults != def.Defaults {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, def.Defaults)
	}
	if cfg.Logging != def.Logging {
		t.Errorf("Logging = %+v, want %+v", cfg.Logging, def.Logging)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Sharing.Scheme != "gf256" {
		t.Errorf("Scheme = %v, want gf256", cfg.Sharing.Scheme)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "defaults: [unclosed")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "threshold above share count",
			content: "defaults:\n  share_count: 3\n  threshold: 4\n",
			errMsg:  "invalid threshold",
		},
		{
			name:    "share count too large",
			content: "defaults:\n  share_count: 300\n",
			errMsg:  "invalid share_count",
		},
		{
			name:    "unknown scheme",
			content: "sharing:\n  scheme: xor\n",
			errMsg:  "unknown secret sharing scheme",
		},
		{
			name:    "unknown wordlist",
			content: "defaults:\n  wordlist: klingon\n",
			errMsg:  "default wordlist",
		},
		{
			name:    "invalid log level",
			content: "logging:\n  level: loud\n",
			errMsg:  "invalid log level",
		},
		{
			name:    "invalid log format",
			content: "logging:\n  format: xml\n",
			errMsg:  "invalid log format",
		},
		{
			name:    "duplicate wordlist codes",
			content: "codes:\n  wordlists:\n    english: \"01\"\n    french: \"01\"\n",
			errMsg:  "invalid wordlist codes",
		},
		{
			name:    "unsafe code table name",
			content: "codes:\n  versions:\n    \"../v1\": \"01\"\n",
			errMsg:  "invalid code table entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestCodeTables_Override(t *testing.T) {
	path := writeConfig(t, `
defaults:
  wordlist: "english"
codes:
  wordlists:
    english: "a1"
  versions:
    v2: "02"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	wordlists, versions, err := cfg.CodeTables()
	if err != nil {
		t.Fatalf("CodeTables() failed: %v", err)
	}
	if code, _ := wordlists.Code("english"); code != "a1" {
		t.Errorf("english code = %v, want a1", code)
	}
	if wordlists.Len() != 1 {
		t.Errorf("wordlist table has %d entries, want 1", wordlists.Len())
	}
	if code, _ := versions.Code("v2"); code != "02" {
		t.Errorf("v2 code = %v, want 02", code)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SEEDSHARE_VERSION", "")
	t.Setenv("SEEDSHARE_WORDLIST", "french")
	t.Setenv("SEEDSHARE_SCHEME", "sssa")
	t.Setenv("SEEDSHARE_SHARE_COUNT", "9")
	t.Setenv("SEEDSHARE_THRESHOLD", "6")
	t.Setenv("SEEDSHARE_LOG_LEVEL", "warn")
	t.Setenv("SEEDSHARE_LOG_FORMAT", "json")
	t.Setenv("SEEDSHARE_METRICS_ENABLED", "false")
	t.Setenv("SEEDSHARE_METRICS_TEXTFILE", "/tmp/seedshare.prom")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Defaults.Version != "" {
		t.Errorf("Version = %q, want empty", cfg.Defaults.Version)
	}
	if cfg.Defaults.Wordlist != "french" {
		t.Errorf("Wordlist = %v, want french", cfg.Defaults.Wordlist)
	}
	if cfg.Sharing.Scheme != "sssa" {
		t.Errorf("Scheme = %v, want sssa", cfg.Sharing.Scheme)
	}
	if cfg.Defaults.ShareCount != 9 || cfg.Defaults.Threshold != 6 {
		t.Errorf("ShareCount/Threshold = %d/%d, want 9/6", cfg.Defaults.ShareCount, cfg.Defaults.Threshold)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics should be disabled")
	}
	if cfg.Metrics.Textfile != "/tmp/seedshare.prom" {
		t.Errorf("Textfile = %v", cfg.Metrics.Textfile)
	}
}

func TestApplyEnvOverrides_InvalidNumbers(t *testing.T) {
	t.Setenv("SEEDSHARE_SHARE_COUNT", "many")
	t.Setenv("SEEDSHARE_THRESHOLD", "few")
	t.Setenv("SEEDSHARE_METRICS_ENABLED", "maybe")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Defaults.ShareCount != 5 || cfg.Defaults.Threshold != 3 {
		t.Errorf("invalid values should keep defaults, got %d/%d", cfg.Defaults.ShareCount, cfg.Defaults.Threshold)
	}
	if !cfg.Metrics.Enabled {
		t.Error("invalid bool should keep default")
	}
}
