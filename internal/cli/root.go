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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-seedshare/pkg/correlation"
)

// newRootCmd builds the command tree around cfg
func newRootCmd(cfg *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seedshare",
		Short: "go-seedshare CLI - Mnemonic threshold sharing tool",
		Long: `go-seedshare converts BIP-39 mnemonics into checksummed shareable codes
and splits those codes into threshold secret shares.

Any threshold of the shares recovers the mnemonic. Fewer shares, shares
from different splits or corrupted shares are rejected by the shareable
code checksum.

Supported schemes:
  - gf256: Shamir sharing over GF(2^8), hex payload
  - sssa:  Shamir sharing over a 256-bit prime field, base64url payload`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx, _ := correlation.Ensure(cmd.Context())
			cmd.SetContext(ctx)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "",
		"config file (defaults and SEEDSHARE_* environment variables apply when empty)")
	rootCmd.PersistentFlags().StringVarP(&cfg.OutputFormat, "output", "o", "text",
		"output format (text, json, table)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().StringVar(&cfg.Scheme, "scheme", "",
		"secret sharing scheme (gf256, sssa)")
	rootCmd.PersistentFlags().StringVar(&cfg.MetricsTextfile, "metrics-textfile", "",
		"write Prometheus metrics to this file on exit")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd(cfg))
	rootCmd.AddCommand(newEncodeCmd(cfg))
	rootCmd.AddCommand(newDecodeCmd(cfg))
	rootCmd.AddCommand(newInspectCmd(cfg))
	rootCmd.AddCommand(newSplitCmd(cfg))
	rootCmd.AddCommand(newCombineCmd(cfg))
	rootCmd.AddCommand(newWordlistsCmd(cfg))

	return rootCmd
}

// Execute runs the root command with the process arguments. Errors are
// printed to stderr in the selected output format.
func Execute() error {
	cfg := NewConfig()
	err := run(cfg, newRootCmd(cfg))
	if err != nil {
		printer := NewPrinter(cfg.OutputFormat, os.Stderr)
		_ = printer.PrintError(err) // Error printing to stderr is best-effort
	}
	return err
}

// run executes cmd and flushes metrics whether or not the command failed
func run(cfg *Config, cmd *cobra.Command) error {
	err := cmd.Execute()
	if flushErr := cfg.flushMetrics(); flushErr != nil && err == nil {
		err = flushErr
	}
	return err
}

// printVerbose prints a message if verbose mode is enabled
func printVerbose(cfg *Config, w io.Writer, format string, args ...interface{}) {
	if cfg.Verbose {
		fmt.Fprintf(w, "[VERBOSE] "+format+"\n", args...)
	}
}
