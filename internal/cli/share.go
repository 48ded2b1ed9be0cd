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
	"errors"

	"github.com/spf13/cobra"
)

// ErrUnrecoverable is returned by combine when the shares do not rebuild a
// valid shareable code
var ErrUnrecoverable = errors.New("shares could not be recombined")

func newSplitCmd(cfg *Config) *cobra.Command {
	var (
		mnemonic    string
		shareCount  int
		threshold   int
		versionName string
		wordlist    string
	)
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a mnemonic into threshold shares",
		Long: `Split a mnemonic into --shares shares, any --threshold of which recover it.
The mnemonic is read from --mnemonic or, when that is empty, from stdin.

Text output prints one share per line and can be piped into combine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cfg.Settings()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("shares") {
				shareCount = settings.Defaults.ShareCount
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = settings.Defaults.Threshold
			}
			if !cmd.Flags().Changed("code-version") {
				versionName = settings.Defaults.Version
			}
			if wordlist == "" {
				wordlist = settings.Defaults.Wordlist
			}

			phrase, err := readMnemonic(mnemonic, cmd.InOrStdin())
			if err != nil {
				return err
			}
			splitter, err := cfg.CreateSplitter(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			printVerbose(cfg, cmd.ErrOrStderr(), "Splitting into %d shares (threshold %d, scheme %s)",
				shareCount, threshold, splitter.Scheme().Name())

			shares, err := splitter.Split(phrase, shareCount, threshold, versionName, wordlist)
			if err != nil {
				return err
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintShares(shares, threshold)
		},
	}
	cmd.Flags().StringVarP(&mnemonic, "mnemonic", "m", "", "mnemonic phrase (read from stdin when empty)")
	cmd.Flags().IntVarP(&shareCount, "shares", "n", 0, "number of shares to create (default from config)")
	cmd.Flags().IntVarP(&threshold, "threshold", "k", 0, "shares required to recover (default from config)")
	cmd.Flags().StringVar(&versionName, "code-version", "", "shareable code version name (default from config)")
	cmd.Flags().StringVarP(&wordlist, "wordlist", "w", "", "wordlist name (default from config)")
	return cmd
}

func newCombineCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "combine [share...]",
		Short: "Recombine shares into a mnemonic",
		Long: `Recombine shares into the original mnemonic. Shares are taken from the
arguments or, when none are given, from stdin one per line.

Exits non-zero when the shares cannot be recombined: too few shares,
shares from different splits or corrupted shares.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := readShares(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			splitter, err := cfg.CreateSplitter(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			printVerbose(cfg, cmd.ErrOrStderr(), "Combining %d shares (scheme %s)",
				len(shares), splitter.Scheme().Name())

			result, err := splitter.Combine(shares)
			if err != nil {
				return err
			}
			phrase, ok := result.Mnemonic()
			if !ok {
				return ErrUnrecoverable
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintMnemonic(phrase)
		},
	}
}
