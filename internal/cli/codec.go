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
	"github.com/spf13/cobra"
)

func newEncodeCmd(cfg *Config) *cobra.Command {
	var (
		mnemonic    string
		versionName string
		wordlist    string
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a mnemonic as a shareable code",
		Long: `Encode a mnemonic as a 78 character shareable code. The mnemonic is read
from --mnemonic or, when that is empty, from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cfg.Settings()
			if err != nil {
				return err
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
			code, err := splitter.Encode(phrase, versionName, wordlist)
			if err != nil {
				return err
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintCode(code)
		},
	}
	cmd.Flags().StringVarP(&mnemonic, "mnemonic", "m", "", "mnemonic phrase (read from stdin when empty)")
	cmd.Flags().StringVar(&versionName, "code-version", "", "shareable code version name (default from config)")
	cmd.Flags().StringVarP(&wordlist, "wordlist", "w", "", "wordlist name (default from config)")
	return cmd
}

func newDecodeCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [code]",
		Short: "Decode a shareable code to its mnemonic",
		Long:  `Verify a shareable code and print the mnemonic it encodes.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readCode(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			splitter, err := cfg.CreateSplitter(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			phrase, err := splitter.Decode(code)
			if err != nil {
				return err
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintMnemonic(phrase)
		},
	}
}

func newInspectCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [code]",
		Short: "Show the fields of a shareable code",
		Long: `Verify a shareable code and print its version, wordlist, entropy size and
checksum without revealing the mnemonic.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readCode(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			splitter, err := cfg.CreateSplitter(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			record, err := splitter.Codec().Parse(code)
			if err != nil {
				return err
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintRecord(record)
		},
	}
}

func newWordlistsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "wordlists",
		Short: "List wordlist and version codes",
		Long:  `List the wordlist and version codes in effect, including configured overrides.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cfg.Settings()
			if err != nil {
				return err
			}
			wordlists, versions, err := settings.CodeTables()
			if err != nil {
				return err
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintCodeTables(wordlists, versions)
		},
	}
}
