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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jeremyhahn/go-seedshare/pkg/codes"
	"github.com/jeremyhahn/go-seedshare/pkg/seedshare"
	"github.com/jeremyhahn/go-seedshare/pkg/shareable"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintCode prints a shareable code
func (p *Printer) PrintCode(code string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"code": code,
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintln(p.writer, code)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintMnemonic prints a recovered or decoded mnemonic
func (p *Printer) PrintMnemonic(mnemonic string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"mnemonic": mnemonic,
		})
	case OutputFormatTable, OutputFormatText:
		fmt.Fprintln(p.writer, mnemonic)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintRecord prints the fields of a parsed shareable code
func (p *Printer) PrintRecord(record *shareable.Record) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"version_code":  record.VersionCode,
			"version_name":  record.VersionName,
			"wordlist_code": record.WordlistCode,
			"wordlist_name": record.WordlistName,
			"entropy":       record.EntropyHex,
			"bits":          record.Bits(),
			"checksum":      record.Checksum,
		})
	case OutputFormatTable, OutputFormatText:
		version := record.VersionName
		if version == "" {
			version = "unknown"
		}
		fmt.Fprintln(p.writer, "Shareable Code:")
		fmt.Fprintf(p.writer, "  Version:  %s (%s)\n", record.VersionCode, version)
		fmt.Fprintf(p.writer, "  Wordlist: %s (%s)\n", record.WordlistCode, record.WordlistName)
		fmt.Fprintf(p.writer, "  Entropy:  %d bits\n", record.Bits())
		fmt.Fprintf(p.writer, "  Checksum: %s\n", record.Checksum)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintShares prints a share set. Text output is one share per line so it
// can be piped back into combine.
func (p *Printer) PrintShares(shares seedshare.ShareSet, threshold int) error {
	switch p.format {
	case OutputFormatJSON:
		list := make([]map[string]interface{}, 0, len(shares))
		for _, id := range shares.IDs() {
			list = append(list, map[string]interface{}{
				"id":    id,
				"share": shares[id],
			})
		}
		return p.printJSON(map[string]interface{}{
			"threshold":   threshold,
			"share_count": len(shares),
			"shares":      list,
		})
	case OutputFormatTable:
		fmt.Fprintf(p.writer, "%-4s %s\n", "ID", "SHARE")
		fmt.Fprintln(p.writer, strings.Repeat("-", 72))
		for _, id := range shares.IDs() {
			fmt.Fprintf(p.writer, "%-4d %s\n", id, shares[id])
		}
		return nil
	case OutputFormatText:
		for _, share := range shares.List() {
			fmt.Fprintln(p.writer, share)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintCodeTables prints the wordlist and version code tables
func (p *Printer) PrintCodeTables(wordlists, versions *codes.Table) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"wordlists": wordlists.Entries(),
			"versions":  versions.Entries(),
		})
	case OutputFormatTable, OutputFormatText:
		p.printTable("Wordlists:", wordlists)
		p.printTable("Versions:", versions)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) printTable(title string, table *codes.Table) {
	fmt.Fprintln(p.writer, title)
	for _, name := range table.Names() {
		code, _ := table.Code(name)
		fmt.Fprintf(p.writer, "  %s  %s\n", code, name)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		})
	default:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	}
}

// printJSON prints data as JSON
func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
