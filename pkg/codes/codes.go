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

// Package codes holds the closed enumerations that map wordlist and format
// version names to the one-byte codes carried in a shareable code.
//
// A Table is immutable once built and can be shared freely between
// goroutines. Changing a table after codes have been issued breaks decoding
// of those codes, so the defaults in this package must never be renumbered.
package codes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// CodeWidth is the number of hex digits used for every code.
const CodeWidth = 2

// DefaultVersionCode is written when a version name cannot be resolved.
const DefaultVersionCode = "00"

var (
	// ErrInvalidCode indicates a code that is not exactly two hex digits
	ErrInvalidCode = errors.New("code must be exactly two hex digits")

	// ErrDuplicateCode indicates two names share the same code
	ErrDuplicateCode = errors.New("duplicate code")

	// ErrEmptyName indicates a table entry without a name
	ErrEmptyName = errors.New("table entry name cannot be empty")
)

// Table is a bidirectional name <-> code mapping.
type Table struct {
	byName map[string]string
	byCode map[string]string
}

// NewTable builds a Table from name -> code entries. Codes are normalized to
// lowercase and must be unique.
func NewTable(entries map[string]string) (*Table, error) {
	t := &Table{
		byName: make(map[string]string, len(entries)),
		byCode: make(map[string]string, len(entries)),
	}
	for name, code := range entries {
		if name == "" {
			return nil, ErrEmptyName
		}
		normalized := strings.ToLower(code)
		if !isCode(normalized) {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidCode, code, name)
		}
		if other, ok := t.byCode[normalized]; ok {
			return nil, fmt.Errorf("%w: %s used by %s and %s", ErrDuplicateCode, normalized, other, name)
		}
		t.byName[name] = normalized
		t.byCode[normalized] = name
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. It is meant for
// package-level tables whose contents are known at compile time.
func MustTable(entries map[string]string) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Code returns the code assigned to name.
func (t *Table) Code(name string) (string, bool) {
	code, ok := t.byName[name]
	return code, ok
}

// Name returns the name assigned to code. Lookup is case-insensitive.
func (t *Table) Name(code string) (string, bool) {
	name, ok := t.byCode[strings.ToLower(code)]
	return name, ok
}

// Names returns all names in the table, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns a copy of the name -> code mapping.
func (t *Table) Entries() map[string]string {
	out := make(map[string]string, len(t.byName))
	for name, code := range t.byName {
		out[name] = code
	}
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.byName)
}

func isCode(s string) bool {
	if len(s) != CodeWidth {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
