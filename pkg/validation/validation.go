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

// Package validation provides centralized input validation for go-seedshare
// entry points. The CLI and configuration loader run untrusted input through
// these checks before it reaches the codec or a sharing scheme.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	// MaxMnemonicLength bounds a mnemonic in bytes. 24 words of the longest
	// BIP-39 wordlist fit comfortably.
	MaxMnemonicLength = 1024

	// MaxShareLength bounds a share or shareable code in bytes
	MaxShareLength = 4096

	// MaxNameLength bounds wordlist, version and scheme names
	MaxNameLength = 32
)

var (
	// namePattern matches safe table names (alphanumeric, dot, underscore, hyphen)
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

	// sharePattern matches hex ids, hex payloads and base64url payloads
	sharePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-=]+$`)
)

// ValidateMnemonic validates a mnemonic phrase before conversion.
// Rejects:
// - empty strings
// - null bytes
// - input over MaxMnemonicLength
// - control characters other than whitespace
func ValidateMnemonic(phrase string) error {
	if strings.TrimSpace(phrase) == "" {
		return fmt.Errorf("mnemonic cannot be empty")
	}

	// Check for null bytes
	if strings.Contains(phrase, "\x00") {
		return fmt.Errorf("mnemonic contains null byte")
	}

	// Check length before other validations
	if len(phrase) > MaxMnemonicLength {
		return fmt.Errorf("mnemonic too long (max %d bytes)", MaxMnemonicLength)
	}

	for _, r := range phrase {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("mnemonic contains control characters")
		}
	}

	return nil
}

// ValidateShare validates a share or shareable code. It only checks that the
// text is a bounded token of encoding characters; structure is left to the
// scheme or codec.
func ValidateShare(text string) error {
	if text == "" {
		return fmt.Errorf("share cannot be empty")
	}

	// Check for null bytes
	if strings.Contains(text, "\x00") {
		return fmt.Errorf("share contains null byte")
	}

	// Check length
	if len(text) > MaxShareLength {
		return fmt.Errorf("share too long (max %d characters)", MaxShareLength)
	}

	if !sharePattern.MatchString(text) {
		return fmt.Errorf("share contains invalid characters (allowed: a-z, A-Z, 0-9, -, _, =)")
	}

	return nil
}

// ValidateName validates a wordlist, version or scheme name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	// Check for null bytes
	if strings.Contains(name, "\x00") {
		return fmt.Errorf("name contains null byte")
	}

	// Check length
	if len(name) > MaxNameLength {
		return fmt.Errorf("name too long (max %d characters)", MaxNameLength)
	}

	if !namePattern.MatchString(name) {
		return fmt.Errorf("name contains invalid characters (allowed: a-z, A-Z, 0-9, -, _, .)")
	}

	return nil
}

// SanitizeForLog sanitizes a string for safe logging (prevents log injection).
func SanitizeForLog(s string) string {
	// Remove control characters and null bytes
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)

	// Limit length to prevent log flooding
	if len(s) > 1000 {
		s = s[:1000] + "...[truncated]"
	}

	return s
}
