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

package shareable

import (
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-seedshare/pkg/entropy"
	"github.com/jeremyhahn/go-seedshare/pkg/mnemonic"
)

var (
	// ErrInvalidWordlistName indicates a wordlist name with no assigned code
	ErrInvalidWordlistName = errors.New("invalid wordlist name")

	// ErrInvalidVersionName indicates a malformed version name
	ErrInvalidVersionName = errors.New("invalid version name")

	// ErrInvalidMnemonic indicates a mnemonic the converter rejected
	ErrInvalidMnemonic = mnemonic.ErrInvalidMnemonic

	// ErrInvalidEntropyLength indicates an entropy field of the wrong width
	ErrInvalidEntropyLength = entropy.ErrInvalidEntropyLength

	// ErrInvalidLength indicates a shareable code that is not 78 characters
	ErrInvalidLength = errors.New("invalid shareable code length")

	// ErrInvalidFormat indicates a shareable code containing non-hex characters
	ErrInvalidFormat = errors.New("invalid shareable code format")

	// ErrChecksumMismatch indicates the checksum does not match the body
	ErrChecksumMismatch = errors.New("shareable code checksum mismatch")

	// ErrInvalidWordlistCode indicates a wordlist code with no assigned name
	ErrInvalidWordlistCode = errors.New("invalid wordlist code")
)

// ChecksumMismatchError wraps ErrChecksumMismatch with both checksums.
type ChecksumMismatchError struct {
	Expected string
	Actual   string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("shareable code checksum mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *ChecksumMismatchError) Unwrap() error {
	return ErrChecksumMismatch
}
