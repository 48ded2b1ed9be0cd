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

// Package entropy packs variable-length mnemonic entropy into the fixed-width
// field of a shareable code.
//
// Entropy of 128 to 256 bits (in 32-bit steps) is carried as a two hex digit
// length code followed by the entropy hex right-padded with '0' to 64 digits,
// so the record handed to the secret-sharing layer always has the same size.
package entropy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// PaddedLength is the width of the padded entropy field in hex digits
	PaddedLength = 64

	// LengthCodeWidth is the width of the length code in hex digits
	LengthCodeWidth = 2
)

var (
	// ErrInvalidEntropyLength indicates an entropy length outside 32/40/48/56/64
	// hex digits, or a length code that does not describe one
	ErrInvalidEntropyLength = errors.New("invalid entropy length")

	// ErrInvalidEntropy indicates entropy that is not hex encoded
	ErrInvalidEntropy = errors.New("entropy must be hex encoded")
)

// ValidLength reports whether n hex digits is a valid entropy length.
func ValidLength(n int) bool {
	return n >= 32 && n <= PaddedLength && n%8 == 0
}

// ValidLengths returns every valid entropy length in hex digits.
func ValidLengths() []int {
	return []int{32, 40, 48, 56, 64}
}

// Pack returns the length code and padded form of entropyHex.
func Pack(entropyHex string) (lengthCode, paddedHex string, err error) {
	if !ValidLength(len(entropyHex)) {
		return "", "", fmt.Errorf("%w: %d hex digits", ErrInvalidEntropyLength, len(entropyHex))
	}
	if !isHex(entropyHex) {
		return "", "", ErrInvalidEntropy
	}
	lengthCode = fmt.Sprintf("%0*x", LengthCodeWidth, len(entropyHex))
	paddedHex = strings.ToLower(entropyHex) + strings.Repeat("0", PaddedLength-len(entropyHex))
	return lengthCode, paddedHex, nil
}

// Unpack reverses Pack, returning the first n hex digits of paddedHex where n
// is the length encoded in lengthCode.
func Unpack(lengthCode, paddedHex string) (string, error) {
	if len(lengthCode) != LengthCodeWidth {
		return "", fmt.Errorf("%w: length code %q", ErrInvalidEntropyLength, lengthCode)
	}
	n, err := strconv.ParseUint(lengthCode, 16, 8)
	if err != nil {
		return "", fmt.Errorf("%w: length code %q", ErrInvalidEntropyLength, lengthCode)
	}
	if !ValidLength(int(n)) || int(n) > len(paddedHex) {
		return "", fmt.Errorf("%w: %d hex digits", ErrInvalidEntropyLength, n)
	}
	if !isHex(paddedHex) {
		return "", ErrInvalidEntropy
	}
	return strings.ToLower(paddedHex[:n]), nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
