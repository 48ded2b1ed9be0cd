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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeremyhahn/go-seedshare/pkg/validation"
)

var (
	// ErrNoMnemonic indicates neither --mnemonic nor stdin supplied a phrase
	ErrNoMnemonic = errors.New("mnemonic required (use --mnemonic or stdin)")

	// ErrNoCode indicates no shareable code was supplied
	ErrNoCode = errors.New("shareable code required (argument or stdin)")

	// ErrNoShares indicates no shares were supplied
	ErrNoShares = errors.New("shares required (arguments or stdin, one per line)")
)

// readMnemonic returns value when set, otherwise all of r
func readMnemonic(value string, r io.Reader) (string, error) {
	if value == "" {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		value = string(data)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrNoMnemonic
	}
	if err := validation.ValidateMnemonic(value); err != nil {
		return "", err
	}
	return value, nil
}

// readCode returns the first argument, otherwise the first non-empty line of r
func readCode(args []string, r io.Reader) (string, error) {
	var code string
	if len(args) > 0 {
		code = strings.TrimSpace(args[0])
	} else {
		lines, err := readLines(r)
		if err != nil {
			return "", err
		}
		if len(lines) == 0 {
			return "", ErrNoCode
		}
		code = lines[0]
	}
	if err := validation.ValidateShare(code); err != nil {
		return "", fmt.Errorf("invalid shareable code: %w", err)
	}
	return code, nil
}

// readShares returns args, otherwise every non-empty line of r
func readShares(args []string, r io.Reader) ([]string, error) {
	shares := args
	if len(shares) == 0 {
		lines, err := readLines(r)
		if err != nil {
			return nil, err
		}
		shares = lines
	}
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	for i, share := range shares {
		if err := validation.ValidateShare(share); err != nil {
			return nil, fmt.Errorf("invalid share %d: %w", i+1, err)
		}
	}
	return shares, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
