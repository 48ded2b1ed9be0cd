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

package seedshare

import (
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-seedshare/pkg/threshold/shamir"
)

var (
	// ErrInvalidShareCount indicates a share count outside 2-255
	ErrInvalidShareCount = errors.New("invalid share count")

	// ErrInvalidThreshold indicates a threshold outside 2-shareCount
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrEmptyShareList indicates Combine was called without shares
	ErrEmptyShareList = errors.New("share list is empty")

	// ErrMalformedShare indicates a share that is not structurally valid
	ErrMalformedShare = shamir.ErrMalformedShare
)

// MalformedShareError identifies which share in a list failed to parse.
type MalformedShareError struct {
	Position int
	Err      error
}

func (e *MalformedShareError) Error() string {
	return fmt.Sprintf("share at position %d: %v", e.Position, e.Err)
}

func (e *MalformedShareError) Unwrap() error {
	return e.Err
}
