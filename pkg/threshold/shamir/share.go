// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-seedshare.

package shamir

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// IDWidth is the number of hex digits used for the share identifier
	IDWidth = 2

	// MaxShares is the largest number of shares a secret can be split into
	MaxShares = 255
)

var (
	// ErrMalformedShare indicates share text that cannot be parsed
	ErrMalformedShare = errors.New("malformed share")

	// ErrMismatchedShares indicates shares whose payloads differ in size
	ErrMismatchedShares = errors.New("shares have mismatched lengths")

	// ErrDuplicateShare indicates two different shares with the same x coordinate
	ErrDuplicateShare = errors.New("duplicate share coordinate")

	// ErrNoShares indicates an empty share list
	ErrNoShares = errors.New("no shares provided")

	// ErrInvalidParameters indicates out of range threshold or share counts
	ErrInvalidParameters = errors.New("invalid split parameters")

	// ErrReconstruction indicates the combined payload could not be decoded
	ErrReconstruction = errors.New("reconstructed secret is not decodable")
)

// Share is a single piece of a split secret. ID is the identifier embedded in
// the share text and Value is the scheme specific payload.
type Share struct {
	ID    int
	Value string
}

// String renders the share as two hex digits of ID followed by the payload.
func (s Share) String() string {
	return fmt.Sprintf("%0*x%s", IDWidth, s.ID, s.Value)
}

// Validate checks the share identifier and that a payload is present.
func (s Share) Validate() error {
	if s.ID < 1 || s.ID > MaxShares {
		return fmt.Errorf("%w: share id %d out of range 1-%d", ErrMalformedShare, s.ID, MaxShares)
	}
	if s.Value == "" {
		return fmt.Errorf("%w: share value is empty", ErrMalformedShare)
	}
	return nil
}

// splitID separates the identifier prefix from the payload of share text.
func splitID(text string) (int, string, error) {
	if len(text) <= IDWidth {
		return 0, "", fmt.Errorf("%w: too short", ErrMalformedShare)
	}
	id, err := strconv.ParseUint(text[:IDWidth], 16, 8)
	if err != nil {
		return 0, "", fmt.Errorf("%w: invalid share id %q", ErrMalformedShare, text[:IDWidth])
	}
	if id == 0 {
		return 0, "", fmt.Errorf("%w: share id 0 is reserved", ErrMalformedShare)
	}
	return int(id), text[IDWidth:], nil
}

// ID returns the identifier embedded in share text.
func ID(text string) (int, error) {
	id, _, err := splitID(text)
	return id, err
}

func validateSplit(secret []byte, threshold, total int) error {
	if len(secret) == 0 {
		return fmt.Errorf("%w: secret cannot be empty", ErrInvalidParameters)
	}
	if threshold < 2 {
		return fmt.Errorf("%w: threshold must be at least 2, got %d", ErrInvalidParameters, threshold)
	}
	if total < threshold {
		return fmt.Errorf("%w: total shares (%d) must be >= threshold (%d)", ErrInvalidParameters, total, threshold)
	}
	if total > MaxShares {
		return fmt.Errorf("%w: total shares cannot exceed %d, got %d", ErrInvalidParameters, MaxShares, total)
	}
	return nil
}

// dedupe drops exact duplicates and rejects two different shares sharing an
// identifier, which would make interpolation divide by zero.
func dedupe(shares []Share) ([]Share, error) {
	seen := make(map[int]string, len(shares))
	out := make([]Share, 0, len(shares))
	for _, share := range shares {
		if value, ok := seen[share.ID]; ok {
			if value == share.Value {
				continue
			}
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateShare, share.ID)
		}
		seen[share.ID] = share.Value
		out = append(out, share)
	}
	return out, nil
}
