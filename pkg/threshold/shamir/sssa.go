// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-seedshare.

package shamir

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/SSSaaS/sssa-golang"
)

const (
	// sssaCoordWidth is the base64url width of one 256-bit coordinate
	sssaCoordWidth = 44

	// sssaChunkWidth is one (x, y) pair
	sssaChunkWidth = 2 * sssaCoordWidth
)

// SSSA wraps the sssa-golang library. The secret is handed to the library as
// hex text so no zero bytes reach its padding logic, and the payload is the
// library's own base64url share. Ids 1..N label the shares; the x
// coordinates live inside the payload.
type SSSA struct{}

// NewSSSA returns the sssa-golang scheme.
func NewSSSA() *SSSA {
	return &SSSA{}
}

// Name returns "sssa".
func (s *SSSA) Name() string {
	return SchemeSSSA
}

// Split divides secret into total shares requiring threshold to reconstruct.
func (s *SSSA) Split(secret []byte, threshold, total int) ([]Share, error) {
	if err := validateSplit(secret, threshold, total); err != nil {
		return nil, err
	}

	shareStrings, err := sssa.Create(threshold, total, hex.EncodeToString(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to split secret: %w", err)
	}

	shares := make([]Share, len(shareStrings))
	for i, shareStr := range shareStrings {
		shares[i] = Share{
			ID:    i + 1,
			Value: shareStr,
		}
	}
	return shares, nil
}

// Combine reconstructs the secret from shares.
func (s *SSSA) Combine(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	shares, err := dedupe(shares)
	if err != nil {
		return nil, err
	}

	// sssa indexes every share by the chunk count of the first and divides
	// by the difference of x coordinates, so both must be checked up front.
	seen := make(map[string]struct{})
	shareStrings := make([]string, len(shares))
	for i, share := range shares {
		if err := share.Validate(); err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}
		if len(share.Value) != len(shares[0].Value) {
			return nil, fmt.Errorf("%w: share %d has %d characters, share 0 has %d",
				ErrMismatchedShares, i, len(share.Value), len(shares[0].Value))
		}
		for off := 0; off < len(share.Value); off += sssaChunkWidth {
			key := fmt.Sprintf("%d:%s", off, share.Value[off:off+sssaCoordWidth])
			if _, ok := seen[key]; ok {
				return nil, fmt.Errorf("%w: share %d", ErrDuplicateShare, share.ID)
			}
			seen[key] = struct{}{}
		}
		shareStrings[i] = share.Value
	}

	secretHex, err := sssa.Combine(shareStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to combine shares: %w", err)
	}

	secret, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReconstruction, err)
	}
	return secret, nil
}

// Parse decodes "<id><sssa share>" text.
func (s *SSSA) Parse(text string) (Share, error) {
	id, payload, err := splitID(strings.TrimSpace(text))
	if err != nil {
		return Share{}, err
	}
	if len(payload)%sssaChunkWidth != 0 {
		return Share{}, fmt.Errorf("%w: payload length %d is not a multiple of %d",
			ErrMalformedShare, len(payload), sssaChunkWidth)
	}
	for off := 0; off < len(payload); off += sssaCoordWidth {
		if _, err := base64.URLEncoding.DecodeString(payload[off : off+sssaCoordWidth]); err != nil {
			return Share{}, fmt.Errorf("%w: payload is not base64url", ErrMalformedShare)
		}
	}
	return Share{ID: id, Value: payload}, nil
}
