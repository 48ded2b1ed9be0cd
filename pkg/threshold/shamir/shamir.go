// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-seedshare.

// Package shamir implements Shamir's Secret Sharing schemes for splitting a
// secret into N shares where any M shares can reconstruct it.
//
// Two schemes are provided:
//
//   - gf256: per-byte polynomials over GF(2^8); the share id is the x coordinate
//   - sssa: the sssa-golang library over a 256-bit prime field
//
// Combine performs interpolation over whatever shares it is given. It does not
// know the threshold, so a set smaller than the threshold, or shares from
// different splits, reconstruct garbage rather than failing. Detecting that is
// left to the caller.
package shamir

import (
	"fmt"
	"sort"
)

// Scheme names
const (
	SchemeGF256 = "gf256"
	SchemeSSSA  = "sssa"
)

// Scheme splits and recombines secrets.
type Scheme interface {
	// Name returns the scheme identifier used in configuration
	Name() string

	// Split divides secret into total shares, any threshold of which
	// reconstruct it. Shares are numbered 1..total.
	Split(secret []byte, threshold, total int) ([]Share, error)

	// Combine interpolates the secret from shares.
	Combine(shares []Share) ([]byte, error)

	// Parse decodes share text produced by Share.String.
	Parse(text string) (Share, error)
}

// New returns the scheme registered under name.
func New(name string) (Scheme, error) {
	switch name {
	case SchemeGF256, "":
		return NewGF256(), nil
	case SchemeSSSA:
		return NewSSSA(), nil
	default:
		return nil, fmt.Errorf("unknown secret sharing scheme: %s", name)
	}
}

// Schemes returns the names of all available schemes.
func Schemes() []string {
	names := []string{SchemeGF256, SchemeSSSA}
	sort.Strings(names)
	return names
}
