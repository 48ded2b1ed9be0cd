// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-seedshare.

package shamir

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// GF256 shares each byte of the secret with its own random polynomial over
// GF(2^8). The share id doubles as the x coordinate and the payload is the
// lowercase hex of the evaluated bytes.
type GF256 struct{}

// NewGF256 returns the GF(256) scheme.
func NewGF256() *GF256 {
	return &GF256{}
}

// Name returns "gf256".
func (g *GF256) Name() string {
	return SchemeGF256
}

// Split divides secret into total shares requiring threshold to reconstruct.
func (g *GF256) Split(secret []byte, threshold, total int) ([]Share, error) {
	if err := validateSplit(secret, threshold, total); err != nil {
		return nil, err
	}

	values := make([][]byte, total)
	for i := range values {
		values[i] = make([]byte, len(secret))
	}

	// p(x) = a0 + a1*x + ... + a(m-1)*x^(m-1) with a0 the secret byte
	coeffs := make([]byte, threshold)
	for byteIdx, b := range secret {
		coeffs[0] = b
		if _, err := rand.Read(coeffs[1:]); err != nil {
			return nil, fmt.Errorf("failed to generate random coefficients: %w", err)
		}
		for i := 0; i < total; i++ {
			values[i][byteIdx] = evaluatePolynomial(coeffs, byte(i+1))
		}
	}
	for i := range coeffs {
		coeffs[i] = 0
	}

	shares := make([]Share, total)
	for i := range shares {
		shares[i] = Share{
			ID:    i + 1,
			Value: hex.EncodeToString(values[i]),
		}
	}
	return shares, nil
}

// Combine reconstructs the secret by Lagrange interpolation at x=0 over every
// share given.
func (g *GF256) Combine(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	shares, err := dedupe(shares)
	if err != nil {
		return nil, err
	}

	xs := make([]byte, len(shares))
	ys := make([][]byte, len(shares))
	for i, share := range shares {
		if err := share.Validate(); err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}
		value, err := hex.DecodeString(share.Value)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w: %v", i, ErrMalformedShare, err)
		}
		if i > 0 && len(value) != len(ys[0]) {
			return nil, fmt.Errorf("%w: share %d has %d bytes, share 0 has %d",
				ErrMismatchedShares, i, len(value), len(ys[0]))
		}
		xs[i] = byte(share.ID)
		ys[i] = value
	}

	secret := make([]byte, len(ys[0]))
	column := make([]byte, len(shares))
	for byteIdx := range secret {
		for i := range ys {
			column[i] = ys[i][byteIdx]
		}
		secret[byteIdx] = lagrangeInterpolate(xs, column)
	}
	return secret, nil
}

// Parse decodes "<id><hex payload>" share text. Hex is accepted in either case.
func (g *GF256) Parse(text string) (Share, error) {
	id, payload, err := splitID(strings.TrimSpace(text))
	if err != nil {
		return Share{}, err
	}
	if len(payload)%2 != 0 {
		return Share{}, fmt.Errorf("%w: odd payload length", ErrMalformedShare)
	}
	if _, err := hex.DecodeString(payload); err != nil {
		return Share{}, fmt.Errorf("%w: payload is not hex", ErrMalformedShare)
	}
	return Share{ID: id, Value: strings.ToLower(payload)}, nil
}

// evaluatePolynomial evaluates a polynomial at point x in GF(256) using
// Horner's method.
func evaluatePolynomial(coeffs []byte, x byte) byte {
	if len(coeffs) == 0 {
		return 0
	}
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = gfAdd(gfMul(result, x), coeffs[i])
	}
	return result
}

// lagrangeInterpolate evaluates at x=0 the polynomial through (xs[i], ys[i]).
// The xs must be distinct and non-zero.
func lagrangeInterpolate(xs, ys []byte) byte {
	var result byte
	for i := range xs {
		var numerator byte = 1
		var denominator byte = 1
		for j := range xs {
			if i == j {
				continue
			}
			// (0 - xj) is xj in characteristic 2
			numerator = gfMul(numerator, xs[j])
			denominator = gfMul(denominator, gfSub(xs[i], xs[j]))
		}
		basis := gfMul(numerator, gfInverse(denominator))
		result = gfAdd(result, gfMul(ys[i], basis))
	}
	return result
}

// GF(256) arithmetic using AES's field, x^8 + x^4 + x^3 + x + 1.

func gfAdd(a, b byte) byte {
	return a ^ b
}

func gfSub(a, b byte) byte {
	return a ^ b
}

func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExpTable[(int(gfLogTable[a])+int(gfLogTable[b]))%255]
}

func gfInverse(a byte) byte {
	if a == 0 {
		panic("division by zero in GF(256)")
	}
	return gfExpTable[255-int(gfLogTable[a])]
}

var (
	gfLogTable [256]byte
	gfExpTable [256]byte
)

func init() {
	// generator 0x03
	var x byte = 1
	for i := 0; i < 255; i++ {
		gfExpTable[i] = x
		gfLogTable[x] = byte(i)
		x = gfMultiply(x, 0x03)
	}
	gfExpTable[255] = gfExpTable[0]
}

// gfMultiply is the peasant algorithm, used only to build the tables.
func gfMultiply(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return p
}
