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

// Package seedshare splits mnemonics into threshold secret shares and
// recombines them.
//
// Split encodes the mnemonic as a shareable code and hands its 39 bytes to a
// Shamir scheme. Combine interpolates whatever shares it is given and runs
// the result back through the shareable code decoder; the decoder's checksum
// is what tells a correct reconstruction from garbage.
//
// Combine distinguishes two kinds of failure. Input the caller got wrong (an
// empty list, a share that does not parse) is returned as an error. Share
// sets that merely fail to reconstruct, because they are too small, mixed
// from different splits or corrupted, return Unrecoverable and a nil error,
// so callers can probe subsets without treating failure as exceptional.
//
// Basic usage:
//
//	splitter, err := seedshare.New()
//	shares, err := splitter.Split(phrase, 5, 3, "v1", "english")
//	result, err := splitter.Combine([]string{shares[1], shares[3], shares[5]})
//	if phrase, ok := result.Mnemonic(); ok {
//	    ...
//	}
package seedshare

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jeremyhahn/go-seedshare/pkg/entropy"
	"github.com/jeremyhahn/go-seedshare/pkg/logging"
	"github.com/jeremyhahn/go-seedshare/pkg/metrics"
	"github.com/jeremyhahn/go-seedshare/pkg/shareable"
	"github.com/jeremyhahn/go-seedshare/pkg/threshold/shamir"
)

// Share count bounds
const (
	MinShares    = 2
	MaxShares    = shamir.MaxShares
	MinThreshold = 2
)

// Splitter orchestrates encoding and secret sharing. It holds no per-call
// state and is safe for concurrent use.
type Splitter struct {
	codec  *shareable.Codec
	scheme shamir.Scheme
	logger *logging.Logger
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithCodec sets the shareable code codec.
func WithCodec(codec *shareable.Codec) Option {
	return func(s *Splitter) {
		s.codec = codec
	}
}

// WithScheme sets the secret sharing scheme.
func WithScheme(scheme shamir.Scheme) Option {
	return func(s *Splitter) {
		s.scheme = scheme
	}
}

// WithLogger sets the logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Splitter) {
		s.logger = logger
	}
}

// New creates a Splitter using the default codec and the gf256 scheme unless
// overridden.
func New(opts ...Option) (*Splitter, error) {
	s := &Splitter{}
	for _, opt := range opts {
		opt(s)
	}
	if s.codec == nil {
		codec, err := shareable.NewCodec()
		if err != nil {
			return nil, fmt.Errorf("failed to create codec: %w", err)
		}
		s.codec = codec
	}
	if s.scheme == nil {
		s.scheme = shamir.NewGF256()
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	s.logger = s.logger.With("scheme", s.scheme.Name())
	return s, nil
}

// Codec returns the codec used for encoding and decoding.
func (s *Splitter) Codec() *shareable.Codec {
	return s.codec
}

// Scheme returns the secret sharing scheme.
func (s *Splitter) Scheme() shamir.Scheme {
	return s.scheme
}

// Split encodes phrase and divides it into shareCount shares, any threshold
// of which recover it.
func (s *Splitter) Split(phrase string, shareCount, threshold int, versionName, wordlistName string) (ShareSet, error) {
	start := time.Now()
	set, err := s.split(phrase, shareCount, threshold, versionName, wordlistName)
	s.record(metrics.OpSplit, err, start)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("split mnemonic", "shares", shareCount, "threshold", threshold)
	return set, nil
}

func (s *Splitter) split(phrase string, shareCount, threshold int, versionName, wordlistName string) (ShareSet, error) {
	if shareCount < MinShares || shareCount > MaxShares {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidShareCount, shareCount, MinShares, MaxShares)
	}
	if threshold < MinThreshold || threshold > shareCount {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidThreshold, threshold, MinThreshold, shareCount)
	}

	code, err := s.codec.Encode(phrase, versionName, wordlistName)
	if err != nil {
		return nil, err
	}
	secret, err := hex.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("encoded shareable code is not hex: %w", err)
	}
	defer zero(secret)

	shares, err := s.scheme.Split(secret, threshold, shareCount)
	if err != nil {
		return nil, fmt.Errorf("failed to split shareable code: %w", err)
	}

	set := make(ShareSet, len(shares))
	for _, share := range shares {
		text := share.String()
		id, err := shamir.ID(text)
		if err != nil {
			return nil, fmt.Errorf("scheme produced an unreadable share: %w", err)
		}
		set[id] = text
	}
	return set, nil
}

// Combine recombines shareList into a mnemonic. It returns an error only for
// an empty list or a share that is not structurally valid; every other
// failure is reported as Unrecoverable.
func (s *Splitter) Combine(shareList []string) (Result, error) {
	start := time.Now()
	result, err := s.combine(shareList)
	switch {
	case err != nil:
		s.record(metrics.OpCombine, err, start)
	case !result.Recovered():
		metrics.RecordOperation(metrics.OpCombine, s.scheme.Name(), metrics.StatusUnrecoverable, time.Since(start).Seconds())
	default:
		s.record(metrics.OpCombine, nil, start)
	}
	return result, err
}

func (s *Splitter) combine(shareList []string) (Result, error) {
	if len(shareList) == 0 {
		return Unrecoverable, ErrEmptyShareList
	}

	shares := make([]shamir.Share, len(shareList))
	for i, text := range shareList {
		share, err := s.scheme.Parse(text)
		if err != nil {
			return Unrecoverable, &MalformedShareError{Position: i, Err: err}
		}
		shares[i] = share
	}

	secret, err := s.scheme.Combine(shares)
	if err != nil {
		s.logger.Debug("shares could not be interpolated", "shares", len(shares), "reason", errorType(err))
		return Unrecoverable, nil
	}
	candidate := hex.EncodeToString(secret)
	zero(secret)

	phrase, err := s.codec.Decode(candidate)
	if err != nil {
		s.logger.Debug("reconstructed code rejected", "shares", len(shares), "reason", errorType(err))
		return Unrecoverable, nil
	}
	s.logger.Debug("recovered mnemonic", "shares", len(shares))
	return recovered(phrase), nil
}

// Encode converts phrase to a shareable code.
func (s *Splitter) Encode(phrase, versionName, wordlistName string) (string, error) {
	start := time.Now()
	code, err := s.codec.Encode(phrase, versionName, wordlistName)
	s.record(metrics.OpEncode, err, start)
	return code, err
}

// Decode converts a shareable code to its mnemonic.
func (s *Splitter) Decode(code string) (string, error) {
	start := time.Now()
	phrase, err := s.codec.Decode(code)
	s.record(metrics.OpDecode, err, start)
	return phrase, err
}

func (s *Splitter) record(operation string, err error, start time.Time) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
		metrics.RecordError(operation, errorType(err))
	}
	metrics.RecordOperation(operation, s.scheme.Name(), status, time.Since(start).Seconds())
}

// errorType classifies err for metrics and logs.
func errorType(err error) string {
	switch {
	case errors.Is(err, ErrInvalidShareCount):
		return "invalid_share_count"
	case errors.Is(err, ErrInvalidThreshold):
		return "invalid_threshold"
	case errors.Is(err, ErrEmptyShareList):
		return "empty_share_list"
	case errors.Is(err, shamir.ErrMalformedShare):
		return "malformed_share"
	case errors.Is(err, shamir.ErrMismatchedShares):
		return "mismatched_shares"
	case errors.Is(err, shamir.ErrDuplicateShare):
		return "duplicate_share"
	case errors.Is(err, shareable.ErrInvalidWordlistName):
		return "invalid_wordlist_name"
	case errors.Is(err, shareable.ErrInvalidVersionName):
		return "invalid_version_name"
	case errors.Is(err, shareable.ErrInvalidMnemonic):
		return "invalid_mnemonic"
	case errors.Is(err, shareable.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, shareable.ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, shareable.ErrChecksumMismatch):
		return "checksum_mismatch"
	case errors.Is(err, shareable.ErrInvalidWordlistCode):
		return "invalid_wordlist_code"
	case errors.Is(err, entropy.ErrInvalidEntropyLength):
		return "invalid_entropy_length"
	default:
		return "other"
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
