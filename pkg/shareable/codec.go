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

// Package shareable encodes mnemonics as shareable codes.
//
// A shareable code is a fixed 78 character lowercase hex record:
//
//	[version:2][wordlist:2][entropyLen:2][paddedEntropy:64][checksum:8]
//
// The checksum is the first 8 hex digits of SHA-256 over the 70 preceding
// characters. It detects accidental corruption and combination of the wrong
// shares; it is not an authentication tag.
package shareable

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jeremyhahn/go-seedshare/pkg/codes"
	"github.com/jeremyhahn/go-seedshare/pkg/entropy"
	"github.com/jeremyhahn/go-seedshare/pkg/mnemonic"
)

// Field widths in hex digits.
const (
	VersionWidth  = codes.CodeWidth
	WordlistWidth = codes.CodeWidth
	ChecksumWidth = 8
	BodyLength    = VersionWidth + WordlistWidth + entropy.LengthCodeWidth + entropy.PaddedLength
	Length        = BodyLength + ChecksumWidth
)

// Field offsets in hex digits.
const (
	versionOffset    = 0
	wordlistOffset   = versionOffset + VersionWidth
	lengthCodeOffset = wordlistOffset + WordlistWidth
	entropyOffset    = lengthCodeOffset + entropy.LengthCodeWidth
)

var versionNamePattern = regexp.MustCompile(`^[A-Za-z0-9._\-]{0,32}$`)

// Record holds the fields extracted from a shareable code.
type Record struct {
	VersionCode  string `json:"version_code"`
	VersionName  string `json:"version_name,omitempty"`
	WordlistCode string `json:"wordlist_code"`
	WordlistName string `json:"wordlist_name"`
	EntropyHex   string `json:"entropy"`
	Checksum     string `json:"checksum"`
}

// Bits returns the entropy strength of the record.
func (r *Record) Bits() int {
	return len(r.EntropyHex) * 4
}

// Codec converts between mnemonics and shareable codes. A Codec holds no
// mutable state and is safe for concurrent use.
type Codec struct {
	wordlists *codes.Table
	versions  *codes.Table
	converter mnemonic.Converter
}

// Option configures a Codec.
type Option func(*Codec)

// WithWordlists replaces the default wordlist code table.
func WithWordlists(table *codes.Table) Option {
	return func(c *Codec) {
		c.wordlists = table
	}
}

// WithVersions replaces the default version code table.
func WithVersions(table *codes.Table) Option {
	return func(c *Codec) {
		c.versions = table
	}
}

// WithConverter replaces the default BIP-39 converter.
func WithConverter(converter mnemonic.Converter) Option {
	return func(c *Codec) {
		c.converter = converter
	}
}

// NewCodec creates a Codec. Every wordlist in the wordlist table must be
// supported by the converter.
func NewCodec(opts ...Option) (*Codec, error) {
	c := &Codec{
		wordlists: codes.Wordlists(),
		versions:  codes.Versions(),
		converter: mnemonic.NewBIP39(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.wordlists == nil || c.versions == nil {
		return nil, errors.New("code tables cannot be nil")
	}
	if c.converter == nil {
		return nil, errors.New("converter cannot be nil")
	}
	if _, ok := c.versions.Name(codes.DefaultVersionCode); ok {
		return nil, fmt.Errorf("version code %s is reserved", codes.DefaultVersionCode)
	}
	for _, name := range c.wordlists.Names() {
		if !c.converter.Supports(name) {
			return nil, fmt.Errorf("%w: %s", mnemonic.ErrUnknownWordlist, name)
		}
	}
	return c, nil
}

// Wordlists returns the codec's wordlist table.
func (c *Codec) Wordlists() *codes.Table {
	return c.wordlists
}

// Versions returns the codec's version table.
func (c *Codec) Versions() *codes.Table {
	return c.versions
}

// Encode converts mnemonic into a shareable code. A well-formed version name
// with no assigned code, including the empty name, is encoded as version 00.
func (c *Codec) Encode(phrase, versionName, wordlistName string) (string, error) {
	wordlistCode, ok := c.wordlists.Code(wordlistName)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidWordlistName, wordlistName)
	}
	if !versionNamePattern.MatchString(versionName) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersionName, versionName)
	}
	versionCode, ok := c.versions.Code(versionName)
	if !ok {
		versionCode = codes.DefaultVersionCode
	}

	entropyHex, err := c.converter.ToEntropy(phrase, wordlistName)
	if err != nil {
		return "", err
	}
	lengthCode, paddedHex, err := entropy.Pack(entropyHex)
	if err != nil {
		return "", err
	}

	body := versionCode + wordlistCode + lengthCode + paddedHex
	return body + Checksum(body), nil
}

// Decode converts a shareable code back into its mnemonic. Hex digits are
// accepted in either case.
func (c *Codec) Decode(code string) (string, error) {
	record, err := c.Parse(code)
	if err != nil {
		return "", err
	}
	return c.converter.ToMnemonic(record.EntropyHex, record.WordlistName)
}

// Parse validates code and extracts its fields without converting the
// entropy to words.
func (c *Codec) Parse(code string) (*Record, error) {
	if len(code) != Length {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(code), Length)
	}
	code = strings.ToLower(code)
	if _, err := hex.DecodeString(code); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	body, checksum := code[:BodyLength], code[BodyLength:]
	if expected := Checksum(body); expected != checksum {
		return nil, &ChecksumMismatchError{Expected: expected, Actual: checksum}
	}

	record := &Record{
		VersionCode:  code[versionOffset:wordlistOffset],
		WordlistCode: code[wordlistOffset:lengthCodeOffset],
		Checksum:     checksum,
	}
	record.VersionName, _ = c.versions.Name(record.VersionCode)

	name, ok := c.wordlists.Name(record.WordlistCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWordlistCode, record.WordlistCode)
	}
	record.WordlistName = name

	entropyHex, err := entropy.Unpack(code[lengthCodeOffset:entropyOffset], body[entropyOffset:])
	if err != nil {
		return nil, err
	}
	record.EntropyHex = entropyHex

	return record, nil
}

// Verify reports whether code is a well-formed shareable code.
func (c *Codec) Verify(code string) error {
	_, err := c.Parse(code)
	return err
}

// Checksum returns the first 8 hex digits of SHA-256 over body.
func Checksum(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])[:ChecksumWidth]
}
