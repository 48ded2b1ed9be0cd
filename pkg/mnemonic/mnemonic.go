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

// Package mnemonic converts between BIP-39 mnemonics and their hex entropy.
package mnemonic

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"

	"github.com/jeremyhahn/go-seedshare/pkg/codes"
	"github.com/jeremyhahn/go-seedshare/pkg/entropy"
)

var (
	// ErrInvalidMnemonic indicates a mnemonic with an unknown word, a bad
	// word count or a failed checksum
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidEntropyLength indicates entropy that is not 128-256 bits in
	// 32-bit steps
	ErrInvalidEntropyLength = entropy.ErrInvalidEntropyLength

	// ErrUnknownWordlist indicates a wordlist name the converter does not know
	ErrUnknownWordlist = errors.New("unknown wordlist")
)

// Converter translates between mnemonics and hex entropy for a named wordlist.
type Converter interface {
	ToEntropy(mnemonic, wordlist string) (string, error)
	ToMnemonic(entropyHex, wordlist string) (string, error)
	Supports(wordlist string) bool
}

var bip39Wordlists = map[string][]string{
	codes.WordlistEnglish:            wordlists.English,
	codes.WordlistJapanese:           wordlists.Japanese,
	codes.WordlistSpanish:            wordlists.Spanish,
	codes.WordlistChineseSimplified:  wordlists.ChineseSimplified,
	codes.WordlistChineseTraditional: wordlists.ChineseTraditional,
	codes.WordlistFrench:             wordlists.French,
	codes.WordlistItalian:            wordlists.Italian,
	codes.WordlistKorean:             wordlists.Korean,
}

// lookupWordlists holds the NFKD form of each wordlist. go-bip39 matches
// words byte for byte, so input and list are compared in the same form.
var lookupWordlists = func() map[string][]string {
	lists := make(map[string][]string, len(bip39Wordlists))
	for name, list := range bip39Wordlists {
		normalized := make([]string, len(list))
		for i, word := range list {
			normalized[i] = norm.NFKD.String(word)
		}
		lists[name] = normalized
	}
	return lists
}()

// wordSeparators overrides the ASCII space between words of a rendered
// mnemonic.
var wordSeparators = map[string]string{
	codes.WordlistJapanese: "\u3000",
}

// go-bip39 keeps the active wordlist in package state.
var bip39Mu sync.Mutex

// BIP39 is a Converter backed by github.com/tyler-smith/go-bip39.
type BIP39 struct{}

// NewBIP39 returns a BIP-39 converter.
func NewBIP39() *BIP39 {
	return &BIP39{}
}

// Supports reports whether wordlist is available.
func (b *BIP39) Supports(wordlist string) bool {
	_, ok := bip39Wordlists[wordlist]
	return ok
}

// ToEntropy returns the lowercase hex entropy encoded by mnemonic.
func (b *BIP39) ToEntropy(mnemonic, wordlist string) (string, error) {
	list, ok := lookupWordlists[wordlist]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownWordlist, wordlist)
	}
	normalized := Normalize(mnemonic)
	if normalized == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidMnemonic)
	}

	bip39Mu.Lock()
	defer bip39Mu.Unlock()

	bip39.SetWordList(list)
	raw, err := bip39.EntropyFromMnemonic(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return hex.EncodeToString(raw), nil
}

// ToMnemonic renders entropyHex as a mnemonic from wordlist.
func (b *BIP39) ToMnemonic(entropyHex, wordlist string) (string, error) {
	list, ok := bip39Wordlists[wordlist]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownWordlist, wordlist)
	}
	raw, err := hex.DecodeString(entropyHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEntropyLength, err)
	}
	bits := len(raw) * 8
	if bits < 128 || bits > 256 || bits%32 != 0 {
		return "", fmt.Errorf("%w: %d bits", ErrInvalidEntropyLength, bits)
	}

	bip39Mu.Lock()
	defer bip39Mu.Unlock()

	bip39.SetWordList(list)
	words, err := bip39.NewMnemonic(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEntropyLength, err)
	}
	if sep, ok := wordSeparators[wordlist]; ok {
		words = strings.ReplaceAll(words, " ", sep)
	}
	return words, nil
}

// Normalize applies NFKD, trims the mnemonic, collapses whitespace (including
// the ideographic space used by Japanese mnemonics) to single spaces and
// lowercases it.
func Normalize(mnemonic string) string {
	mnemonic = norm.NFKD.String(mnemonic)
	return strings.ToLower(strings.Join(strings.Fields(mnemonic), " "))
}

// Wordlists returns the names of all supported wordlists, sorted.
func Wordlists() []string {
	names := make([]string, 0, len(bip39Wordlists))
	for name := range bip39Wordlists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
