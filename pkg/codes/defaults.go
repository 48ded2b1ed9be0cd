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

package codes

// Wordlist names
const (
	WordlistEnglish            = "english"
	WordlistJapanese           = "japanese"
	WordlistSpanish            = "spanish"
	WordlistChineseSimplified  = "chinese_simplified"
	WordlistChineseTraditional = "chinese_traditional"
	WordlistFrench             = "french"
	WordlistItalian            = "italian"
	WordlistKorean             = "korean"
)

// Version names
const (
	VersionV1 = "v1"
)

// Issued codes. Never renumber these.
var (
	wordlists = MustTable(map[string]string{
		WordlistEnglish:            "01",
		WordlistJapanese:           "02",
		WordlistSpanish:            "03",
		WordlistChineseSimplified:  "04",
		WordlistChineseTraditional: "05",
		WordlistFrench:             "06",
		WordlistItalian:            "07",
		WordlistKorean:             "08",
	})

	versions = MustTable(map[string]string{
		VersionV1: "01",
	})
)

// Wordlists returns the default wordlist table.
func Wordlists() *Table {
	return wordlists
}

// Versions returns the default version table.
func Versions() *Table {
	return versions
}
