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
	"sort"
)

// Result is the outcome of Combine: either the recovered mnemonic or
// Unrecoverable when the shares do not reconstruct a valid shareable code.
type Result struct {
	mnemonic  string
	recovered bool
}

// Unrecoverable is the Result for share sets that are insufficient, mixed
// from different splits or corrupted.
var Unrecoverable = Result{}

func recovered(mnemonic string) Result {
	return Result{mnemonic: mnemonic, recovered: true}
}

// Recovered reports whether the shares reconstructed a mnemonic.
func (r Result) Recovered() bool {
	return r.recovered
}

// Mnemonic returns the recovered mnemonic and true, or "" and false.
func (r Result) Mnemonic() (string, bool) {
	return r.mnemonic, r.recovered
}

// String describes the outcome without revealing the mnemonic.
func (r Result) String() string {
	if r.recovered {
		return "recovered"
	}
	return "unrecoverable"
}

// ShareSet maps share ids to share text for one Split call.
type ShareSet map[int]string

// IDs returns the share ids in ascending order.
func (s ShareSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// List returns the shares ordered by id.
func (s ShareSet) List() []string {
	ids := s.IDs()
	list := make([]string, len(ids))
	for i, id := range ids {
		list[i] = s[id]
	}
	return list
}
