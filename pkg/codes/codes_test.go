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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
		wantErr error
	}{
		{
			name:    "valid",
			entries: map[string]string{"a": "01", "b": "ff"},
		},
		{
			name:    "uppercase code normalized",
			entries: map[string]string{"a": "AB"},
		},
		{
			name:    "code too long",
			entries: map[string]string{"a": "001"},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "non-hex code",
			entries: map[string]string{"a": "zz"},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "duplicate code",
			entries: map[string]string{"a": "01", "b": "01"},
			wantErr: ErrDuplicateCode,
		},
		{
			name:    "duplicate code differing in case",
			entries: map[string]string{"a": "0a", "b": "0A"},
			wantErr: ErrDuplicateCode,
		},
		{
			name:    "empty name",
			entries: map[string]string{"": "01"},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.entries)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.entries), table.Len())
		})
	}
}

func TestTable_Lookups(t *testing.T) {
	table, err := NewTable(map[string]string{"alpha": "0A", "beta": "0b"})
	require.NoError(t, err)

	code, ok := table.Code("alpha")
	require.True(t, ok)
	assert.Equal(t, "0a", code)

	name, ok := table.Name("0B")
	require.True(t, ok)
	assert.Equal(t, "beta", name)

	_, ok = table.Code("gamma")
	assert.False(t, ok)

	_, ok = table.Name("ff")
	assert.False(t, ok)

	assert.Equal(t, []string{"alpha", "beta"}, table.Names())
}

func TestTable_EntriesIsCopy(t *testing.T) {
	table := MustTable(map[string]string{"alpha": "01"})
	entries := table.Entries()
	entries["alpha"] = "02"

	code, _ := table.Code("alpha")
	assert.Equal(t, "01", code)
}

func TestMustTable_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustTable(map[string]string{"a": "x"})
	})
}

func TestDefaults_Bijective(t *testing.T) {
	for _, table := range []*Table{Wordlists(), Versions()} {
		for _, name := range table.Names() {
			code, ok := table.Code(name)
			require.True(t, ok)
			back, ok := table.Name(code)
			require.True(t, ok)
			assert.Equal(t, name, back)
		}
	}
}

func TestDefaults_IssuedCodes(t *testing.T) {
	code, ok := Wordlists().Code(WordlistEnglish)
	require.True(t, ok)
	assert.Equal(t, "01", code)

	code, ok = Versions().Code(VersionV1)
	require.True(t, ok)
	assert.Equal(t, "01", code)

	_, ok = Versions().Name(DefaultVersionCode)
	assert.False(t, ok, "default version code must stay unassigned")

	assert.Equal(t, 8, Wordlists().Len())
}
