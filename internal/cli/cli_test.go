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

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-seedshare/pkg/seedshare"
	"github.com/jeremyhahn/go-seedshare/pkg/shareable"
)

const testMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfg := NewConfig()
	cmd := newRootCmd(cfg)
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := run(cfg, cmd)
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestEncodeDecode(t *testing.T) {
	out, _, err := execute(t, "", "encode", "--mnemonic", testMnemonic)
	require.NoError(t, err)
	code := strings.TrimSpace(out)
	assert.Len(t, code, shareable.Length)
	assert.True(t, strings.HasPrefix(code, "010120"), code)

	out, _, err = execute(t, code+"\n", "decode")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, strings.TrimSpace(out))

	out, _, err = execute(t, "", "decode", code)
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, strings.TrimSpace(out))
}

func TestEncode_MnemonicFromStdin(t *testing.T) {
	out, _, err := execute(t, "  "+testMnemonic+"\n", "encode", "--wordlist", "english")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), shareable.Length)
}

func TestEncode_EmptyVersionName(t *testing.T) {
	out, _, err := execute(t, "", "encode", "-m", testMnemonic, "--code-version", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "0001"), out)
}

func TestEncode_Errors(t *testing.T) {
	_, _, err := execute(t, "", "encode")
	assert.ErrorIs(t, err, ErrNoMnemonic)

	_, _, err = execute(t, "", "encode", "-m", testMnemonic, "-w", "klingon")
	assert.ErrorIs(t, err, shareable.ErrInvalidWordlistName)

	_, _, err = execute(t, "", "encode", "-m", "legal winner thank")
	assert.ErrorIs(t, err, shareable.ErrInvalidMnemonic)
}

func TestDecode_Errors(t *testing.T) {
	_, _, err := execute(t, "\n\n", "decode")
	assert.ErrorIs(t, err, ErrNoCode)

	_, _, err = execute(t, "", "decode", "0101")
	assert.ErrorIs(t, err, shareable.ErrInvalidLength)
}

func TestInspect(t *testing.T) {
	out, _, err := execute(t, "", "encode", "-m", testMnemonic)
	require.NoError(t, err)
	code := strings.TrimSpace(out)

	out, _, err = execute(t, "", "inspect", code)
	require.NoError(t, err)
	assert.Contains(t, out, "01 (english)")
	assert.Contains(t, out, "01 (v1)")
	assert.Contains(t, out, "128 bits")
	assert.Contains(t, out, code[70:])
	assert.NotContains(t, out, "legal")

	out, _, err = execute(t, "", "inspect", "-o", "json", code)
	require.NoError(t, err)
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "english", record["wordlist_name"])
	assert.Equal(t, float64(128), record["bits"])
}

func TestSplitCombine(t *testing.T) {
	for _, scheme := range []string{"gf256", "sssa"} {
		t.Run(scheme, func(t *testing.T) {
			out, _, err := execute(t, "", "split", "--scheme", scheme, "-m", testMnemonic, "-n", "5", "-k", "3")
			require.NoError(t, err)
			shares := lines(out)
			require.Len(t, shares, 5)

			out, _, err = execute(t, strings.Join(shares[1:4], "\n"), "combine", "--scheme", scheme)
			require.NoError(t, err)
			assert.Equal(t, testMnemonic, strings.TrimSpace(out))

			out, _, err = execute(t, "", append([]string{"combine", "--scheme", scheme}, shares[0], shares[4], shares[2])...)
			require.NoError(t, err)
			assert.Equal(t, testMnemonic, strings.TrimSpace(out))

			_, _, err = execute(t, strings.Join(shares[:2], "\n"), "combine", "--scheme", scheme)
			assert.ErrorIs(t, err, ErrUnrecoverable)
		})
	}
}

func TestSplit_ConfigDefaults(t *testing.T) {
	out, _, err := execute(t, testMnemonic, "split")
	require.NoError(t, err)
	assert.Len(t, lines(out), 5)
}

func TestSplit_JSON(t *testing.T) {
	out, _, err := execute(t, "", "split", "-o", "json", "-m", testMnemonic, "-n", "4", "-k", "2")
	require.NoError(t, err)

	var result struct {
		Threshold  int `json:"threshold"`
		ShareCount int `json:"share_count"`
		Shares     []struct {
			ID    int    `json:"id"`
			Share string `json:"share"`
		} `json:"shares"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Threshold)
	assert.Equal(t, 4, result.ShareCount)
	require.Len(t, result.Shares, 4)
	for i, share := range result.Shares {
		assert.Equal(t, i+1, share.ID)
	}

	out, _, err = execute(t, "", "combine", "-o", "json", result.Shares[3].Share, result.Shares[0].Share)
	require.NoError(t, err)
	var recovered map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &recovered))
	assert.Equal(t, testMnemonic, recovered["mnemonic"])
}

func TestSplit_Table(t *testing.T) {
	out, _, err := execute(t, "", "split", "-o", "table", "-m", testMnemonic, "-n", "3", "-k", "2")
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 5)
	assert.True(t, strings.HasPrefix(rows[0], "ID"))
	assert.True(t, strings.HasPrefix(rows[2], "1 "))
}

func TestSplit_Errors(t *testing.T) {
	_, _, err := execute(t, "", "split", "-m", testMnemonic, "-n", "3", "-k", "4")
	assert.ErrorIs(t, err, seedshare.ErrInvalidThreshold)

	_, _, err = execute(t, "", "split", "-m", testMnemonic, "-n", "256", "-k", "2")
	assert.ErrorIs(t, err, seedshare.ErrInvalidShareCount)

	_, _, err = execute(t, "", "split", "--scheme", "xor", "-m", testMnemonic)
	assert.Error(t, err)
}

func TestCombine_Errors(t *testing.T) {
	_, _, err := execute(t, "\n", "combine")
	assert.ErrorIs(t, err, ErrNoShares)

	_, _, err = execute(t, "", "combine", "zz-not-a-share")
	assert.ErrorIs(t, err, seedshare.ErrMalformedShare)

	_, _, err = execute(t, "", "combine", "01ab;rm -rf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid share 1")
}

func TestEncode_RejectsControlCharacters(t *testing.T) {
	_, _, err := execute(t, "", "encode", "-m", "legal\x1bwinner")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "control characters")
}

func TestCombine_VerboseDoesNotLogSecrets(t *testing.T) {
	out, _, err := execute(t, "", "split", "-m", testMnemonic, "-n", "3", "-k", "2")
	require.NoError(t, err)
	shares := lines(out)

	_, stderr, err := execute(t, "", "combine", "-v", shares[0], shares[2])
	require.NoError(t, err)
	assert.Contains(t, stderr, "[VERBOSE] Combining 2 shares")
	assert.Contains(t, stderr, "correlation_id=")
	assert.Contains(t, stderr, "recovered mnemonic")
	assert.NotContains(t, stderr, "legal")
	for _, share := range shares {
		assert.NotContains(t, stderr, share)
	}
}

func TestWordlists(t *testing.T) {
	out, _, err := execute(t, "", "wordlists")
	require.NoError(t, err)
	assert.Contains(t, out, "01  english")
	assert.Contains(t, out, "08  korean")
	assert.Contains(t, out, "01  v1")

	out, _, err = execute(t, "", "wordlists", "-o", "json")
	require.NoError(t, err)
	var tables map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &tables))
	assert.Equal(t, "05", tables["wordlists"]["chinese_traditional"])
	assert.Equal(t, "01", tables["versions"]["v1"])
}

func TestConfigFile_CodeOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedshare.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
defaults:
  wordlist: english
codes:
  wordlists:
    english: "a1"
`), 0600))

	out, _, err := execute(t, "", "encode", "--config", path, "-m", testMnemonic)
	require.NoError(t, err)
	code := strings.TrimSpace(out)
	assert.Equal(t, "a1", code[2:4])

	out, _, err = execute(t, "", "decode", "--config", path, code)
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, strings.TrimSpace(out))

	_, _, err = execute(t, "", "decode", code)
	assert.ErrorIs(t, err, shareable.ErrInvalidWordlistCode)
}

func TestConfigFile_Missing(t *testing.T) {
	_, _, err := execute(t, "", "wordlists", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedshare.prom")
	_, _, err := execute(t, "", "encode", "-m", testMnemonic, "--metrics-textfile", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seedshare_operations_total")
	assert.NotContains(t, string(data), "legal")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "seedshare version "+Version)

	out, _, err = execute(t, "", "version", "-o", "json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info["version"])
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter("json", &buf).PrintError(ErrUnrecoverable))
	var body map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, ErrUnrecoverable.Error(), body["error"])

	buf.Reset()
	require.NoError(t, NewPrinter("text", &buf).PrintError(ErrUnrecoverable))
	assert.Equal(t, "Error: shares could not be recombined\n", buf.String())
}

func TestPrinter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewPrinter("xml", &buf).PrintCode("00"))
}
