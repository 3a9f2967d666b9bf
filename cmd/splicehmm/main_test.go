package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_EmptyPath returns zero-value defaults with no error.
func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

// TestLoadConfig_MissingFile treats a nonexistent file as defaults.
func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

// TestLoadConfig_File reads defaults from a JSON file and rejects
// malformed content.
func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"input":"genes.fa","log_level":"debug","quiet":true}`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Input: "genes.fa", LogLevel: "debug", Quiet: true}, cfg)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = loadConfig(bad)
	assert.Error(t, err, "malformed config must error")
}

// TestDecodeAll_Report verifies the per-record report: header, uppercased
// sequence, aligned state string and the decoded path's log-probability.
func TestDecodeAll_Report(t *testing.T) {
	in := strings.NewReader(">ref gene\ncttca\ntgtgaaagcagacgtaagtca\n")
	var out strings.Builder

	logger := log.New(io.Discard)
	require.NoError(t, decodeAll(logger, in, &out, false, true))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ">ref gene", lines[0])
	assert.Equal(t, "CTTCATGTGAAAGCAGACGTAAGTCA", lines[1])
	assert.Equal(t, "EEEEEEEEEEEEEEEEEEEEEEEEEE", lines[2], "reference decode is all-exon")
	assert.Equal(t, "logp=-38.6777", lines[3])
}

// TestDecodeAll_Empty warns and writes nothing for empty input.
func TestDecodeAll_Empty(t *testing.T) {
	var out strings.Builder
	logger := log.New(io.Discard)
	require.NoError(t, decodeAll(logger, strings.NewReader(""), &out, false, true))
	assert.Empty(t, out.String())
}

// TestDecodeAll_BadNucleotide surfaces the decoder's lookup error with
// the record header attached.
func TestDecodeAll_BadNucleotide(t *testing.T) {
	var out strings.Builder
	logger := log.New(io.Discard)
	err := decodeAll(logger, strings.NewReader(">oops\nACNGT\n"), &out, false, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"oops"`)
}
