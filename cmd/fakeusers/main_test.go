package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeymeijers/fakeusers/internal/config"
	"github.com/joeymeijers/fakeusers/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.OverrideLogger(log.New(io.Discard, "", 0))
}

func TestRun_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	var stdout bytes.Buffer

	code := run(config.Config{OutputFile: path, Records: 3}, &stdout, io.Discard)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "3 Datensätze")
	assert.Contains(t, stdout.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), utils.GetNewline()))
}

func TestRun_ZeroRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	var stdout bytes.Buffer

	code := run(config.Config{OutputFile: path}, &stdout, io.Discard)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRun_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "users.csv")

	code := run(config.Config{OutputFile: path, Records: 5}, io.Discard, io.Discard)
	assert.Equal(t, 1, code)
}

func TestRun_SeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")

	require.Equal(t, 0, run(config.Config{OutputFile: a, Records: 20, Seed: 5}, io.Discard, io.Discard))
	require.Equal(t, 0, run(config.Config{OutputFile: b, Records: 20, Seed: 5}, io.Discard, io.Discard))

	dataA, err := os.ReadFile(a)
	require.NoError(t, err)
	dataB, err := os.ReadFile(b)
	require.NoError(t, err)

	linesA := strings.Split(string(dataA), utils.GetNewline())
	linesB := strings.Split(string(dataB), utils.GetNewline())
	require.Len(t, linesB, len(linesA))
	for i := range linesA {
		emailA, _, _ := strings.Cut(linesA[i], ",")
		emailB, _, _ := strings.Cut(linesB[i], ",")
		assert.Equal(t, emailA, emailB)
	}
}

func TestRun_KeepsInstalledLogger(t *testing.T) {
	var logs bytes.Buffer
	utils.OverrideLogger(log.New(&logs, "", 0))
	defer utils.OverrideLogger(log.New(io.Discard, "", 0))

	path := filepath.Join(t.TempDir(), "users.csv")
	require.Equal(t, 0, run(config.Config{OutputFile: path, Records: 2, Seed: 3}, io.Discard, io.Discard))

	assert.Contains(t, logs.String(), "INFO: Generating 2 fake users into "+path)
	assert.Contains(t, logs.String(), "INFO: Seed: 3")
	assert.Contains(t, logs.String(), "Generation completed in")
}
