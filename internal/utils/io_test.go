package utils_test

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/joeymeijers/fakeusers/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.OverrideLogger(log.New(io.Discard, "", 0))
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("boom") }

func TestSafeClose_ReturnsError(t *testing.T) {
	err := utils.SafeClose(failingCloser{})
	assert.EqualError(t, err, "boom")
}

func TestSafeClose_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "close-*.txt")
	require.NoError(t, err)
	assert.NoError(t, utils.SafeClose(f))
}

func TestSafeRemove_MissingFile(t *testing.T) {
	err := utils.SafeRemove(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	assert.Error(t, err)
}

func TestFreeDiskSpace_TempDir(t *testing.T) {
	free, err := utils.FreeDiskSpace(filepath.Join(t.TempDir(), "out.csv"))
	require.NoError(t, err)
	assert.Greater(t, free, uint64(0))
}

func TestCheckDiskSpace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	assert.True(t, utils.CheckDiskSpace(path, 1))
	assert.False(t, utils.CheckDiskSpace(path, ^uint64(0)))
}

func TestSetupLogging_WithFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fakeusers.log")
	closer := utils.SetupLogging(logPath)
	utils.LogInfo("hello %d", 42)
	require.NoError(t, closer.Close())
	utils.OverrideLogger(log.New(io.Discard, "", 0))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO: hello 42")
}
