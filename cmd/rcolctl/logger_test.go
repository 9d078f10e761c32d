package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rcolctl.log")
	l, err := newLogger(LogConfig{Level: "info", Format: "json", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("decoded container")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"decoded container"`)
	require.NotContains(t, string(data), "hidden")
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := newLogger(LogConfig{Level: "chatty", Format: "console"})
	require.Error(t, err)

	_, err = newLogger(LogConfig{Level: "info", Format: "xml"})
	require.Error(t, err)
}

func TestSetup_FlagOverrides(t *testing.T) {
	resetGlobals(t)
	strict = true
	verbose = true
	t.Setenv("RCOL_LOG_FILE", filepath.Join(t.TempDir(), "setup.log"))

	require.NoError(t, setup())
	require.Equal(t, "strict", cfg.Parse.Mode)
	require.Equal(t, "debug", cfg.Log.Level)
}
