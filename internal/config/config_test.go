// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "svn", cfg.SVNPath)
	assert.Equal(t, "svn", cfg.Dialect)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 500, cfg.HistoryCapacity)
	assert.Equal(t, 1<<20, cfg.OutputLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.DBPath)
	assert.False(t, cfg.RawCommand)
	assert.Equal(t, "0", cfg.CloseOnEnd)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SVNRUN_SVN_PATH", "/opt/svn/bin/svn")
	t.Setenv("SVNRUN_DIALECT", "tortoise")
	t.Setenv("SVNRUN_TIMEOUT", "2m")
	t.Setenv("SVNRUN_HISTORY_CAPACITY", "42")
	t.Setenv("SVNRUN_OUTPUT_LIMIT", "4096")
	t.Setenv("SVNRUN_LOG_LEVEL", "debug")
	t.Setenv("SVNRUN_LOG_FORMAT", "json")
	t.Setenv("SVNRUN_RAW_COMMAND", "true")
	t.Setenv("SVNRUN_CLOSEONEND", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/opt/svn/bin/svn", cfg.SVNPath)
	assert.Equal(t, "tortoise", cfg.Dialect)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, 42, cfg.HistoryCapacity)
	assert.Equal(t, 4096, cfg.OutputLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.RawCommand)
	assert.Equal(t, "3", cfg.CloseOnEnd)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("SVNRUN_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SVNRUN_LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("SVNRUN_LOG_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SVNRUN_LOG_FORMAT")
}

func TestLoad_InvalidDialect(t *testing.T) {
	t.Setenv("SVNRUN_DIALECT", "mercurial")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SVNRUN_DIALECT")
}

func TestLoad_InvalidCapacity(t *testing.T) {
	t.Setenv("SVNRUN_HISTORY_CAPACITY", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SVNRUN_HISTORY_CAPACITY")
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	t.Setenv("SVNRUN_TIMEOUT", "soon")
	t.Setenv("SVNRUN_HISTORY_CAPACITY", "many")
	t.Setenv("SVNRUN_RAW_COMMAND", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 500, cfg.HistoryCapacity)
	assert.False(t, cfg.RawCommand)
}
