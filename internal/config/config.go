// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

// Package config provides environment-based configuration for svnrun.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	SVNPath         string        // external tool to invoke (default: svn)
	Dialect         string        // svn, tortoise (default: svn)
	Timeout         time.Duration // per-command timeout (default: 60s)
	HistoryCapacity int           // max retained history entries (default: 500)
	OutputLimit     int           // captured output cap per stream, bytes (default: 1 MiB)
	LogLevel        string        // debug, info, warn, error (default: info)
	LogFormat       string        // text, json (default: text)
	DBPath          string        // default: ~/.svnrun/history.db (empty means use default)
	ActionsFile     string        // optional YAML file with custom actions
	RawCommand      bool          // include the raw argv in reports (default: false)
	CloseOnEnd      string        // tortoise dialect: /closeonend value (default: 0)
}

// validLogLevels contains the allowed log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validLogFormats contains the allowed log format values.
var validLogFormats = []string{"text", "json"}

// validDialects contains the allowed dialect values.
var validDialects = []string{"svn", "tortoise"}

// Load reads configuration from environment variables, with .env file as
// optional override. The .env file is loaded if present but errors are
// ignored if it doesn't exist.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		SVNPath:         getEnv("SVNRUN_SVN_PATH", "svn"),
		Dialect:         getEnv("SVNRUN_DIALECT", "svn"),
		Timeout:         getDurationEnv("SVNRUN_TIMEOUT", 60*time.Second),
		HistoryCapacity: getIntEnv("SVNRUN_HISTORY_CAPACITY", 500),
		OutputLimit:     getIntEnv("SVNRUN_OUTPUT_LIMIT", 1<<20),
		LogLevel:        getEnv("SVNRUN_LOG_LEVEL", "info"),
		LogFormat:       getEnv("SVNRUN_LOG_FORMAT", "text"),
		DBPath:          getEnv("SVNRUN_DB_PATH", ""),
		ActionsFile:     getEnv("SVNRUN_ACTIONS_FILE", ""),
		RawCommand:      getBoolEnv("SVNRUN_RAW_COMMAND", false),
		CloseOnEnd:      getEnv("SVNRUN_CLOSEONEND", "0"),
	}

	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid SVNRUN_LOG_LEVEL %q: must be one of %v", cfg.LogLevel, validLogLevels)
	}

	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid SVNRUN_LOG_FORMAT %q: must be one of %v", cfg.LogFormat, validLogFormats)
	}

	if !slices.Contains(validDialects, cfg.Dialect) {
		return nil, fmt.Errorf("invalid SVNRUN_DIALECT %q: must be one of %v", cfg.Dialect, validDialects)
	}

	if cfg.HistoryCapacity <= 0 {
		return nil, fmt.Errorf("invalid SVNRUN_HISTORY_CAPACITY %d: must be positive", cfg.HistoryCapacity)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves a duration environment variable or returns a
// default value. If the value cannot be parsed as a duration, the default
// is returned.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

// getIntEnv retrieves an integer environment variable or returns a default
// value.
func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getBoolEnv retrieves a boolean environment variable or returns a default
// value.
func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
