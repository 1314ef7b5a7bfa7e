// Copyright 2026 AI Commit Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package config provides configuration management for ai-commit.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Config file: .ai-commit.yaml in the current directory or a parent,
//    falling back to $HOME/.config/ai-commit/config.yaml
// 3. Environment variables: AI_COMMIT_* (a .env file in the working
//    directory is loaded first and never overrides the process environment)
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	OpenAI OpenAIConfig `yaml:"openai"`
	Diff   DiffConfig   `yaml:"diff"`
	Retry  RetryConfig  `yaml:"retry"`
	Git    GitConfig    `yaml:"git"`
	Global GlobalConfig `yaml:"global"`
}

// OpenAIConfig contains generation service settings.
type OpenAIConfig struct {
	// APIKeyEnv names the environment variable holding the API key.
	// The key itself is never written to a config file.
	APIKeyEnv string        `yaml:"api_key_env"`
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DiffConfig controls diff decomposition.
type DiffConfig struct {
	// SplitLargeFiles enables file-boundary decomposition of large diffs.
	// When false, diffs within MaxDiffSize are always forwarded verbatim.
	SplitLargeFiles *bool `yaml:"split_large_files"`

	// MaxChunkSize is the byte budget for a single chunk.
	MaxChunkSize int `yaml:"max_chunk_size"`

	// MaxDiffSize is the hard limit; larger diffs are rejected outright.
	MaxDiffSize int `yaml:"max_diff_size"`

	// MaxListedFiles caps how many file paths the summary enumerates
	// before collapsing the rest into an "N more files" line.
	MaxListedFiles int `yaml:"max_listed_files"`
}

// RetryConfig controls the resilient request executor.
type RetryConfig struct {
	MaxRetries int           `yaml:"max_retries"`
	BaseDelay  time.Duration `yaml:"base_delay"`
	MaxDelay   time.Duration `yaml:"max_delay"`
}

// GitConfig contains git workflow settings.
type GitConfig struct {
	AutoCommit bool   `yaml:"auto_commit"`
	AutoPush   bool   `yaml:"auto_push"`
	Remote     string `yaml:"remote"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel    string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat   string `yaml:"log_format"` // text, json
	CacheDir    string `yaml:"cache_dir"`
	EnableCache *bool  `yaml:"enable_cache"`
}

// SplitEnabled reports whether large-diff splitting is on (default true).
func (c *Config) SplitEnabled() bool {
	if c.Diff.SplitLargeFiles == nil {
		return true
	}
	return *c.Diff.SplitLargeFiles
}

// CacheEnabled reports whether the message cache is on (default true).
func (c *Config) CacheEnabled() bool {
	if c.Global.EnableCache == nil {
		return true
	}
	return *c.Global.EnableCache
}
