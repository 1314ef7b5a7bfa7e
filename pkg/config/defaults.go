// Copyright 2026 AI Commit Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultAPIKeyEnv     = "OPENAI_API_KEY"
	DefaultBaseURL       = "https://api.openai.com/v1"
	DefaultModel         = "gpt-4o-mini"
	DefaultTimeout       = 30 * time.Second
	DefaultMaxChunkSize  = 500000
	DefaultMaxDiffSize   = 10 * 1024 * 1024
	DefaultMaxListed     = 3
	DefaultMaxRetries    = 3
	DefaultBaseDelay     = 1 * time.Second
	DefaultMaxDelay      = 30 * time.Second
	DefaultRemote        = "origin"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			APIKeyEnv: DefaultAPIKeyEnv,
			BaseURL:   DefaultBaseURL,
			Model:     DefaultModel,
			Timeout:   DefaultTimeout,
		},
		Diff: DiffConfig{
			MaxChunkSize:   DefaultMaxChunkSize,
			MaxDiffSize:    DefaultMaxDiffSize,
			MaxListedFiles: DefaultMaxListed,
		},
		Retry: RetryConfig{
			MaxRetries: DefaultMaxRetries,
			BaseDelay:  DefaultBaseDelay,
			MaxDelay:   DefaultMaxDelay,
		},
		Git: GitConfig{
			Remote: DefaultRemote,
		},
		Global: GlobalConfig{
			LogLevel:  DefaultLogLevel,
			LogFormat: DefaultLogFormat,
			CacheDir:  GetDefaultCachePath(),
		},
	}
}

// GetDefaultCachePath returns the default cache directory path.
func GetDefaultCachePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".ai-commit", "cache")
}

// GetDefaultConfigPath returns the default global config file path.
func GetDefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "ai-commit", "config.yaml")
}

// applyDefaults sets default values for optional fields
func applyDefaults(cfg *Config) {
	if cfg.OpenAI.APIKeyEnv == "" {
		cfg.OpenAI.APIKeyEnv = DefaultAPIKeyEnv
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = DefaultBaseURL
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = DefaultModel
	}
	if cfg.OpenAI.Timeout == 0 {
		cfg.OpenAI.Timeout = DefaultTimeout
	}

	if cfg.Diff.MaxChunkSize == 0 {
		cfg.Diff.MaxChunkSize = DefaultMaxChunkSize
	}
	if cfg.Diff.MaxDiffSize == 0 {
		cfg.Diff.MaxDiffSize = DefaultMaxDiffSize
	}
	if cfg.Diff.MaxListedFiles == 0 {
		cfg.Diff.MaxListedFiles = DefaultMaxListed
	}

	if cfg.Retry.MaxRetries == 0 {
		cfg.Retry.MaxRetries = DefaultMaxRetries
	}
	if cfg.Retry.BaseDelay == 0 {
		cfg.Retry.BaseDelay = DefaultBaseDelay
	}
	if cfg.Retry.MaxDelay == 0 {
		cfg.Retry.MaxDelay = DefaultMaxDelay
	}

	if cfg.Git.Remote == "" {
		cfg.Git.Remote = DefaultRemote
	}

	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = DefaultLogLevel
	}
	if cfg.Global.LogFormat == "" {
		cfg.Global.LogFormat = DefaultLogFormat
	}
	if cfg.Global.CacheDir == "" {
		cfg.Global.CacheDir = GetDefaultCachePath()
	}
}
