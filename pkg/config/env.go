// Copyright 2026 AI Commit Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envOverrides holds environment-based configuration.
// Field names map to environment variables with the AI_COMMIT prefix,
// e.g. AI_COMMIT_MODEL, AI_COMMIT_MAX_RETRIES.
type envOverrides struct {
	APIKeyEnv string        `envconfig:"API_KEY_ENV"`
	BaseURL   string        `envconfig:"BASE_URL"`
	Model     string        `envconfig:"MODEL"`
	Timeout   time.Duration `envconfig:"TIMEOUT"`

	SplitLargeFiles *bool `envconfig:"SPLIT_LARGE_FILES"`
	MaxChunkSize    int   `envconfig:"MAX_CHUNK_SIZE"`
	MaxDiffSize     int   `envconfig:"MAX_DIFF_SIZE"`
	MaxListedFiles  int   `envconfig:"MAX_LISTED_FILES"`

	MaxRetries int           `envconfig:"MAX_RETRIES"`
	BaseDelay  time.Duration `envconfig:"BASE_DELAY"`
	MaxDelay   time.Duration `envconfig:"MAX_DELAY"`

	AutoCommit *bool  `envconfig:"AUTO_COMMIT"`
	AutoPush   *bool  `envconfig:"AUTO_PUSH"`
	Remote     string `envconfig:"REMOTE"`

	LogLevel    string `envconfig:"LOG_LEVEL"`
	LogFormat   string `envconfig:"LOG_FORMAT"`
	CacheDir    string `envconfig:"CACHE_DIR"`
	EnableCache *bool  `envconfig:"ENABLE_CACHE"`
}

// applyEnvOverrides merges AI_COMMIT_* environment variables into cfg.
// Environment values take precedence over file values.
func applyEnvOverrides(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("AI_COMMIT", &env); err != nil {
		return err
	}

	if env.APIKeyEnv != "" {
		cfg.OpenAI.APIKeyEnv = env.APIKeyEnv
	}
	if env.BaseURL != "" {
		cfg.OpenAI.BaseURL = env.BaseURL
	}
	if env.Model != "" {
		cfg.OpenAI.Model = env.Model
	}
	if env.Timeout != 0 {
		cfg.OpenAI.Timeout = env.Timeout
	}

	if env.SplitLargeFiles != nil {
		cfg.Diff.SplitLargeFiles = env.SplitLargeFiles
	}
	if env.MaxChunkSize != 0 {
		cfg.Diff.MaxChunkSize = env.MaxChunkSize
	}
	if env.MaxDiffSize != 0 {
		cfg.Diff.MaxDiffSize = env.MaxDiffSize
	}
	if env.MaxListedFiles != 0 {
		cfg.Diff.MaxListedFiles = env.MaxListedFiles
	}

	if env.MaxRetries != 0 {
		cfg.Retry.MaxRetries = env.MaxRetries
	}
	if env.BaseDelay != 0 {
		cfg.Retry.BaseDelay = env.BaseDelay
	}
	if env.MaxDelay != 0 {
		cfg.Retry.MaxDelay = env.MaxDelay
	}

	if env.AutoCommit != nil {
		cfg.Git.AutoCommit = *env.AutoCommit
	}
	if env.AutoPush != nil {
		cfg.Git.AutoPush = *env.AutoPush
	}
	if env.Remote != "" {
		cfg.Git.Remote = env.Remote
	}

	if env.LogLevel != "" {
		cfg.Global.LogLevel = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Global.LogFormat = env.LogFormat
	}
	if env.CacheDir != "" {
		cfg.Global.CacheDir = env.CacheDir
	}
	if env.EnableCache != nil {
		cfg.Global.EnableCache = env.EnableCache
	}

	return nil
}
