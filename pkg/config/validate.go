// Copyright 2026 AI Commit Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks configuration values for consistency.
// It is called after defaults and overrides have been applied.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.OpenAI.BaseURL, "http://") && !strings.HasPrefix(c.OpenAI.BaseURL, "https://") {
		return fmt.Errorf("openai.base_url must be a valid URL, got %q", c.OpenAI.BaseURL)
	}

	if c.OpenAI.Timeout < 5*time.Second || c.OpenAI.Timeout > 300*time.Second {
		return fmt.Errorf("openai.timeout must be between 5s and 300s, got %s", c.OpenAI.Timeout)
	}

	if c.Retry.MaxRetries < 1 || c.Retry.MaxRetries > 10 {
		return fmt.Errorf("retry.max_retries must be between 1 and 10, got %d", c.Retry.MaxRetries)
	}

	if c.Retry.BaseDelay <= 0 {
		return fmt.Errorf("retry.base_delay must be positive, got %s", c.Retry.BaseDelay)
	}

	if c.Retry.MaxDelay < c.Retry.BaseDelay {
		return fmt.Errorf("retry.max_delay (%s) must be at least retry.base_delay (%s)",
			c.Retry.MaxDelay, c.Retry.BaseDelay)
	}

	if c.Diff.MaxChunkSize <= 0 {
		return fmt.Errorf("diff.max_chunk_size must be positive, got %d", c.Diff.MaxChunkSize)
	}

	if c.Diff.MaxDiffSize < c.Diff.MaxChunkSize {
		return fmt.Errorf("diff.max_diff_size (%d) must be at least diff.max_chunk_size (%d)",
			c.Diff.MaxDiffSize, c.Diff.MaxChunkSize)
	}

	if c.Diff.MaxListedFiles < 1 {
		return fmt.Errorf("diff.max_listed_files must be at least 1, got %d", c.Diff.MaxListedFiles)
	}

	return nil
}
