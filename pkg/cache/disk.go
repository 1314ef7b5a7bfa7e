// Copyright 2026 AI Commit Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DiskCache persists entries as one JSON file per key. Unreadable or
// corrupt files count as misses, never as errors: a damaged cache must
// not break generation.
type DiskCache struct {
	dir string
}

// NewDiskCache creates a disk cache rooted at dir.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Get retrieves a value from disk cache.
func (d *DiskCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(d.filePath(key))
	if err != nil {
		return nil, ErrCacheMiss
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, ErrCacheMiss
	}
	if entry.expired(time.Now()) {
		_ = os.Remove(d.filePath(key))
		return nil, ErrCacheMiss
	}
	return entry.Value, nil
}

// Set stores a value in disk cache. A zero ttl means no expiry.
func (d *DiskCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := Entry{Key: key, Value: value}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(d.filePath(key), data, 0o644)
}

// Delete removes a value from disk cache.
func (d *DiskCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(d.filePath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes all entries from disk cache.
func (d *DiskCache) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(d.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// filePath maps a key to a file name. Keys contain a prefix separator,
// so they are hashed rather than used directly.
func (d *DiskCache) filePath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(d.dir, hex.EncodeToString(sum[:])+".json")
}

var _ Cache = (*DiskCache)(nil)
