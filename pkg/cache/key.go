// Copyright 2026 AI Commit Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyGenerator generates cache keys.
type KeyGenerator struct {
	prefix string
}

// NewKeyGenerator creates a new key generator.
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{prefix: "ai-commit"}
}

// Generate produces a key from the SHA-256 of the inputs. Inputs are
// length-delimited so ("ab","c") and ("a","bc") never collide.
func (kg *KeyGenerator) Generate(inputs ...string) string {
	h := sha256.New()
	for _, input := range inputs {
		var length [8]byte
		n := len(input)
		for i := 7; i >= 0; i-- {
			length[i] = byte(n)
			n >>= 8
		}
		h.Write(length[:])
		h.Write([]byte(input))
	}
	return kg.prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// GenerateForRequest keys a generation request by everything that shapes
// the prompt: model, branch context, and the prepared diff payload.
func (kg *KeyGenerator) GenerateForRequest(model, branch, diff string) string {
	return kg.Generate(model, branch, diff)
}
