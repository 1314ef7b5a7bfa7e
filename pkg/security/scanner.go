// Copyright 2026 AI Commit Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package security validates diffs and generated messages before they
// leave the machine.
package security

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ai-commit-toolkit/ai-commit/pkg/errors"
)

// MaxCommitMessageLength bounds generated commit messages.
const MaxCommitMessageLength = 200

// secretPattern pairs a detector with a human-readable credential type.
// Only high-confidence patterns are used to keep false positives down.
type secretPattern struct {
	kind string
	re   *regexp.Regexp
}

var secretPatterns = []secretPattern{
	{"OpenAI API key", regexp.MustCompile(`sk-[a-zA-Z0-9\-_]{32,}`)},
	{"GitHub personal access token", regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`)},
	{"AWS access key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"Slack token", regexp.MustCompile(`xoxb-[a-zA-Z0-9\-]{40,}`)},
}

// Finding is one detected secret with its location.
type Finding struct {
	Kind string
	Line int
	// Excerpt is the matched token, never the whole line, so findings
	// are safe to show in error output.
	Excerpt string
}

// ScanForSecrets checks content for credential-shaped strings and
// returns every match with its line number.
func ScanForSecrets(content string) []Finding {
	var findings []Finding
	for _, p := range secretPatterns {
		for _, loc := range p.re.FindAllStringIndex(content, -1) {
			findings = append(findings, Finding{
				Kind:    p.kind,
				Line:    strings.Count(content[:loc[0]], "\n") + 1,
				Excerpt: redact(content[loc[0]:loc[1]]),
			})
		}
	}
	return findings
}

// ValidateDiff rejects empty diffs and diffs containing secrets.
func ValidateDiff(diff string) error {
	if strings.TrimSpace(diff) == "" {
		return errors.ValidationError("no changes in diff", nil)
	}
	if findings := ScanForSecrets(diff); len(findings) > 0 {
		return errors.ValidationError(describeFindings("diff", findings), nil)
	}
	return nil
}

// ValidateCommitMessage checks a generated message before it is used:
// non-empty, within the length cap, and free of secrets.
func ValidateCommitMessage(message string) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return errors.ValidationError("generated commit message is empty", nil)
	}
	if len(trimmed) > MaxCommitMessageLength {
		return errors.ValidationError(
			fmt.Sprintf("commit message too long: %d chars (max: %d)", len(trimmed), MaxCommitMessageLength), nil)
	}
	if findings := ScanForSecrets(trimmed); len(findings) > 0 {
		return errors.ValidationError(describeFindings("commit message", findings), nil)
	}
	return nil
}

func describeFindings(what string, findings []Finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "potential sensitive data in %s:", what)
	for _, f := range findings {
		fmt.Fprintf(&b, "\n  line %d: %s (%s)", f.Line, f.Excerpt, f.Kind)
	}
	return b.String()
}

// redact keeps enough of the token to locate it without reproducing it.
func redact(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + strings.Repeat("*", len(token)-8)
}
