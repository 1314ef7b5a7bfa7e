package ai

import (
	"fmt"
	"regexp"
	"strings"
)

const systemPrompt = `You are an expert software engineer writing git commit messages.
Given a diff, produce a single conventional commit message.
Rules:
- Use the form: <type>(<scope>): <subject>
- Types: feat, fix, docs, style, refactor, perf, test, build, ci, chore
- Keep the subject under 72 characters, imperative mood, no trailing period
- Respond with the commit message only, no explanation or markdown fences`

// codeFencePattern strips a markdown fence the model may wrap the
// message in despite instructions.
var codeFencePattern = regexp.MustCompile("(?s)```(?:[a-z]*\n)?(.*?)```")

// messagePrefixes are chatty lead-ins models prepend to the message.
var messagePrefixes = []string{
	"Commit message:",
	"commit message:",
	"Here is the commit message:",
	"Here's the commit message:",
}

// BuildPrompt renders the user prompt for one generation request.
// Branch context is included when available: feature branch names often
// carry ticket numbers and intent the diff alone does not.
func BuildPrompt(req Request) (system, user string) {
	var b strings.Builder
	if req.Branch != "" {
		fmt.Fprintf(&b, "Current branch: %s\n\n", req.Branch)
	}
	b.WriteString("Generate a commit message for the following changes:\n\n")
	b.WriteString(req.Diff)
	return systemPrompt, b.String()
}

// ExtractMessage cleans a raw model response down to the bare commit
// message: fences unwrapped, lead-in phrases and wrapping quotes
// removed, whitespace trimmed.
func ExtractMessage(raw string) string {
	msg := strings.TrimSpace(raw)

	if m := codeFencePattern.FindStringSubmatch(msg); m != nil {
		msg = strings.TrimSpace(m[1])
	}

	for _, prefix := range messagePrefixes {
		if strings.HasPrefix(msg, prefix) {
			msg = strings.TrimSpace(strings.TrimPrefix(msg, prefix))
			break
		}
	}

	if len(msg) >= 2 {
		if (msg[0] == '"' && msg[len(msg)-1] == '"') || (msg[0] == '\'' && msg[len(msg)-1] == '\'') {
			msg = strings.TrimSpace(msg[1 : len(msg)-1])
		}
	}

	return msg
}
