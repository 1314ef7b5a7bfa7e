package gitops

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/ai-commit-toolkit/ai-commit/pkg/errors"
)

// validGitRefPattern matches safe git refs (branch names, tags, commits)
var validGitRefPattern = regexp.MustCompile(`^[a-zA-Z0-9/_\-\.]+$`)

// dangerousShellChars contains characters that must be rejected to prevent shell injection
var dangerousShellChars = []string{"|", "&", ";", "$", "(", ")", "`", "{", "}", ">", "<", "\n", "\t"}

// sanitizeGitRef validates that a git ref is safe to use in commands
func sanitizeGitRef(ref string) error {
	if ref == "" {
		return nil // Empty ref is valid (defaults to HEAD)
	}
	if strings.Contains(ref, "..") || strings.Contains(ref, "\\") {
		return fmt.Errorf("invalid git ref: contains path traversal sequence")
	}
	for _, ch := range dangerousShellChars {
		if strings.Contains(ref, ch) {
			return fmt.Errorf("invalid git ref: contains dangerous character %q", ch)
		}
	}
	if !validGitRefPattern.MatchString(ref) {
		return fmt.Errorf("invalid git ref: contains invalid characters")
	}
	return nil
}

// StagedDiff returns the diff of everything staged for commit. The git
// binary is used here because index-versus-HEAD diffs need the exact
// text git itself would produce.
func (r *Repository) StagedDiff(ctx context.Context) (string, error) {
	return r.runDiff(ctx, "diff", "--cached")
}

// DiffAgainst returns the diff between the working tree and the given
// ref.
func (r *Repository) DiffAgainst(ctx context.Context, ref string) (string, error) {
	if err := sanitizeGitRef(ref); err != nil {
		return "", errors.ValidationError("unsafe git ref", err)
	}
	args := []string{"diff"}
	if ref != "" {
		args = append(args, ref)
	}
	return r.runDiff(ctx, args...)
}

func (r *Repository) runDiff(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.path

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.GitError(
			fmt.Sprintf("git %s failed: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String())), err)
	}

	r.logger.Debug("extracted diff", "args", strings.Join(args, " "), "bytes", stdout.Len())
	return stdout.String(), nil
}
