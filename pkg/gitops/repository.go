// Package gitops handles repository inspection, diff extraction, and the
// commit/push workflow.
package gitops

import (
	"context"
	"io"
	"log/slog"

	git "github.com/go-git/go-git/v5"

	"github.com/ai-commit-toolkit/ai-commit/pkg/errors"
)

// Repository wraps an opened git repository.
type Repository struct {
	repo   *git.Repository
	path   string
	logger *slog.Logger
}

// Open opens the repository at path. A nil logger discards diagnostics.
func Open(path string, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.GitError("not a git repository", err)
	}

	return &Repository{repo: repo, path: path, logger: logger}, nil
}

// Validate checks the repository is in a usable state: HEAD must
// resolve, so a freshly initialized repository with no commits fails.
func (r *Repository) Validate() error {
	if _, err := r.repo.Head(); err != nil {
		return errors.GitError("repository has no commits yet", err)
	}
	return nil
}

// CurrentBranch returns the short branch name, or empty on a detached
// HEAD.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", errors.GitError("cannot resolve HEAD", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// HasStagedChanges reports whether anything is staged for commit.
func (r *Repository) HasStagedChanges() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, errors.GitError("cannot open worktree", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, errors.GitError("cannot read worktree status", err)
	}

	for _, s := range status {
		if s.Staging != git.Unmodified && s.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

// StageAll stages every change in the working tree, new files included.
func (r *Repository) StageAll() error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return errors.GitError("cannot open worktree", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return errors.GitError("staging failed", err)
	}
	return nil
}

// Commit records the staged changes with the given message. Author
// identity comes from the repository or global git configuration.
func (r *Repository) Commit(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", errors.GitError("cannot open worktree", err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", errors.GitError("commit failed", err)
	}

	r.logger.Info("created commit", "hash", hash.String())
	return hash.String(), nil
}

// Push sends the current branch to the named remote.
func (r *Repository) Push(ctx context.Context, remote string) error {
	err := r.repo.PushContext(ctx, &git.PushOptions{RemoteName: remote})
	if err == git.NoErrAlreadyUpToDate {
		r.logger.Info("remote already up to date", "remote", remote)
		return nil
	}
	if err != nil {
		return errors.GitError("push to "+remote+" failed", err)
	}

	r.logger.Info("pushed to remote", "remote", remote)
	return nil
}
