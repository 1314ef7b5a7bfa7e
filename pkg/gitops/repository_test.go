package gitops

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"

	"github.com/ai-commit-toolkit/ai-commit/pkg/errors"
)

func initTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()

	dir := t.TempDir()
	raw, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}

	cfg, err := raw.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	cfg.User.Name = "Test User"
	cfg.User.Email = "test@example.com"
	if err := raw.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}

	repo, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return repo, dir
}

func stageFile(t *testing.T, repo *Repository, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	wt, err := repo.repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("Add: %v", err)
	}
}

func TestOpenRejectsNonRepository(t *testing.T) {
	_, err := Open(t.TempDir(), nil)
	if err == nil {
		t.Fatal("Open() must fail outside a git repository")
	}
	if !errors.IsKind(err, errors.ErrGit) {
		t.Errorf("error kind = %v, want ErrGit", err)
	}
}

func TestValidateFailsWithoutCommits(t *testing.T) {
	repo, _ := initTestRepo(t)

	if err := repo.Validate(); err == nil {
		t.Error("Validate() must fail on a repository with no commits")
	}
}

func TestStagedChangesAndCommit(t *testing.T) {
	repo, dir := initTestRepo(t)

	staged, err := repo.HasStagedChanges()
	if err != nil {
		t.Fatalf("HasStagedChanges: %v", err)
	}
	if staged {
		t.Error("fresh repository must report no staged changes")
	}

	stageFile(t, repo, dir, "main.go", "package main\n")

	staged, err = repo.HasStagedChanges()
	if err != nil {
		t.Fatalf("HasStagedChanges: %v", err)
	}
	if !staged {
		t.Fatal("staged file not detected")
	}

	hash, err := repo.Commit("feat: initial commit")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if hash == "" {
		t.Error("Commit() returned an empty hash")
	}

	staged, err = repo.HasStagedChanges()
	if err != nil {
		t.Fatalf("HasStagedChanges: %v", err)
	}
	if staged {
		t.Error("staged changes must be gone after commit")
	}

	if err := repo.Validate(); err != nil {
		t.Errorf("Validate() after commit: %v", err)
	}
}

func TestCurrentBranch(t *testing.T) {
	repo, dir := initTestRepo(t)
	stageFile(t, repo, dir, "a.txt", "a\n")
	if _, err := repo.Commit("chore: add a"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	branch, err := repo.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if branch != "master" {
		t.Errorf("branch = %q, want %q", branch, "master")
	}
}

func TestStageAll(t *testing.T) {
	repo, dir := initTestRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := repo.StageAll(); err != nil {
		t.Fatalf("StageAll: %v", err)
	}

	staged, err := repo.HasStagedChanges()
	if err != nil {
		t.Fatalf("HasStagedChanges: %v", err)
	}
	if !staged {
		t.Error("StageAll must stage untracked files")
	}
}

func TestSanitizeGitRef(t *testing.T) {
	tests := []struct {
		ref     string
		wantErr bool
	}{
		{"", false},
		{"main", false},
		{"feature/JIRA-123", false},
		{"v1.2.3", false},
		{"HEAD~1; rm -rf /", true},
		{"$(whoami)", true},
		{"../escape", true},
		{"branch|pipe", true},
		{"back`tick`", true},
		{"new\nline", true},
	}

	for _, tt := range tests {
		err := sanitizeGitRef(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("sanitizeGitRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
		}
	}
}
