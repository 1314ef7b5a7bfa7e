// Package main provides the ai-commit CLI application.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ai-commit-toolkit/ai-commit/pkg/ai"
	"github.com/ai-commit-toolkit/ai-commit/pkg/cache"
	"github.com/ai-commit-toolkit/ai-commit/pkg/config"
	"github.com/ai-commit-toolkit/ai-commit/pkg/diff"
	"github.com/ai-commit-toolkit/ai-commit/pkg/gitops"
	"github.com/ai-commit-toolkit/ai-commit/pkg/logging"
	"github.com/ai-commit-toolkit/ai-commit/pkg/security"
)

// generateFlags holds the flags for the generate command
type generateFlags struct {
	model    string
	yes      bool
	dryRun   bool
	push     bool
	noCache  bool
	stageAll bool
}

var generateOpts generateFlags

// generateCmd produces a commit message for the staged changes and,
// unless --dry-run is given, offers to commit them.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a commit message for staged changes",
	Long: `Generate a commit message for the currently staged changes.

The staged diff is scanned for credentials, decomposed when it exceeds
the chunk budget, and sent to the configured model. The generated
message is shown for confirmation before anything is committed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.RunE = generateCmd.RunE

	generateCmd.Flags().StringVarP(&generateOpts.model, "model", "m", "", "Model to use (overrides config)")
	generateCmd.Flags().BoolVarP(&generateOpts.yes, "yes", "y", false, "Commit without confirmation")
	generateCmd.Flags().BoolVar(&generateOpts.dryRun, "dry-run", false, "Print the message without committing")
	generateCmd.Flags().BoolVar(&generateOpts.push, "push", false, "Push after committing")
	generateCmd.Flags().BoolVar(&generateOpts.noCache, "no-cache", false, "Skip the message cache")
	generateCmd.Flags().BoolVarP(&generateOpts.stageAll, "all", "a", false, "Stage all changes before generating")
}

func runGenerate(ctx context.Context) error {
	cfg, err := config.LoadWithOverrides(globalOpts.config)
	if err != nil {
		return err
	}

	logLevel := cfg.Global.LogLevel
	if globalOpts.logLevel != "" {
		logLevel = globalOpts.logLevel
	}
	logger := logging.New(os.Stderr, logLevel, cfg.Global.LogFormat).
		With("invocation_id", uuid.NewString())

	repo, err := gitops.Open(".", logger)
	if err != nil {
		return err
	}
	if err := repo.Validate(); err != nil {
		return err
	}

	if generateOpts.stageAll {
		if err := repo.StageAll(); err != nil {
			return err
		}
	}

	staged, err := repo.HasStagedChanges()
	if err != nil {
		return err
	}
	if !staged {
		return fmt.Errorf("no staged changes; stage files with 'git add' first")
	}

	rawDiff, err := repo.StagedDiff(ctx)
	if err != nil {
		return err
	}
	if err := security.ValidateDiff(rawDiff); err != nil {
		return err
	}

	pipeline := diff.NewPipeline(diff.Options{
		SplitLargeFiles: cfg.SplitEnabled(),
		MaxChunkSize:    cfg.Diff.MaxChunkSize,
		MaxDiffSize:     cfg.Diff.MaxDiffSize,
		MaxListedFiles:  cfg.Diff.MaxListedFiles,
	}, logger)

	prepared, err := pipeline.Prepare(diff.NewDocument(rawDiff))
	if err != nil {
		return err
	}

	branch, err := repo.CurrentBranch()
	if err != nil {
		return err
	}

	model := generateOpts.model
	if model == "" {
		model = cfg.OpenAI.Model
	}

	message, err := generateMessage(ctx, cfg, logger, ai.Request{
		Diff:   prepared.Text,
		Branch: branch,
		Model:  model,
	})
	if err != nil {
		return err
	}
	if err := security.ValidateCommitMessage(message); err != nil {
		return err
	}

	fmt.Println(message)

	if generateOpts.dryRun {
		return nil
	}
	if !generateOpts.yes && !cfg.Git.AutoCommit && !confirm("Use this commit message?") {
		fmt.Println("Aborted.")
		return nil
	}

	hash, err := repo.Commit(message)
	if err != nil {
		return err
	}
	fmt.Printf("Committed %s\n", hash[:8])

	if generateOpts.push || cfg.Git.AutoPush {
		if err := repo.Push(ctx, cfg.Git.Remote); err != nil {
			return err
		}
		fmt.Printf("Pushed to %s\n", cfg.Git.Remote)
	}
	return nil
}

// generateMessage answers from the cache when possible, otherwise calls
// the backend and stores the result.
func generateMessage(ctx context.Context, cfg *config.Config, logger *slog.Logger, req ai.Request) (string, error) {
	var store cache.Cache
	var key string

	if cfg.CacheEnabled() && !generateOpts.noCache {
		disk, err := cache.NewDiskCache(cfg.Global.CacheDir)
		if err != nil {
			logger.Warn("cache unavailable, continuing without it", "error", err)
		} else {
			store = disk
			key = cache.NewKeyGenerator().GenerateForRequest(req.Model, req.Branch, req.Diff)
			if cached, err := store.Get(ctx, key); err == nil {
				logger.Info("using cached commit message")
				return string(cached), nil
			}
		}
	}

	generator, err := ai.NewGenerator(ai.ProviderOpenAI, cfg, logger)
	if err != nil {
		return "", err
	}

	resp, err := generator.GenerateCommitMessage(ctx, req)
	if err != nil {
		return "", err
	}
	logger.Info("generated commit message",
		"model", resp.Model, "total_tokens", resp.Usage.TotalTokens)

	if store != nil {
		if err := store.Set(ctx, key, []byte(resp.Message), 24*time.Hour); err != nil {
			logger.Warn("failed to store message in cache", "error", err)
		}
	}
	return resp.Message, nil
}

// confirm prompts on stdin and treats anything but y/yes as a no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
