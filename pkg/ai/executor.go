package ai

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/ai-commit-toolkit/ai-commit/pkg/config"
	"github.com/ai-commit-toolkit/ai-commit/pkg/errors"
)

// Executor runs a request with classified-error retry and exponential
// backoff. Retryability is decided by the error kind's retry policy,
// never by inspecting raw errors at the call site.
type Executor struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	logger     *slog.Logger

	// sleep and jitter are swappable for tests.
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(max time.Duration) time.Duration

	// onAttempt, when set, observes every attempt as it completes.
	onAttempt func(Attempt)
}

// Attempt is the record of one request try.
type Attempt struct {
	Index int           // zero-based attempt number
	Delay time.Duration // backoff slept before this attempt
	Err   error         // classified outcome, nil on success
}

// NewExecutor creates an executor from retry configuration. A nil
// logger discards retry diagnostics.
func NewExecutor(cfg config.RetryConfig, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		maxDelay:   cfg.MaxDelay,
		logger:     logger,
		sleep:      sleepContext,
		jitter:     randomJitter,
	}
}

// Do runs fn up to maxRetries times. Each failure is classified; fatal
// kinds return immediately, retryable kinds wait out the backoff delay
// before the next attempt. When the attempt budget runs out the last
// classified error is wrapped in a retries-exhausted error. Context
// cancellation aborts between attempts and during backoff waits.
func (e *Executor) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error
	var slept time.Duration

	for attempt := 0; attempt < e.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			e.record(Attempt{Index: attempt, Delay: slept})
			if attempt > 0 {
				e.logger.Info("request succeeded after retry",
					"operation", operation, "attempt", attempt+1)
			}
			return nil
		}

		classified := Classify(err)
		lastErr = classified
		e.record(Attempt{Index: attempt, Delay: slept, Err: classified})

		if stderrors.Is(classified, context.Canceled) || stderrors.Is(classified, context.DeadlineExceeded) {
			return classified
		}
		if !errors.IsRetryable(classified) {
			e.logger.Error("request failed",
				"operation", operation, "attempt", attempt+1, "error", classified)
			return classified
		}
		if attempt == e.maxRetries-1 {
			break
		}

		delay := e.backoff(attempt, classified)
		e.logger.Warn("request failed, retrying",
			"operation", operation,
			"attempt", attempt+1,
			"max_retries", e.maxRetries,
			"delay", delay,
			"error", classified)

		if err := e.sleep(ctx, delay); err != nil {
			return err
		}
		slept = delay
	}

	e.logger.Error("request failed, retries exhausted",
		"operation", operation, "attempts", e.maxRetries, "error", lastErr)
	return errors.RetriesExhaustedError(e.maxRetries, lastErr)
}

func (e *Executor) record(a Attempt) {
	if e.onAttempt != nil {
		e.onAttempt(a)
	}
}

// backoff computes the wait before the next attempt: a server-suggested
// wait when the error carries one, otherwise exponential backoff with
// jitter, both capped at maxDelay.
func (e *Executor) backoff(attempt int, err error) time.Duration {
	var cerr *errors.CommitError
	if stderrors.As(err, &cerr) && cerr.RetryAfter > 0 {
		if cerr.RetryAfter > e.maxDelay {
			return e.maxDelay
		}
		return cerr.RetryAfter
	}

	delay := e.baseDelay << uint(attempt)
	if delay > e.maxDelay || delay <= 0 {
		return e.maxDelay
	}
	delay += e.jitter(e.baseDelay)
	if delay > e.maxDelay {
		return e.maxDelay
	}
	return delay
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}
