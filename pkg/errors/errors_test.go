package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorFormatting(t *testing.T) {
	err := GitError("commit failed", errors.New("index locked"))
	msg := err.Error()

	if !strings.Contains(msg, "[GIT]") {
		t.Errorf("message %q missing kind tag", msg)
	}
	if !strings.Contains(msg, "commit failed") {
		t.Errorf("message %q missing description", msg)
	}
	if !strings.Contains(msg, "index locked") {
		t.Errorf("message %q missing cause", msg)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := TransientError("request failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is must reach the cause through Unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := RateLimitedError("slow down", nil)

	if !IsKind(err, ErrRateLimited) {
		t.Error("IsKind failed on direct error")
	}
	if IsKind(err, ErrTransient) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(nil, ErrTransient) {
		t.Error("IsKind must be false for nil")
	}

	wrapped := fmt.Errorf("context: %w", err)
	if !IsKind(wrapped, ErrRateLimited) {
		t.Error("IsKind must see through wrapping")
	}
}

func TestKindOf(t *testing.T) {
	if kind, ok := KindOf(AuthenticationError("bad key", nil)); !ok || kind != ErrAuthentication {
		t.Errorf("KindOf = %v, %v", kind, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf must report foreign errors")
	}
}

func TestRetryPolicy(t *testing.T) {
	tests := []struct {
		err       error
		retryable bool
	}{
		{RateLimitedError("429", nil), true},
		{TransientError("503", nil), true},
		{AuthenticationError("401", nil), false},
		{InvalidRequestError("400", nil), false},
		{ConfigError("bad config", nil), false},
		{GitError("no repo", nil), false},
		{ValidationError("empty diff", nil), false},
		{SizeExceededError("too big"), false},
		{RetriesExhaustedError(3, nil), false},
		{errors.New("foreign"), false},
	}

	for _, tt := range tests {
		if got := IsRetryable(tt.err); got != tt.retryable {
			t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.retryable)
		}
	}
}

func TestWithRetryAfter(t *testing.T) {
	err := RateLimitedError("slow down", nil).WithRetryAfter(20 * time.Second)

	if err.RetryAfter != 20*time.Second {
		t.Errorf("RetryAfter = %v, want 20s", err.RetryAfter)
	}
}

func TestRetriesExhaustedKeepsCause(t *testing.T) {
	cause := TransientError("503", nil)
	err := RetriesExhaustedError(3, cause)

	if !strings.Contains(err.Error(), "3 attempts") {
		t.Errorf("message %q missing attempt count", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause must stay reachable")
	}
}
