package ai

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ai-commit-toolkit/ai-commit/pkg/errors"
)

// retryAfterPattern matches the wait hint rate-limit responses embed in
// their message body, e.g. "Please try again in 20s" or "in 1.5s".
var retryAfterPattern = regexp.MustCompile(`try again in ([0-9.]+)s`)

// Classify maps a backend error to a typed error whose kind drives the
// retry policy. Already-classified errors and context cancellation pass
// through unchanged. Unknown failures are treated as transient: a
// one-off network hiccup should not abort the run.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var cerr *errors.CommitError
	if stderrors.As(err, &cerr) {
		return err
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			e := errors.RateLimitedError(apiErr.Message, err)
			if d, ok := parseRetryAfter(apiErr.Message); ok {
				e = e.WithRetryAfter(d)
			}
			return e
		case apiErr.HTTPStatusCode == http.StatusUnauthorized,
			apiErr.HTTPStatusCode == http.StatusForbidden:
			return errors.AuthenticationError(apiErr.Message, err)
		case apiErr.HTTPStatusCode >= http.StatusInternalServerError:
			return errors.TransientError(apiErr.Message, err)
		case apiErr.HTTPStatusCode >= http.StatusBadRequest:
			return errors.InvalidRequestError(apiErr.Message, err)
		default:
			return errors.TransientError(apiErr.Message, err)
		}
	}

	// Connection failures surface as RequestError before any HTTP
	// status exists.
	var reqErr *openai.RequestError
	if stderrors.As(err, &reqErr) {
		return errors.TransientError("request failed before completion", err)
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.TransientError("network timeout", err)
	}

	return errors.TransientError("unexpected backend failure", err)
}

// parseRetryAfter extracts the server-suggested wait from a rate-limit
// message body.
func parseRetryAfter(message string) (time.Duration, bool) {
	m := retryAfterPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	secs, err := strconv.ParseFloat(m[1], 64)
	if err != nil || secs <= 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}
