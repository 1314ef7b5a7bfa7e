package diff

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ai-commit-toolkit/ai-commit/pkg/errors"
)

// Pipeline runs classification, splitting, truncation, assembly, and
// summarization as one operation.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
}

// NewPipeline creates a pipeline with the given bounds. A nil logger
// discards pipeline diagnostics.
func NewPipeline(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{opts: opts, logger: logger}
}

// Result is the prepared request payload for a diff.
type Result struct {
	// Text is what gets sent: the original diff verbatim, or the
	// rendered summary when the diff was decomposed.
	Text string

	// Decomposed reports whether Text is a summary rather than the
	// original diff.
	Decomposed bool

	// Summary carries decomposition details; nil when not decomposed.
	Summary *Summary
}

// Prepare turns a raw diff into a size-bounded payload. Diffs over the
// hard limit are rejected; diffs within the chunk budget pass through
// untouched; everything else is decomposed into a summary. Prepare is
// idempotent for pass-through input: preparing the output again yields
// the same text.
func (p *Pipeline) Prepare(doc Document) (Result, error) {
	switch Classify(doc.Len(), p.opts) {
	case Reject:
		return Result{}, errors.SizeExceededError(
			fmt.Sprintf("diff is %d bytes, exceeding the %d byte limit", doc.Len(), p.opts.MaxDiffSize))
	case PassThrough:
		return Result{Text: doc.Text}, nil
	}

	segments := Split(doc.Text)
	if len(segments) == 0 {
		return Result{Text: doc.Text}, nil
	}
	if len(segments) == 1 && segments[0].Path() == "" {
		p.logger.Warn("no file boundaries found in diff, treating it as a single segment",
			"bytes", doc.Len())
	}

	truncated := 0
	for i, seg := range segments {
		if seg.Len() > p.opts.MaxChunkSize {
			segments[i] = Truncate(seg, p.opts.MaxChunkSize)
			truncated++
		}
	}

	chunks := Assemble(segments, p.opts.MaxChunkSize)
	summary := BuildSummary(chunks, doc.Len(), p.opts.MaxListedFiles)

	p.logger.Info("diff decomposed",
		"original_bytes", doc.Len(),
		"segments", len(segments),
		"truncated_segments", truncated,
		"chunks", len(chunks),
		"files", len(summary.Files))

	return Result{Text: summary.Text, Decomposed: true, Summary: &summary}, nil
}
