// Package diff decomposes large version-control diffs into size-bounded,
// file-aligned chunks so a size-limited generation request can still
// produce a useful commit message.
package diff

import "strings"

// ChangeKind classifies what happened to a file in a diff.
type ChangeKind string

// ChangeKind values.
const (
	KindAdded    ChangeKind = "added"
	KindModified ChangeKind = "modified"
	KindDeleted  ChangeKind = "deleted"
	KindRenamed  ChangeKind = "renamed"
	KindBinary   ChangeKind = "binary"
)

// Document is an immutable raw diff.
type Document struct {
	Text string
}

// NewDocument wraps raw diff text.
func NewDocument(text string) Document {
	return Document{Text: text}
}

// Len returns the document length in bytes.
func (d Document) Len() int {
	return len(d.Text)
}

// Segment is the per-file unit of a diff, the unbreakable atom for
// chunking. Raw is an exact slice of the source document, so
// concatenating all segments in order reproduces the document
// (before any truncation).
type Segment struct {
	// OldPath and NewPath hold both sides of the file identity to
	// support renames. For added files OldPath is empty; for deleted
	// files NewPath is empty.
	OldPath string
	NewPath string

	Kind ChangeKind

	// Header holds the per-file header lines (diff marker, mode, index,
	// rename and ---/+++ lines) up to the first hunk or binary marker.
	Header []string

	// Raw is the full segment text, header included.
	Raw string

	// Truncated marks segments rewritten by the truncator.
	Truncated    bool
	OmittedLines int
	OmittedBytes int
}

// Len returns the segment length in bytes.
func (s Segment) Len() int {
	return len(s.Raw)
}

// Path returns the file identity for display: the new path when the
// file still exists, else the old one.
func (s Segment) Path() string {
	if s.NewPath != "" {
		return s.NewPath
	}
	return s.OldPath
}

// Chunk is an ordered group of segments whose cumulative length stays
// within the chunk budget, except when a lone segment alone exceeds it.
type Chunk struct {
	Segments []Segment
}

// Len returns the cumulative chunk length in bytes.
func (c Chunk) Len() int {
	n := 0
	for _, s := range c.Segments {
		n += s.Len()
	}
	return n
}

// Text returns the chunk content: segment raws concatenated in order.
func (c Chunk) Text() string {
	var b strings.Builder
	b.Grow(c.Len())
	for _, s := range c.Segments {
		b.WriteString(s.Raw)
	}
	return b.String()
}

// Files returns the distinct file paths across chunks, in original
// diff order, each exactly once.
func Files(chunks []Chunk) []string {
	seen := make(map[string]bool)
	var files []string
	for _, c := range chunks {
		for _, s := range c.Segments {
			p := s.Path()
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			files = append(files, p)
		}
	}
	return files
}
