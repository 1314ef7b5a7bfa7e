package diff

import (
	"fmt"
	"strings"
)

// Summary is the compact representation sent instead of a decomposed
// diff: counts, the changed-file list, and the first chunk verbatim.
type Summary struct {
	OriginalSize int
	ChunkCount   int
	Files        []string
	Text         string
}

// BuildSummary renders the summary for a decomposed diff. The output
// is deterministic: identical chunks produce byte-identical text. At
// most maxListed file paths are enumerated; the rest collapse into a
// counted ellipsis line. The trailing note names how many chunks were
// omitted, zero included, so the reader always knows coverage.
func BuildSummary(chunks []Chunk, originalSize, maxListed int) Summary {
	files := Files(chunks)

	var b strings.Builder
	b.WriteString("[Diff summary]\n")
	fmt.Fprintf(&b, "Original size: %d characters\n", originalSize)
	fmt.Fprintf(&b, "Chunks: %d\n", len(chunks))
	fmt.Fprintf(&b, "Files changed: %d\n", len(files))
	b.WriteString("Files:\n")

	listed := files
	if maxListed > 0 && len(files) > maxListed {
		listed = files[:maxListed]
	}
	for _, f := range listed {
		fmt.Fprintf(&b, "  - %s\n", f)
	}
	if extra := len(files) - len(listed); extra > 0 {
		fmt.Fprintf(&b, "  … (%d more files)\n", extra)
	}

	if len(chunks) > 0 {
		fmt.Fprintf(&b, "\n--- Chunk 1 of %d ---\n", len(chunks))
		first := chunks[0].Text()
		b.WriteString(first)
		if !strings.HasSuffix(first, "\n") {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\nNote: %d additional chunks omitted; review the remaining files separately.\n",
			len(chunks)-1)
	}

	return Summary{
		OriginalSize: originalSize,
		ChunkCount:   len(chunks),
		Files:        files,
		Text:         b.String(),
	}
}
