package diff

import "strings"

// fileMarker begins a new file's diff block in git unified diff output.
const fileMarker = "diff --git "

// Split parses a diff into an ordered sequence of per-file segments.
// Segment order equals file order in the source; each segment's Raw is
// an exact slice of text, so concatenating them reproduces the input.
//
// If no file boundary exists (malformed or monolithic input) the whole
// document becomes a single segment. That is a fallback, not an error.
func Split(text string) []Segment {
	if text == "" {
		return nil
	}

	starts := boundaryOffsets(text)
	if len(starts) == 0 {
		return []Segment{{Kind: KindModified, Raw: text}}
	}

	// Any prelude before the first marker stays attached to the first
	// segment so no content is dropped.
	starts[0] = 0

	segments := make([]Segment, 0, len(starts))
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		segments = append(segments, parseSegment(text[start:end]))
	}
	return segments
}

// boundaryOffsets returns the byte offsets of every file marker line.
func boundaryOffsets(text string) []int {
	var starts []int
	if strings.HasPrefix(text, fileMarker) {
		starts = append(starts, 0)
	}
	for off := 0; ; {
		idx := strings.Index(text[off:], "\n"+fileMarker)
		if idx < 0 {
			break
		}
		starts = append(starts, off+idx+1)
		off += idx + 1
	}
	return starts
}

// parseSegment extracts file identity, change kind, and header lines
// from one file's diff block.
func parseSegment(raw string) Segment {
	seg := Segment{Kind: KindModified, Raw: raw}

	lines := strings.Split(raw, "\n")

	// Skip any prelude attached ahead of the marker line.
	hstart := 0
	for hstart < len(lines) && !strings.HasPrefix(lines[hstart], fileMarker) {
		hstart++
	}
	if hstart == len(lines) {
		return seg
	}

	headerEnd := len(lines)
	for i := hstart; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "@@"):
			headerEnd = i
		case strings.HasPrefix(line, "Binary files ") || line == "GIT binary patch":
			seg.Kind = KindBinary
			headerEnd = i + 1
		default:
			continue
		}
		break
	}

	header := lines[hstart:headerEnd]
	// A segment ending exactly at the header keeps a trailing empty
	// element from the final newline; it is not a header line.
	if n := len(header); n > 0 && header[n-1] == "" {
		header = header[:n-1]
	}
	seg.Header = header

	oldPath, newPath := pathsFromMarker(lines[hstart])
	for _, line := range header {
		switch {
		case strings.HasPrefix(line, "new file mode "):
			if seg.Kind != KindBinary {
				seg.Kind = KindAdded
			}
			oldPath = ""
		case strings.HasPrefix(line, "deleted file mode "):
			if seg.Kind != KindBinary {
				seg.Kind = KindDeleted
			}
			newPath = ""
		case strings.HasPrefix(line, "rename from "):
			if seg.Kind != KindBinary {
				seg.Kind = KindRenamed
			}
			oldPath = strings.TrimPrefix(line, "rename from ")
		case strings.HasPrefix(line, "rename to "):
			newPath = strings.TrimPrefix(line, "rename to ")
		case strings.HasPrefix(line, "--- a/"):
			oldPath = strings.TrimPrefix(line, "--- a/")
		case strings.HasPrefix(line, "+++ b/"):
			newPath = strings.TrimPrefix(line, "+++ b/")
		}
	}
	seg.OldPath = oldPath
	seg.NewPath = newPath

	return seg
}

// pathsFromMarker parses "diff --git a/old b/new". The ---/+++ and
// rename header lines refine these when present.
func pathsFromMarker(line string) (oldPath, newPath string) {
	rest := strings.TrimPrefix(line, fileMarker)
	idx := strings.LastIndex(rest, " b/")
	if idx < 0 {
		return "", ""
	}
	oldPath = strings.TrimPrefix(rest[:idx], "a/")
	newPath = rest[idx+len(" b/"):]
	return oldPath, newPath
}
