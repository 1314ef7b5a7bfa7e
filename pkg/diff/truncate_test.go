package diff

import (
	"fmt"
	"strings"
	"testing"
)

func oversizedSegment(t *testing.T, lines int) Segment {
	t.Helper()

	var b strings.Builder
	b.WriteString("diff --git a/big/file.go b/big/file.go\n")
	b.WriteString("index 0000000..1111111 100644\n")
	b.WriteString("--- a/big/file.go\n")
	b.WriteString("+++ b/big/file.go\n")
	b.WriteString(fmt.Sprintf("@@ -1,%d +1,%d @@\n", lines, lines))
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&b, "+line %04d %s\n", i, strings.Repeat("x", 40))
	}

	segments := Split(b.String())
	if len(segments) != 1 {
		t.Fatalf("Split() returned %d segments, want 1", len(segments))
	}
	return segments[0]
}

func TestTruncateBoundsSegmentSize(t *testing.T) {
	seg := oversizedSegment(t, 500)
	maxSize := 2000
	if seg.Len() <= maxSize {
		t.Fatalf("test segment is %d bytes, need more than %d", seg.Len(), maxSize)
	}

	got := Truncate(seg, maxSize)

	if got.Len() > maxSize {
		t.Errorf("truncated segment is %d bytes, want at most %d", got.Len(), maxSize)
	}
	if !got.Truncated {
		t.Error("Truncated flag not set")
	}
	if got.OmittedLines <= 0 {
		t.Errorf("OmittedLines = %d, want positive", got.OmittedLines)
	}
	if got.OmittedBytes <= 0 {
		t.Errorf("OmittedBytes = %d, want positive", got.OmittedBytes)
	}
}

func TestTruncatePreservesHeader(t *testing.T) {
	seg := oversizedSegment(t, 500)
	got := Truncate(seg, 2000)

	headerText := strings.Join(seg.Header, "\n") + "\n"
	if !strings.HasPrefix(got.Raw, headerText) {
		t.Error("truncated segment must start with the full file header")
	}
	if got.Path() != "big/file.go" {
		t.Errorf("path = %q, want %q", got.Path(), "big/file.go")
	}
}

func TestTruncateKeepsHeadAndTail(t *testing.T) {
	seg := oversizedSegment(t, 500)
	got := Truncate(seg, 2000)

	if !strings.Contains(got.Raw, "+line 0000") {
		t.Error("head of the body was not preserved")
	}
	if !strings.Contains(got.Raw, "+line 0499") {
		t.Error("tail of the body was not preserved")
	}

	wantMarker := fmt.Sprintf("... %d lines omitted (%d bytes) ...", got.OmittedLines, got.OmittedBytes)
	if !strings.Contains(got.Raw, wantMarker) {
		t.Errorf("omission marker %q not found in truncated segment", wantMarker)
	}
}

func TestTruncateAccountsForAllBytes(t *testing.T) {
	seg := oversizedSegment(t, 500)
	got := Truncate(seg, 2000)

	headerLen := len(strings.Join(seg.Header, "\n")) + 1
	bodyLen := seg.Len() - headerLen
	marker := fmt.Sprintf("... %d lines omitted (%d bytes) ...\n", got.OmittedLines, got.OmittedBytes)
	keptBody := got.Len() - headerLen - len(marker)

	if keptBody+got.OmittedBytes != bodyLen {
		t.Errorf("kept %d + omitted %d = %d body bytes, want %d",
			keptBody, got.OmittedBytes, keptBody+got.OmittedBytes, bodyLen)
	}
}

func TestTruncateLeavesSmallSegmentAlone(t *testing.T) {
	seg := oversizedSegment(t, 10)
	got := Truncate(seg, 1<<20)

	if got.Truncated {
		t.Error("segment within budget must not be truncated")
	}
	if got.Raw != seg.Raw {
		t.Error("segment within budget must be returned unchanged")
	}
}
