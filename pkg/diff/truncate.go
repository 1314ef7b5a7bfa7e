package diff

import (
	"fmt"
	"strings"
)

// omissionReserve is the byte budget set aside for the omission marker
// line. The marker is always shorter than this, so truncated segments
// never exceed the chunk budget.
const omissionReserve = 64

// Truncate bounds an oversized segment while preserving the full file
// header, a head portion of the body, a tail portion of the body, and
// an explicit marker stating what was omitted between them. Head and
// tail receive equal shares of the remaining budget. Segments already
// within budget are returned unchanged.
//
// Truncation is lossy and irreversible.
func Truncate(seg Segment, maxSize int) Segment {
	if seg.Len() <= maxSize {
		return seg
	}

	headerText := ""
	if len(seg.Header) > 0 {
		headerText = strings.Join(seg.Header, "\n") + "\n"
	}
	// A prelude attached ahead of the first file marker means the header
	// is not the raw prefix; treat the whole segment as body then.
	if !strings.HasPrefix(seg.Raw, headerText) {
		headerText = ""
	}
	body := seg.Raw[len(headerText):]
	bodyLines := strings.SplitAfter(body, "\n")
	if n := len(bodyLines); n > 0 && bodyLines[n-1] == "" {
		bodyLines = bodyLines[:n-1]
	}

	budget := maxSize - len(headerText) - omissionReserve
	if budget < 0 {
		budget = 0
	}
	headBudget := budget / 2
	tailBudget := budget - headBudget

	headEnd := 0
	headLen := 0
	for headEnd < len(bodyLines) && headLen+len(bodyLines[headEnd]) <= headBudget {
		headLen += len(bodyLines[headEnd])
		headEnd++
	}

	tailStart := len(bodyLines)
	tailLen := 0
	for tailStart > headEnd && tailLen+len(bodyLines[tailStart-1]) <= tailBudget {
		tailLen += len(bodyLines[tailStart-1])
		tailStart--
	}

	omittedLines := tailStart - headEnd
	omittedBytes := len(body) - headLen - tailLen

	var b strings.Builder
	b.Grow(maxSize)
	b.WriteString(headerText)
	for _, line := range bodyLines[:headEnd] {
		b.WriteString(line)
	}
	fmt.Fprintf(&b, "... %d lines omitted (%d bytes) ...\n", omittedLines, omittedBytes)
	for _, line := range bodyLines[tailStart:] {
		b.WriteString(line)
	}

	out := seg
	out.Raw = b.String()
	out.Truncated = true
	out.OmittedLines = omittedLines
	out.OmittedBytes = omittedBytes
	return out
}
