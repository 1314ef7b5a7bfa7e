package diff

// Assemble packs segments into ordered chunks using a greedy
// first-fit-in-order strategy: each segment joins the current chunk
// unless it would push the chunk past maxSize, in which case the chunk
// is sealed and a new one started. Segments never straddle chunks and
// never reorder. A segment that alone exceeds maxSize gets a chunk to
// itself.
func Assemble(segments []Segment, maxSize int) []Chunk {
	var chunks []Chunk
	var cur []Segment
	curLen := 0

	for _, seg := range segments {
		if len(cur) > 0 && curLen+seg.Len() > maxSize {
			chunks = append(chunks, Chunk{Segments: cur})
			cur = nil
			curLen = 0
		}
		cur = append(cur, seg)
		curLen += seg.Len()
	}
	if len(cur) > 0 {
		chunks = append(chunks, Chunk{Segments: cur})
	}
	return chunks
}
