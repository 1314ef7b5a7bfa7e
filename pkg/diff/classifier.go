package diff

// Classification is the size classifier's verdict on a diff.
type Classification int

const (
	// PassThrough forwards the diff verbatim.
	PassThrough Classification = iota
	// Decompose splits the diff into file-aligned chunks.
	Decompose
	// Reject aborts: the diff exceeds the hard size limit and no
	// partial processing is attempted.
	Reject
)

// String returns the classification name.
func (c Classification) String() string {
	switch c {
	case PassThrough:
		return "pass-through"
	case Decompose:
		return "decompose"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// Options bounds the decomposition pipeline.
type Options struct {
	// SplitLargeFiles enables decomposition; when false every diff
	// within MaxDiffSize passes through verbatim.
	SplitLargeFiles bool

	// MaxChunkSize is the byte budget for one chunk.
	MaxChunkSize int

	// MaxDiffSize is the hard limit above which the diff is rejected.
	MaxDiffSize int

	// MaxListedFiles caps the summary's enumerated file list.
	MaxListedFiles int
}

// Classify decides whether a diff of the given length needs
// decomposition. Rejection is checked first: an oversized diff fails
// fast even when splitting is disabled.
func Classify(length int, opts Options) Classification {
	if length > opts.MaxDiffSize {
		return Reject
	}
	if length <= opts.MaxChunkSize || !opts.SplitLargeFiles {
		return PassThrough
	}
	return Decompose
}
