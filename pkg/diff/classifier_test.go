package diff

import "testing"

func TestClassify(t *testing.T) {
	opts := Options{
		SplitLargeFiles: true,
		MaxChunkSize:    500000,
		MaxDiffSize:     10485760,
		MaxListedFiles:  3,
	}

	tests := []struct {
		name   string
		length int
		opts   Options
		want   Classification
	}{
		{"empty diff passes through", 0, opts, PassThrough},
		{"small diff passes through", 1200, opts, PassThrough},
		{"exactly at chunk budget passes through", 500000, opts, PassThrough},
		{"one byte over chunk budget decomposes", 500001, opts, Decompose},
		{"large diff decomposes", 2714806, opts, Decompose},
		{"exactly at hard limit decomposes", 10485760, opts, Decompose},
		{"one byte over hard limit rejects", 10485761, opts, Reject},
		{
			"splitting disabled passes large diff through",
			2714806,
			Options{SplitLargeFiles: false, MaxChunkSize: 500000, MaxDiffSize: 10485760},
			PassThrough,
		},
		{
			"rejection wins over disabled splitting",
			10485761,
			Options{SplitLargeFiles: false, MaxChunkSize: 500000, MaxDiffSize: 10485760},
			Reject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.length, tt.opts); got != tt.want {
				t.Errorf("Classify(%d) = %v, want %v", tt.length, got, tt.want)
			}
		})
	}
}

func TestClassificationString(t *testing.T) {
	tests := []struct {
		c    Classification
		want string
	}{
		{PassThrough, "pass-through"},
		{Decompose, "decompose"},
		{Reject, "reject"},
		{Classification(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Classification(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
