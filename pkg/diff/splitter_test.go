package diff

import (
	"strings"
	"testing"
)

const sampleDiff = `diff --git a/pkg/server/server.go b/pkg/server/server.go
index 3f1a2b4..9c8d7e6 100644
--- a/pkg/server/server.go
+++ b/pkg/server/server.go
@@ -10,7 +10,9 @@ func New() *Server {
 	return &Server{
-		timeout: 30,
+		timeout: 60,
+		retries: 3,
 	}
 }
diff --git a/pkg/server/handler.go b/pkg/server/handler.go
new file mode 100644
index 0000000..b2c3d4e
--- /dev/null
+++ b/pkg/server/handler.go
@@ -0,0 +1,3 @@
+package server
+
+type Handler struct{}
diff --git a/docs/old.md b/docs/old.md
deleted file mode 100644
index a1b2c3d..0000000
--- a/docs/old.md
+++ /dev/null
@@ -1,2 +0,0 @@
-# Old
-gone
diff --git a/cmd/tool/main.go b/cmd/tool/run.go
similarity index 92%
rename from cmd/tool/main.go
rename to cmd/tool/run.go
index 5e6f7a8..8a7f6e5 100644
--- a/cmd/tool/main.go
+++ b/cmd/tool/run.go
@@ -1,4 +1,4 @@
-package main
+package run
diff --git a/assets/logo.png b/assets/logo.png
index 1234567..89abcde 100644
Binary files a/assets/logo.png and b/assets/logo.png differ
`

func TestSplitSegmentOrderAndExactness(t *testing.T) {
	segments := Split(sampleDiff)

	if len(segments) != 5 {
		t.Fatalf("Split() returned %d segments, want 5", len(segments))
	}

	wantPaths := []string{
		"pkg/server/server.go",
		"pkg/server/handler.go",
		"docs/old.md",
		"cmd/tool/run.go",
		"assets/logo.png",
	}
	for i, want := range wantPaths {
		if got := segments[i].Path(); got != want {
			t.Errorf("segment %d path = %q, want %q", i, got, want)
		}
	}

	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Raw)
	}
	if b.String() != sampleDiff {
		t.Error("concatenated segments do not reproduce the input diff")
	}
}

func TestSplitChangeKinds(t *testing.T) {
	segments := Split(sampleDiff)

	wantKinds := []ChangeKind{KindModified, KindAdded, KindDeleted, KindRenamed, KindBinary}
	for i, want := range wantKinds {
		if segments[i].Kind != want {
			t.Errorf("segment %d kind = %q, want %q", i, segments[i].Kind, want)
		}
	}
}

func TestSplitRenamePaths(t *testing.T) {
	segments := Split(sampleDiff)

	renamed := segments[3]
	if renamed.OldPath != "cmd/tool/main.go" {
		t.Errorf("OldPath = %q, want %q", renamed.OldPath, "cmd/tool/main.go")
	}
	if renamed.NewPath != "cmd/tool/run.go" {
		t.Errorf("NewPath = %q, want %q", renamed.NewPath, "cmd/tool/run.go")
	}
}

func TestSplitAddedAndDeletedPaths(t *testing.T) {
	segments := Split(sampleDiff)

	added := segments[1]
	if added.OldPath != "" {
		t.Errorf("added file OldPath = %q, want empty", added.OldPath)
	}
	if added.NewPath != "pkg/server/handler.go" {
		t.Errorf("added file NewPath = %q, want %q", added.NewPath, "pkg/server/handler.go")
	}

	deleted := segments[2]
	if deleted.NewPath != "" {
		t.Errorf("deleted file NewPath = %q, want empty", deleted.NewPath)
	}
	if deleted.OldPath != "docs/old.md" {
		t.Errorf("deleted file OldPath = %q, want %q", deleted.OldPath, "docs/old.md")
	}
}

func TestSplitBinarySegmentHasNoHunks(t *testing.T) {
	segments := Split(sampleDiff)

	binary := segments[4]
	if binary.Kind != KindBinary {
		t.Fatalf("kind = %q, want %q", binary.Kind, KindBinary)
	}
	if strings.Contains(binary.Raw, "@@") {
		t.Error("binary segment should carry no hunk body")
	}
}

func TestSplitNoBoundariesFallsBackToSingleSegment(t *testing.T) {
	text := "not a git diff at all\njust some text\n"
	segments := Split(text)

	if len(segments) != 1 {
		t.Fatalf("Split() returned %d segments, want 1", len(segments))
	}
	if segments[0].Raw != text {
		t.Error("fallback segment must hold the whole document")
	}
	if segments[0].Path() != "" {
		t.Errorf("fallback segment path = %q, want empty", segments[0].Path())
	}
}

func TestSplitEmptyInput(t *testing.T) {
	if segments := Split(""); segments != nil {
		t.Errorf("Split(\"\") = %v, want nil", segments)
	}
}

func TestSplitPreludeStaysWithFirstSegment(t *testing.T) {
	text := "warning: CRLF will be replaced\n" + sampleDiff
	segments := Split(text)

	if len(segments) != 5 {
		t.Fatalf("Split() returned %d segments, want 5", len(segments))
	}
	if !strings.HasPrefix(segments[0].Raw, "warning:") {
		t.Error("prelude must stay attached to the first segment")
	}
	if got := segments[0].Path(); got != "pkg/server/server.go" {
		t.Errorf("first segment path = %q, want %q", got, "pkg/server/server.go")
	}

	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Raw)
	}
	if b.String() != text {
		t.Error("concatenated segments do not reproduce the input diff")
	}
}

func TestFilesDistinctAndOrdered(t *testing.T) {
	segments := Split(sampleDiff)
	chunks := Assemble(segments, 1<<20)

	files := Files(chunks)
	want := []string{
		"pkg/server/server.go",
		"pkg/server/handler.go",
		"docs/old.md",
		"cmd/tool/run.go",
		"assets/logo.png",
	}
	if len(files) != len(want) {
		t.Fatalf("Files() returned %d paths, want %d", len(files), len(want))
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}
