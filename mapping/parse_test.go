package mapping

import "testing"

func TestParseUnifiedReplace(t *testing.T) {
	raw := []byte("@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n")

	got, err := ParseUnified(raw)
	if err != nil {
		t.Fatalf("ParseUnified() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ParseUnified() returned %d hunks, want 1", len(got))
	}
	m := got[0]
	if m.Original != NewLineRange(2, 3) {
		t.Errorf("Original = %v, want [2, 3)", m.Original)
	}
	if m.Modified != NewLineRange(2, 3) {
		t.Errorf("Modified = %v, want [2, 3)", m.Modified)
	}
	if m.InnerChanges != nil {
		t.Errorf("InnerChanges = %v, want nil", m.InnerChanges)
	}
}

func TestParseUnifiedInsertion(t *testing.T) {
	raw := []byte("@@ -1,2 +1,3 @@\n a\n+b\n c\n")

	got, err := ParseUnified(raw)
	if err != nil {
		t.Fatalf("ParseUnified() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ParseUnified() returned %d hunks, want 1", len(got))
	}
	m := got[0]
	if m.Original != NewLineRange(2, 2) {
		t.Errorf("Original = %v, want [2, 2)", m.Original)
	}
	if m.Modified != NewLineRange(2, 3) {
		t.Errorf("Modified = %v, want [2, 3)", m.Modified)
	}
	if !m.IsInsertion() {
		t.Error("IsInsertion() = false, want true")
	}
}

func TestParseUnifiedMultipleRuns(t *testing.T) {
	raw := []byte("@@ -1,5 +1,5 @@\n a\n-b\n+B\n c\n-d\n+D\n e\n")

	got, err := ParseUnified(raw)
	if err != nil {
		t.Fatalf("ParseUnified() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ParseUnified() returned %d hunks, want 2", len(got))
	}
	if got[0].Original != NewLineRange(2, 3) || got[0].Modified != NewLineRange(2, 3) {
		t.Errorf("hunk 0 = %v -> %v, want [2, 3) -> [2, 3)", got[0].Original, got[0].Modified)
	}
	if got[1].Original != NewLineRange(4, 5) || got[1].Modified != NewLineRange(4, 5) {
		t.Errorf("hunk 1 = %v -> %v, want [4, 5) -> [4, 5)", got[1].Original, got[1].Modified)
	}
}

func TestParseUnifiedNoNewlineMarker(t *testing.T) {
	raw := []byte("@@ -1,1 +1,1 @@\n-a\n+b\n\\ No newline at end of file\n")

	got, err := ParseUnified(raw)
	if err != nil {
		t.Fatalf("ParseUnified() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ParseUnified() returned %d hunks, want 1", len(got))
	}
}

func TestParseUnifiedInvalid(t *testing.T) {
	if _, err := ParseUnified([]byte("not a diff")); err == nil {
		t.Error("ParseUnified() error = nil, want parse error")
	}
}
