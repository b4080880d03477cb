package mapping

import "testing"

func TestComputeEqual(t *testing.T) {
	text := "a\nb\nc\n"
	if got := Compute(text, text); len(got) != 0 {
		t.Errorf("Compute(equal texts) = %v, want no hunks", got)
	}
}

func TestComputePureDeletion(t *testing.T) {
	got := Compute("a\nb\nc\n", "a\nc\n")

	if len(got) != 1 {
		t.Fatalf("Compute() returned %d hunks, want 1", len(got))
	}
	m := got[0]
	if m.Original != NewLineRange(2, 3) {
		t.Errorf("Original = %v, want [2, 3)", m.Original)
	}
	if m.Modified != NewLineRange(2, 2) {
		t.Errorf("Modified = %v, want [2, 2)", m.Modified)
	}
	if !m.IsDeletion() {
		t.Error("IsDeletion() = false, want true")
	}
	if len(m.InnerChanges) != 0 {
		t.Errorf("InnerChanges = %v, want none for pure deletion", m.InnerChanges)
	}
}

func TestComputePureInsertion(t *testing.T) {
	got := Compute("a\nc\n", "a\nb\nc\n")

	if len(got) != 1 {
		t.Fatalf("Compute() returned %d hunks, want 1", len(got))
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

func TestComputeSingleLineReplace(t *testing.T) {
	got := Compute("a\nconst x = 1\nc\n", "a\nconst x = 2\nc\n")

	if len(got) != 1 {
		t.Fatalf("Compute() returned %d hunks, want 1", len(got))
	}
	m := got[0]
	if m.Original != NewLineRange(2, 3) || m.Modified != NewLineRange(2, 3) {
		t.Fatalf("hunk = %v -> %v, want [2, 3) -> [2, 3)", m.Original, m.Modified)
	}
	if len(m.InnerChanges) != 1 {
		t.Fatalf("InnerChanges has %d entries, want 1", len(m.InnerChanges))
	}

	i := m.InnerChanges[0]
	want := RangeMapping{
		Original: NewRange(2, 11, 2, 12),
		Modified: NewRange(2, 11, 2, 12),
	}
	if i != want {
		t.Errorf("InnerChanges[0] = %v, want %v", i, want)
	}
	if !i.Original.IsSingleLine() || !i.Modified.IsSingleLine() {
		t.Error("inner change spans multiple lines, want single-line on both sides")
	}
}

func TestComputeUnevenReplace(t *testing.T) {
	got := Compute("a\nb\n", "x\ny\nz\n")

	if len(got) != 1 {
		t.Fatalf("Compute() returned %d hunks, want 1", len(got))
	}
	m := got[0]
	if m.Original != NewLineRange(1, 3) || m.Modified != NewLineRange(1, 4) {
		t.Fatalf("hunk = %v -> %v, want [1, 3) -> [1, 4)", m.Original, m.Modified)
	}

	// Two paired-line changes plus the trailing unpaired-line mapping.
	if len(m.InnerChanges) != 3 {
		t.Fatalf("InnerChanges has %d entries, want 3", len(m.InnerChanges))
	}
	last := m.InnerChanges[2]
	want := RangeMapping{
		Original: NewRange(3, 1, 3, 1),
		Modified: NewRange(3, 1, 4, 1),
	}
	if last != want {
		t.Errorf("trailing inner change = %v, want %v", last, want)
	}
}

func TestComputeMultipleHunks(t *testing.T) {
	got := Compute("a\nb\nc\nd\ne\n", "a\nB\nc\nd\nE\n")

	if len(got) != 2 {
		t.Fatalf("Compute() returned %d hunks, want 2", len(got))
	}
	if got[0].Original != NewLineRange(2, 3) {
		t.Errorf("hunk 0 Original = %v, want [2, 3)", got[0].Original)
	}
	if got[1].Original != NewLineRange(5, 6) {
		t.Errorf("hunk 1 Original = %v, want [5, 6)", got[1].Original)
	}
}
