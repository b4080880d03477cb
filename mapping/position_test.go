package mapping

import "testing"

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", Position{1, 1}, Position{1, 1}, 0},
		{"earlier line", Position{1, 5}, Position{2, 1}, -1},
		{"later line", Position{3, 1}, Position{2, 9}, 1},
		{"same line earlier col", Position{2, 3}, Position{2, 7}, -1},
		{"same line later col", Position{2, 7}, Position{2, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPositionBeforeAfter(t *testing.T) {
	a := Position{Line: 1, Col: 5}
	b := Position{Line: 2, Col: 1}

	if !a.Before(b) {
		t.Error("Before() = false, want true")
	}
	if a.After(b) {
		t.Error("After() = true, want false")
	}
	if !b.After(a) {
		t.Error("After() = false, want true")
	}
}

func TestRangeIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want bool
	}{
		{"empty", NewRange(2, 5, 2, 5), true},
		{"single char", NewRange(2, 5, 2, 6), false},
		{"multi line", NewRange(1, 1, 3, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRangeIsSingleLine(t *testing.T) {
	if !NewRange(2, 1, 2, 9).IsSingleLine() {
		t.Error("IsSingleLine() = false for same-line range, want true")
	}
	if NewRange(2, 1, 3, 1).IsSingleLine() {
		t.Error("IsSingleLine() = true for multi-line range, want false")
	}
}

func TestRangeCollapseToEnd(t *testing.T) {
	r := NewRange(2, 3, 4, 7)
	got := r.CollapseToEnd()

	if !got.IsEmpty() {
		t.Errorf("CollapseToEnd() = %v, want empty range", got)
	}
	if got.Start != r.End {
		t.Errorf("CollapseToEnd().Start = %v, want %v", got.Start, r.End)
	}
}

func TestRangeContainsPosition(t *testing.T) {
	r := NewRange(2, 3, 2, 8)

	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"at start", Position{2, 3}, true},
		{"inside", Position{2, 5}, true},
		{"at end", Position{2, 8}, false},
		{"before", Position{2, 2}, false},
		{"other line", Position{3, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPosition(tt.p); got != tt.want {
				t.Errorf("ContainsPosition(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestOffsetRangeIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b OffsetRange
		want OffsetRange
	}{
		{"overlap", NewOffsetRange(0, 5), NewOffsetRange(3, 8), NewOffsetRange(3, 5)},
		{"contained", NewOffsetRange(0, 10), NewOffsetRange(3, 5), NewOffsetRange(3, 5)},
		{"disjoint", NewOffsetRange(0, 3), NewOffsetRange(5, 8), NewOffsetRange(5, 5)},
		{"touching", NewOffsetRange(0, 3), NewOffsetRange(3, 6), NewOffsetRange(3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
			if tt.name == "disjoint" || tt.name == "touching" {
				if !got.IsEmpty() {
					t.Errorf("Intersect() = %v, want empty", got)
				}
			}
		})
	}
}

func TestLineRange(t *testing.T) {
	lr := NewLineRange(3, 6)

	if got := lr.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if lr.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !lr.Contains(3) || !lr.Contains(5) {
		t.Error("Contains() = false for in-range line, want true")
	}
	if lr.Contains(6) {
		t.Error("Contains(6) = true for exclusive end, want false")
	}

	empty := NewLineRange(4, 4)
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false for zero-length range, want true")
	}
	if got := empty.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestLineRangeToRange(t *testing.T) {
	got := NewLineRange(3, 5).ToRange()
	want := NewRange(3, 1, 5, 1)
	if got != want {
		t.Errorf("ToRange() = %v, want %v", got, want)
	}
}

func TestLineRangeMappingShape(t *testing.T) {
	ins := LineRangeMapping{Original: NewLineRange(2, 2), Modified: NewLineRange(2, 4)}
	if !ins.IsInsertion() || ins.IsDeletion() {
		t.Errorf("insertion hunk: IsInsertion() = %v, IsDeletion() = %v", ins.IsInsertion(), ins.IsDeletion())
	}

	del := LineRangeMapping{Original: NewLineRange(2, 4), Modified: NewLineRange(2, 2)}
	if del.IsInsertion() || !del.IsDeletion() {
		t.Errorf("deletion hunk: IsInsertion() = %v, IsDeletion() = %v", del.IsInsertion(), del.IsDeletion())
	}

	rep := LineRangeMapping{Original: NewLineRange(2, 3), Modified: NewLineRange(2, 3)}
	if rep.IsInsertion() || rep.IsDeletion() {
		t.Error("replace hunk classified as pure insertion or deletion")
	}
}
