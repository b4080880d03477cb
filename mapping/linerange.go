// Package mapping defines the diff data model consumed by the inline diff
// overlay: line ranges, character ranges, and the hunk type pairing an
// original span with a modified span plus its character-level inner changes.
package mapping

import "fmt"

// LineRange represents a contiguous span of lines.
// The start is inclusive and the end is exclusive; lines are 1-based.
type LineRange struct {
	Start        int
	EndExclusive int
}

// NewLineRange creates a line range.
func NewLineRange(start, endExclusive int) LineRange {
	return LineRange{Start: start, EndExclusive: endExclusive}
}

// String returns a string representation of the line range.
func (lr LineRange) String() string {
	return fmt.Sprintf("[%d, %d)", lr.Start, lr.EndExclusive)
}

// Len returns the number of lines covered.
func (lr LineRange) Len() int {
	if lr.EndExclusive <= lr.Start {
		return 0
	}
	return lr.EndExclusive - lr.Start
}

// IsEmpty returns true if the range covers no lines.
func (lr LineRange) IsEmpty() bool {
	return lr.EndExclusive <= lr.Start
}

// Contains returns true if the line falls within the range.
func (lr LineRange) Contains(line int) bool {
	return line >= lr.Start && line < lr.EndExclusive
}

// ToRange converts the line range to a character range covering the
// listed lines whole, anchored at column 1 on both ends.
func (lr LineRange) ToRange() Range {
	return Range{
		Start: Position{Line: lr.Start, Col: 1},
		End:   Position{Line: lr.EndExclusive, Col: 1},
	}
}

// RangeMapping pairs an original character range with its modified
// counterpart. It represents a single inner change within a hunk.
type RangeMapping struct {
	Original Range
	Modified Range
}

// String returns a string representation of the range mapping.
func (rm RangeMapping) String() string {
	return fmt.Sprintf("%s -> %s", rm.Original, rm.Modified)
}

// LineRangeMapping is one contiguous diff region (a hunk) pairing an
// original line range with a modified line range. InnerChanges holds the
// character-level edits within the hunk, ordered by position and
// non-overlapping on each side. A nil InnerChanges means no character-level
// detail is available for the hunk.
type LineRangeMapping struct {
	Original     LineRange
	Modified     LineRange
	InnerChanges []RangeMapping
}

// String returns a string representation of the hunk.
func (m LineRangeMapping) String() string {
	return fmt.Sprintf("%s -> %s (%d inner)", m.Original, m.Modified, len(m.InnerChanges))
}

// IsInsertion returns true if the hunk adds lines without removing any.
func (m LineRangeMapping) IsInsertion() bool {
	return m.Original.IsEmpty() && !m.Modified.IsEmpty()
}

// IsDeletion returns true if the hunk removes lines without adding any.
func (m LineRangeMapping) IsDeletion() bool {
	return !m.Original.IsEmpty() && m.Modified.IsEmpty()
}
