package mapping

import "fmt"

// Position represents a character position in a buffer.
// Lines and columns are 1-based.
type Position struct {
	Line int
	Col  int
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Compare returns -1, 0, or 1 if p is before, equal to, or after other.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Col != other.Col {
		if p.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Range represents a character span in a buffer.
// The start is inclusive and the end is exclusive; columns are 1-based.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from start and end line/column pairs.
func NewRange(startLine, startCol, endLine, endCol int) Range {
	return Range{
		Start: Position{Line: startLine, Col: startCol},
		End:   Position{Line: endLine, Col: endCol},
	}
}

// String returns a string representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start, r.End)
}

// IsEmpty returns true if the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsSingleLine returns true if the range starts and ends on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// CollapseToEnd returns an empty range positioned at the end of r.
func (r Range) CollapseToEnd() Range {
	return Range{Start: r.End, End: r.End}
}

// ContainsPosition returns true if the position falls within the range.
func (r Range) ContainsPosition(p Position) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}

// OffsetRange represents a 0-based half-open span of offsets within a line.
type OffsetRange struct {
	Start int
	End   int
}

// NewOffsetRange creates an offset range.
func NewOffsetRange(start, end int) OffsetRange {
	return OffsetRange{Start: start, End: end}
}

// String returns a string representation of the offset range.
func (o OffsetRange) String() string {
	return fmt.Sprintf("[%d, %d)", o.Start, o.End)
}

// Len returns the number of offsets covered.
func (o OffsetRange) Len() int {
	return o.End - o.Start
}

// IsEmpty returns true if the range covers no offsets.
func (o OffsetRange) IsEmpty() bool {
	return o.End <= o.Start
}

// Contains returns true if the offset falls within the range.
func (o OffsetRange) Contains(offset int) bool {
	return offset >= o.Start && offset < o.End
}

// Intersect returns the overlapping portion of two offset ranges.
// The result is empty if the ranges do not overlap.
func (o OffsetRange) Intersect(other OffsetRange) OffsetRange {
	start := o.Start
	if other.Start > start {
		start = other.Start
	}
	end := o.End
	if other.End < end {
		end = other.End
	}
	if end < start {
		end = start
	}
	return OffsetRange{Start: start, End: end}
}
