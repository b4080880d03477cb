package decoration

import (
	"github.com/dshills/inlinediff/mapping"
)

// InsertedSegment is one styled sub-span of an inserted text run.
type InsertedSegment struct {
	// Text is the literal segment text.
	Text string

	// Flags carry the boundary markers for corner styling.
	Flags Flag

	// Offsets is the segment's 0-based column range on the modified line.
	Offsets mapping.OffsetRange
}

// SplitInserted splits inserted text into boundary-aware segments so a host
// renderer can style the edges of long injected spans differently from the
// interior. Text of three runes or fewer becomes a single segment flagged as
// both boundaries; longer text becomes three segments whose offset ranges
// partition the modified column span: the first rune, the interior, and the
// last rune.
func SplitInserted(text string, modRange mapping.Range) []InsertedSegment {
	full := mapping.NewOffsetRange(modRange.Start.Col-1, modRange.End.Col-1)
	runes := []rune(text)

	if len(runes) <= 3 {
		return []InsertedSegment{
			{Text: text, Flags: FlagBoundaryStart | FlagBoundaryEnd, Offsets: full},
		}
	}

	return []InsertedSegment{
		{
			Text:    string(runes[0]),
			Flags:   FlagBoundaryStart,
			Offsets: mapping.OffsetRange{Start: full.Start, End: full.Start + 1},
		},
		{
			Text:    string(runes[1 : len(runes)-1]),
			Flags:   FlagNone,
			Offsets: mapping.OffsetRange{Start: full.Start + 1, End: full.End - 1},
		},
		{
			Text:    string(runes[len(runes)-1]),
			Flags:   FlagBoundaryEnd,
			Offsets: mapping.OffsetRange{Start: full.End - 1, End: full.End},
		},
	}
}
