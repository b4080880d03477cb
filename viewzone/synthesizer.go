package viewzone

import (
	"unicode/utf8"

	"github.com/dshills/inlinediff/decoration"
	"github.com/dshills/inlinediff/mapping"
	"github.com/dshills/inlinediff/style"
)

// LineSource reads line content from the modified buffer by 1-based line
// number, without line endings.
type LineSource interface {
	Line(n int) string
}

// Synthesizer renders one view zone per hunk in interleaved-lines mode.
// Each zone shows the hunk's replaced modified lines as an offscreen block
// anchored after the last original line of the hunk.
type Synthesizer struct {
	// lines reads modified-buffer line content.
	lines LineSource

	// tokens styles the rendered lines. May be nil.
	tokens decoration.TokenSource

	// insert is the highlight overlaid on inner-change spans.
	insert style.Style
}

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithTokenSource supplies token styling for rendered lines.
func WithTokenSource(tokens decoration.TokenSource) SynthesizerOption {
	return func(s *Synthesizer) {
		s.tokens = tokens
	}
}

// WithInsertStyle overrides the inner-change highlight style.
func WithInsertStyle(insert style.Style) SynthesizerOption {
	return func(s *Synthesizer) {
		s.insert = insert
	}
}

// NewSynthesizer creates a synthesizer reading modified-buffer lines from the
// given source.
func NewSynthesizer(lines LineSource, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		lines:  lines,
		insert: style.Default().WithBackground(style.ColorFromRGB(42, 93, 57)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize produces the ordered zone list for the given state. Only
// interleaved-lines mode emits zones; every other mode yields nil.
func (s *Synthesizer) Synthesize(st *decoration.State, metrics Metrics) []Zone {
	if st == nil || st.Mode != decoration.ModeInterleavedLines {
		return nil
	}

	var zones []Zone
	for _, m := range st.Diff {
		block := s.renderHunk(m)
		zones = append(zones, Zone{
			ID:                  newZoneID(),
			AfterLine:           m.Original.EndExclusive - 1,
			Block:               block,
			HeightPX:            block.LineCount() * metrics.LineHeight,
			MinWidthPX:          block.MinWidthCells() * metrics.CellWidth,
			ShowInHiddenRegions: true,
			SuppressMouseDown:   true,
		})
	}
	return zones
}

// renderHunk renders the hunk's modified lines into a block, overlaying the
// inner-change highlight spans in zone-local coordinates.
func (s *Synthesizer) renderHunk(m mapping.LineRangeMapping) *Block {
	block := NewBlock()
	for line := m.Modified.Start; line < m.Modified.EndExclusive; line++ {
		text := s.lines.Line(line)
		row := line - m.Modified.Start
		block.AppendRow(renderRow(text, style.Default(), s.tokenSpans(line, text), s.highlightSpans(m, row)))
	}
	return block
}

// tokenSpans converts the line's style spans into row spans.
func (s *Synthesizer) tokenSpans(line int, text string) []rowSpan {
	if s.tokens == nil {
		return nil
	}
	width := utf8.RuneCountInString(text)
	if width == 0 {
		return nil
	}
	var spans []rowSpan
	for _, sp := range s.tokens.StyleSpansFor(line, mapping.NewOffsetRange(0, width)) {
		spans = append(spans, rowSpan{start: sp.Start, end: sp.End, overlay: sp.Style})
	}
	return spans
}

// highlightSpans returns the inner-change highlights landing on the given
// zone row. The local row of an inner change is its modified start line
// shifted by the hunk's original start line.
func (s *Synthesizer) highlightSpans(m mapping.LineRangeMapping, row int) []rowSpan {
	var spans []rowSpan
	for _, i := range m.InnerChanges {
		if i.Modified.Start.Line-m.Original.Start != row {
			continue
		}
		end := i.Modified.End.Col - 1
		if !i.Modified.IsSingleLine() {
			// Multi-line inner change: highlight to the end of the row.
			end = int(^uint(0) >> 1)
		}
		spans = append(spans, rowSpan{start: i.Modified.Start.Col - 1, end: end, overlay: s.insert})
	}
	return spans
}
