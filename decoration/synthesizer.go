package decoration

import (
	"github.com/dshills/inlinediff/highlight"
	"github.com/dshills/inlinediff/mapping"
)

// Synthesizer turns a rendering state snapshot into the decoration lists for
// both buffers. Synthesize is a pure function of the state, the original
// text in replaced regions, and whatever tokens are currently available; it
// regenerates the full lists on every call.
type Synthesizer struct {
	// original reads literal text from the original buffer.
	original TextSource

	// tokens styles injected insertion previews. May be nil.
	tokens TokenSource

	// tag is attached to every injected decoration for click attribution.
	tag *ClickTag

	// showEmpty enables the visible empty-change indicator.
	showEmpty bool
}

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithTokenSource supplies token styling for injected text.
func WithTokenSource(tokens TokenSource) SynthesizerOption {
	return func(s *Synthesizer) {
		s.tokens = tokens
	}
}

// WithClickTag attaches an existing tag instead of a fresh one.
func WithClickTag(tag *ClickTag) SynthesizerOption {
	return func(s *Synthesizer) {
		if tag != nil {
			s.tag = tag
		}
	}
}

// WithShowEmpty toggles the empty-change indicator.
func WithShowEmpty(show bool) SynthesizerOption {
	return func(s *Synthesizer) {
		s.showEmpty = show
	}
}

// NewSynthesizer creates a synthesizer reading original-buffer text from the
// given source.
func NewSynthesizer(original TextSource, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		original:  original,
		tag:       NewClickTag(),
		showEmpty: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tag returns the click-attribution tag attached to injected decorations.
func (s *Synthesizer) Tag() *ClickTag {
	return s.tag
}

// Synthesize produces the ordered decoration lists for the given state.
// A nil state yields nil; the caller treats that as "no decorations".
func (s *Synthesizer) Synthesize(st *State) *Set {
	if st == nil {
		return nil
	}

	set := &Set{}
	for _, m := range st.Diff {
		inline := (st.Mode == ModeMixedLines || st.Mode == ModeInsertionInline) &&
			CanRenderInline(m)

		if st.Mode != ModeSideBySide {
			if !m.Original.IsEmpty() {
				set.Original = append(set.Original, Decoration{
					Range: m.Original.ToRange(),
					Kind:  KindLineDeleteBackground,
				})
			}
			if !m.Modified.IsEmpty() {
				set.Modified = append(set.Modified, Decoration{
					Range: m.Modified.ToRange(),
					Kind:  KindLineInsertBackground,
				})
			}
		}

		// A hunk with one side empty is a pure insertion or deletion;
		// inner changes do not apply.
		if m.Modified.IsEmpty() {
			set.Original = append(set.Original, Decoration{
				Range: m.Original.ToRange(),
				Kind:  KindWholeLineDelete,
			})
			continue
		}
		if m.Original.IsEmpty() {
			set.Modified = append(set.Modified, Decoration{
				Range: m.Modified.ToRange(),
				Kind:  KindWholeLineInsert,
			})
			continue
		}

		for _, i := range m.InnerChanges {
			if m.Original.Contains(i.Original.Start.Line) {
				set.Original = append(set.Original, s.originalChange(st, i, inline))
			}
			if m.Modified.Contains(i.Modified.Start.Line) {
				set.Modified = append(set.Modified, s.modifiedChange(st, i, inline))
			}
			if inline {
				set.Original = append(set.Original, s.injected(st, i)...)
			}
		}
	}
	return set
}

// originalChange builds the strike-through decoration for one inner change.
func (s *Synthesizer) originalChange(st *State, i mapping.RangeMapping, inline bool) Decoration {
	flags := FlagNone
	if i.Original.IsSingleLine() && st.Mode == ModeInsertionInline {
		flags = flags.With(FlagSingleLineInline)
	}
	if i.Original.IsEmpty() {
		flags = flags.With(FlagEmpty)
	}

	empty := i.Original.IsEmpty() ||
		(st.Mode == ModeDeletion && s.original.TextInRange(i.Original) == "\n")
	if empty && s.showEmpty && !inline {
		flags = flags.With(FlagRangeEmpty)
	}

	return Decoration{Range: i.Original, Kind: KindCharDelete, Flags: flags}
}

// modifiedChange builds the insert highlight for one inner change.
func (s *Synthesizer) modifiedChange(st *State, i mapping.RangeMapping, inline bool) Decoration {
	flags := FlagNone
	if i.Modified.IsEmpty() && s.showEmpty && !inline {
		flags = flags.With(FlagEmpty)
	}
	return Decoration{Range: i.Modified, Kind: KindCharInsert, Flags: flags}
}

// injected builds the insertion-preview decorations for one inner change,
// anchored at the end of the change's original range.
func (s *Synthesizer) injected(st *State, i mapping.RangeMapping) []Decoration {
	text := st.ModifiedText.TextInRange(i.Modified)
	anchor := i.Original.CollapseToEnd()

	var decs []Decoration
	for _, seg := range SplitInserted(text, i.Modified) {
		flags := seg.Flags
		if i.Modified.IsSingleLine() && st.Mode == ModeInsertionInline {
			flags = flags.With(FlagSingleLineInline)
		}

		var spans []highlight.StyleSpan
		if s.tokens != nil {
			spans = s.tokens.StyleSpansFor(i.Modified.Start.Line, seg.Offsets)
		}

		decs = append(decs, Decoration{
			Range: anchor,
			Kind:  KindCharInsert,
			Flags: flags,
			Injected: &InjectedText{
				Text:  seg.Text,
				Spans: spans,
				Tag:   s.tag,
			},
		})
	}
	return decs
}
