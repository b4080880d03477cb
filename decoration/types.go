// Package decoration synthesizes text decorations for the inline diff
// overlay: given a rendering state snapshot it produces the ordered
// decoration lists for the original and modified buffers, including injected
// insertion previews with token-based styling.
package decoration

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/inlinediff/highlight"
	"github.com/dshills/inlinediff/mapping"
)

// Mode selects how changed regions are rendered.
type Mode uint8

const (
	// ModeMixedLines shows deletions as strike-through and insertions as
	// injected text on the same lines.
	ModeMixedLines Mode = iota

	// ModeInsertionInline is like ModeMixedLines with insertion-oriented
	// single-line styling.
	ModeInsertionInline

	// ModeInterleavedLines renders whole replaced lines as view zones
	// between the original lines.
	ModeInterleavedLines

	// ModeSideBySide renders the two buffers in separate panes; no
	// whole-line backgrounds are emitted.
	ModeSideBySide

	// ModeDeletion renders a deletion-focused view.
	ModeDeletion
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMixedLines:
		return "mixed-lines"
	case ModeInsertionInline:
		return "insertion-inline"
	case ModeInterleavedLines:
		return "interleaved-lines"
	case ModeSideBySide:
		return "side-by-side"
	case ModeDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Kind identifies the visual role of a decoration.
type Kind uint8

const (
	// KindLineDeleteBackground is the whole-line background behind
	// removed lines.
	KindLineDeleteBackground Kind = iota

	// KindLineInsertBackground is the whole-line background behind
	// added lines.
	KindLineInsertBackground

	// KindWholeLineDelete marks a pure deletion hunk.
	KindWholeLineDelete

	// KindWholeLineInsert marks a pure insertion hunk.
	KindWholeLineInsert

	// KindCharDelete is the character-level strike-through on removed text.
	KindCharDelete

	// KindCharInsert is the character-level highlight on inserted text,
	// or an injected insertion preview when Injected is set.
	KindCharInsert
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLineDeleteBackground:
		return "line-delete-background"
	case KindLineInsertBackground:
		return "line-insert-background"
	case KindWholeLineDelete:
		return "whole-line-delete"
	case KindWholeLineInsert:
		return "whole-line-insert"
	case KindCharDelete:
		return "char-delete"
	case KindCharInsert:
		return "char-insert"
	default:
		return "unknown"
	}
}

// Flag holds the boolean style modifiers of a decoration.
type Flag uint8

// Style modifier flags.
const (
	FlagNone Flag = 0

	// FlagSingleLineInline marks single-line ranges rendered in
	// insertion-inline mode.
	FlagSingleLineInline Flag = 1 << 0

	// FlagEmpty marks decorations whose range covers no characters.
	FlagEmpty Flag = 1 << 1

	// FlagRangeEmpty marks empty ranges that should render a visible
	// empty-change indicator.
	FlagRangeEmpty Flag = 1 << 2

	// FlagBoundaryStart marks the leading segment of injected text.
	FlagBoundaryStart Flag = 1 << 3

	// FlagBoundaryEnd marks the trailing segment of injected text.
	FlagBoundaryEnd Flag = 1 << 4
)

// Has returns true if the flag set contains the given flag.
func (f Flag) Has(flag Flag) bool {
	return f&flag != 0
}

// With returns a new flag set with the given flag added.
func (f Flag) With(flag Flag) Flag {
	return f | flag
}

// String returns a "|"-joined list of the set flags.
func (f Flag) String() string {
	if f == FlagNone {
		return "none"
	}
	var names []string
	if f.Has(FlagSingleLineInline) {
		names = append(names, "single-line-inline")
	}
	if f.Has(FlagEmpty) {
		names = append(names, "empty")
	}
	if f.Has(FlagRangeEmpty) {
		names = append(names, "diff-range-empty")
	}
	if f.Has(FlagBoundaryStart) {
		names = append(names, "start")
	}
	if f.Has(FlagBoundaryEnd) {
		names = append(names, "end")
	}
	return strings.Join(names, "|")
}

// ClickTag marks injected content produced by one overlay instance so that
// mouse hit-tests can attribute clicks to it. Tags compare by pointer
// identity only; the embedded id exists for diagnostics.
type ClickTag struct {
	id string
}

// NewClickTag creates a fresh tag.
func NewClickTag() *ClickTag {
	return &ClickTag{id: uuid.NewString()}
}

// String returns a diagnostic representation of the tag.
func (t *ClickTag) String() string {
	return "click-tag(" + t.id + ")"
}

// InjectedText describes rendered text that does not exist in the underlying
// document, used to preview insertions on the original buffer.
type InjectedText struct {
	// Text is the literal text to render.
	Text string

	// Spans carry per-substring token styling, in line-local offsets of the
	// modified line the text was taken from.
	Spans []highlight.StyleSpan

	// Tag attributes later mouse hits on this content.
	Tag *ClickTag
}

// Equal returns true if two injected-content descriptors are equal.
// Tags compare by identity.
func (it *InjectedText) Equal(other *InjectedText) bool {
	if it == nil || other == nil {
		return it == other
	}
	if it.Text != other.Text || it.Tag != other.Tag {
		return false
	}
	if len(it.Spans) != len(other.Spans) {
		return false
	}
	for i := range it.Spans {
		if it.Spans[i] != other.Spans[i] {
			return false
		}
	}
	return true
}

// Decoration is one rendering request for a buffer range. Decorations are
// regenerated from scratch on every recomputation and consumed immediately
// by the editor collaborator.
type Decoration struct {
	// Range is the decorated span; whole-line kinds use line ranges
	// anchored at column 1.
	Range mapping.Range

	// Kind is the visual role.
	Kind Kind

	// Flags are the boolean style modifiers.
	Flags Flag

	// Injected carries an insertion preview, if any.
	Injected *InjectedText
}

// Equal returns true if two decorations are element-wise equal.
func (d Decoration) Equal(other Decoration) bool {
	return d.Range == other.Range &&
		d.Kind == other.Kind &&
		d.Flags == other.Flags &&
		d.Injected.Equal(other.Injected)
}

// Set holds the synthesized decoration lists for both buffers.
type Set struct {
	Original []Decoration
	Modified []Decoration
}

// Equal returns true if two sets are element-wise equal.
func (s *Set) Equal(other *Set) bool {
	if s == nil || other == nil {
		return s == other
	}
	return decorationsEqual(s.Original, other.Original) &&
		decorationsEqual(s.Modified, other.Modified)
}

func decorationsEqual(a, b []Decoration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// TextSource reads literal text for a range of a buffer.
type TextSource interface {
	// TextInRange returns the text covered by the range, with line endings
	// normalized to "\n".
	TextInRange(r mapping.Range) string
}

// TokenSource provides token-based styling for lines of the modified buffer.
type TokenSource interface {
	// StyleSpansFor returns style spans for a line-local offset range.
	StyleSpansFor(line int, offsets mapping.OffsetRange) []highlight.StyleSpan

	// Generation is the tokenization-completion counter.
	Generation() uint64
}

// State is the rendering state snapshot consumed by the synthesizers.
type State struct {
	// Diff is the ordered hunk list.
	Diff []mapping.LineRangeMapping

	// ModifiedText reads literal text from the modified buffer.
	ModifiedText TextSource

	// Mode selects the rendering mode.
	Mode Mode
}
