// Package document provides the text document model consumed by the inline
// diff overlay: line access, literal text lookup in a range with selectable
// line-ending normalization, and change notification keyed by a revision
// counter.
package document

import (
	"strings"
	"sync"

	"github.com/dshills/inlinediff/mapping"
	"github.com/dshills/inlinediff/observe"
)

// EOL selects the line-ending normalization applied to extracted text.
type EOL uint8

const (
	// EOLRaw returns text exactly as stored.
	EOLRaw EOL = iota

	// EOLLF normalizes line endings to "\n".
	EOLLF

	// EOLCRLF normalizes line endings to "\r\n".
	EOLCRLF
)

// String returns the name of the normalization mode.
func (e EOL) String() string {
	switch e {
	case EOLRaw:
		return "raw"
	case EOLLF:
		return "lf"
	case EOLCRLF:
		return "crlf"
	default:
		return "unknown"
	}
}

// Change describes a document mutation.
type Change struct {
	// Revision is the document revision after the change.
	Revision uint64
}

// Document is a line-indexed text store. Lines and columns are 1-based;
// columns count runes. All methods are safe for concurrent use.
type Document struct {
	mu         sync.RWMutex
	text       string
	lineStarts []int
	revision   uint64
	changed    *observe.Emitter[Change]
}

// New creates an empty document.
func New() *Document {
	return NewFromString("")
}

// NewFromString creates a document holding the given text.
func NewFromString(text string) *Document {
	d := &Document{changed: observe.NewEmitter[Change]()}
	d.setTextLocked(text)
	return d
}

// Text returns the full document text.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// LineCount returns the number of lines in the document.
// An empty document has one (empty) line.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lineStarts)
}

// Line returns the content of the 1-based line n, without its line ending.
// Out-of-range lines return the empty string.
func (d *Document) Line(n int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return trimLineEnding(d.lineLocked(n))
}

// LineLen returns the rune length of line n, without its line ending.
func (d *Document) LineLen(n int) int {
	return len([]rune(d.Line(n)))
}

// TextInRange returns the literal text covered by the range, normalized to
// the requested line-ending convention. Positions outside the document are
// clamped; an inverted range yields the empty string.
func (d *Document) TextInRange(r mapping.Range, eol EOL) string {
	d.mu.RLock()
	start := d.offsetLocked(r.Start)
	end := d.offsetLocked(r.End)
	var s string
	if end > start {
		s = d.text[start:end]
	}
	d.mu.RUnlock()

	switch eol {
	case EOLLF:
		return strings.ReplaceAll(s, "\r\n", "\n")
	case EOLCRLF:
		return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
	default:
		return s
	}
}

// Revision returns the current document revision.
func (d *Document) Revision() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.revision
}

// Changed returns the emitter fired after every mutation.
func (d *Document) Changed() *observe.Emitter[Change] {
	return d.changed
}

// SetText replaces the full document text.
func (d *Document) SetText(text string) {
	d.mu.Lock()
	d.setTextLocked(text)
	d.revision++
	rev := d.revision
	d.mu.Unlock()

	d.changed.Fire(Change{Revision: rev})
}

// Replace splices text into the given range.
func (d *Document) Replace(r mapping.Range, text string) {
	d.mu.Lock()
	start := d.offsetLocked(r.Start)
	end := d.offsetLocked(r.End)
	if end < start {
		end = start
	}
	d.setTextLocked(d.text[:start] + text + d.text[end:])
	d.revision++
	rev := d.revision
	d.mu.Unlock()

	d.changed.Fire(Change{Revision: rev})
}

// setTextLocked stores text and rebuilds the line index.
func (d *Document) setTextLocked(text string) {
	d.text = text
	d.lineStarts = d.lineStarts[:0]
	d.lineStarts = append(d.lineStarts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			d.lineStarts = append(d.lineStarts, i+1)
		}
	}
}

// lineLocked returns the raw content of line n including its line ending.
func (d *Document) lineLocked(n int) string {
	if n < 1 || n > len(d.lineStarts) {
		return ""
	}
	start := d.lineStarts[n-1]
	if n == len(d.lineStarts) {
		return d.text[start:]
	}
	return d.text[start:d.lineStarts[n]]
}

// offsetLocked converts a position to a byte offset, clamping to the
// document bounds. Columns count runes.
func (d *Document) offsetLocked(p mapping.Position) int {
	if p.Line < 1 {
		return 0
	}
	if p.Line > len(d.lineStarts) {
		return len(d.text)
	}
	line := d.lineLocked(p.Line)
	start := d.lineStarts[p.Line-1]

	col := 1
	for i := range line {
		if col >= p.Col {
			return start + i
		}
		col++
	}
	return start + len(line)
}

// trimLineEnding removes a trailing line ending from a line if present.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
