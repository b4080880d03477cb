package diffview

import (
	"github.com/dshills/inlinediff/decoration"
	"github.com/dshills/inlinediff/document"
	"github.com/dshills/inlinediff/observe"
	"github.com/dshills/inlinediff/viewzone"
)

// Options carries the editor layout configuration the view reads.
type Options struct {
	// LineHeight is the rendered line height in pixels.
	LineHeight int

	// CellWidth is the rendered cell width in pixels.
	CellWidth int
}

// Editor is the host-editor surface the view consumes. Decoration and
// view-zone sets are replaced wholesale per owner; the editor diffs old
// against new when applying.
type Editor interface {
	// Options returns the current layout configuration.
	Options() Options

	// Document returns the editor's document model.
	Document() *document.Document

	// SetDecorations replaces the decoration set registered under ownerID.
	SetDecorations(ownerID string, decs []decoration.Decoration)

	// SetViewZones replaces the view-zone set registered under ownerID.
	SetViewZones(ownerID string, zones []viewzone.Zone)

	// OnMouseUp subscribes to mouse-up events with their hit-test results.
	OnMouseUp(fn func(MouseEvent)) *observe.Subscription

	// OnMouseMove subscribes to mouse-move events with their hit-test results.
	OnMouseMove(fn func(MouseEvent)) *observe.Subscription
}
