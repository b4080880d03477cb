// Package viewzone synthesizes the synthetic blocks that render whole
// replaced lines between original lines in interleaved-lines mode.
package viewzone

import (
	"fmt"

	"github.com/google/uuid"
)

// Zone is one synthetic block request anchored after an original line.
// Zones are regenerated from scratch on every recomputation and consumed
// immediately by the editor collaborator.
type Zone struct {
	// ID identifies the zone across apply/remove cycles.
	ID string

	// AfterLine is the 1-based original line the zone is rendered after.
	AfterLine int

	// Block is the offscreen-rendered content.
	Block *Block

	// HeightPX is the zone height in pixels.
	HeightPX int

	// MinWidthPX is the minimum width in pixels reported by the renderer.
	MinWidthPX int

	// ShowInHiddenRegions keeps the zone visible when its anchor line is
	// inside a collapsed region.
	ShowInHiddenRegions bool

	// SuppressMouseDown stops default mouse-down handling so clicks do not
	// move the caret into the synthetic block.
	SuppressMouseDown bool
}

// String returns a diagnostic representation of the zone.
func (z *Zone) String() string {
	return fmt.Sprintf("zone(%s after=%d h=%dpx)", z.ID, z.AfterLine, z.HeightPX)
}

// Metrics carries the editor layout configuration the synthesizer needs to
// convert line and cell counts into pixels.
type Metrics struct {
	// LineHeight is the editor line height in pixels.
	LineHeight int

	// CellWidth is the width of one terminal cell in pixels.
	CellWidth int
}

// newZoneID returns a fresh zone identifier.
func newZoneID() string {
	return uuid.NewString()
}
