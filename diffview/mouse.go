package diffview

import (
	"github.com/dshills/inlinediff/decoration"
	"github.com/dshills/inlinediff/mapping"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// TargetType classifies what part of the editor a mouse event hit.
type TargetType uint8

const (
	// TargetNone indicates the event hit nothing attributable.
	TargetNone TargetType = iota
	// TargetText indicates the event hit rendered text content.
	TargetText
	// TargetZone indicates the event hit a view zone.
	TargetZone
	// TargetMargin indicates the event hit the line-number margin.
	TargetMargin
)

// String returns a string representation of the target type.
func (t TargetType) String() string {
	switch t {
	case TargetText:
		return "text"
	case TargetZone:
		return "zone"
	case TargetMargin:
		return "margin"
	default:
		return "none"
	}
}

// Target is the editor's hit-test result for a mouse position.
type Target struct {
	// Type classifies the hit.
	Type TargetType

	// Position is the buffer position under the cursor.
	Position mapping.Position

	// Injected is the injected-text descriptor under the cursor, if any.
	Injected *decoration.InjectedText
}

// MouseEvent is a raw mouse event together with its hit-test result.
type MouseEvent struct {
	// X and Y are screen coordinates.
	X, Y int

	// Button is the mouse button involved.
	Button Button

	// Target is the hit-test result at the event position.
	Target Target
}
