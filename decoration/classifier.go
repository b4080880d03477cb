package decoration

import (
	"github.com/dshills/inlinediff/mapping"
)

// CanRenderInline reports whether a hunk is safe for character-level inline
// rendering. A hunk qualifies only when it carries inner changes and every
// inner change is confined to a single line on both sides; multi-line inner
// changes fall back to block-level rendering.
func CanRenderInline(m mapping.LineRangeMapping) bool {
	if len(m.InnerChanges) == 0 {
		return false
	}
	for _, i := range m.InnerChanges {
		if !i.Original.IsSingleLine() || !i.Modified.IsSingleLine() {
			return false
		}
	}
	return true
}
