package mapping

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compute diffs original against modified and returns the resulting hunks.
// Hunks are computed at line granularity; replace hunks additionally carry
// character-level inner changes for each paired line.
func Compute(original, modified string) []LineRangeMapping {
	dmp := diffmatchpatch.New()

	// Diff based on lines first.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(original, modified)
	lineDiffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(rOld, rNew, false))

	// Decode rune-strings back to original lines via the lineArray mapping.
	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var mappings []LineRangeMapping
	oldLine, newLine := 1, 1
	var dels, ins []string

	flush := func() {
		if len(dels) == 0 && len(ins) == 0 {
			return
		}
		m := LineRangeMapping{
			Original: NewLineRange(oldLine, oldLine+len(dels)),
			Modified: NewLineRange(newLine, newLine+len(ins)),
		}
		if len(dels) > 0 && len(ins) > 0 {
			m.InnerChanges = innerChanges(dmp, m, dels, ins)
		}
		mappings = append(mappings, m)
		oldLine += len(dels)
		newLine += len(ins)
		dels, ins = nil, nil
	}

	for _, d := range lineDiffs {
		lines := decode(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			oldLine += len(lines)
			newLine += len(lines)
		case diffmatchpatch.DiffDelete:
			dels = append(dels, lines...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, lines...)
		}
	}
	flush()

	return mappings
}

// innerChanges computes character-level range mappings for a replace hunk.
// Deleted and inserted lines are paired positionally; each differing pair is
// diffed at character granularity. Leftover unpaired lines are covered by a
// single trailing multi-line mapping.
func innerChanges(dmp *diffmatchpatch.DiffMatchPatch, m LineRangeMapping, dels, ins []string) []RangeMapping {
	n := len(dels)
	if len(ins) < n {
		n = len(ins)
	}

	var inner []RangeMapping
	for i := 0; i < n; i++ {
		oldText := trimEOL(dels[i])
		newText := trimEOL(ins[i])
		if oldText == newText {
			continue
		}
		oLine := m.Original.Start + i
		nLine := m.Modified.Start + i
		spans := dmp.DiffCleanupSemantic(dmp.DiffMain(oldText, newText, false))

		oCol, nCol := 1, 1
		idx := 0
		for idx < len(spans) {
			if spans[idx].Type == diffmatchpatch.DiffEqual {
				w := utf8.RuneCountInString(spans[idx].Text)
				oCol += w
				nCol += w
				idx++
				continue
			}
			// Collapse a run of non-equal spans into one mapping.
			delLen, insLen := 0, 0
			for idx < len(spans) && spans[idx].Type != diffmatchpatch.DiffEqual {
				w := utf8.RuneCountInString(spans[idx].Text)
				if spans[idx].Type == diffmatchpatch.DiffDelete {
					delLen += w
				} else {
					insLen += w
				}
				idx++
			}
			inner = append(inner, RangeMapping{
				Original: NewRange(oLine, oCol, oLine, oCol+delLen),
				Modified: NewRange(nLine, nCol, nLine, nCol+insLen),
			})
			oCol += delLen
			nCol += insLen
		}
	}

	if len(dels) != len(ins) {
		inner = append(inner, RangeMapping{
			Original: NewRange(m.Original.Start+n, 1, m.Original.EndExclusive, 1),
			Modified: NewRange(m.Modified.Start+n, 1, m.Modified.EndExclusive, 1),
		})
	}

	return inner
}

// trimEOL removes a trailing line ending from a line if present.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
