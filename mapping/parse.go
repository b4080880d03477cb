package mapping

import (
	"fmt"
	"strings"

	sgdiff "github.com/sourcegraph/go-diff/diff"
)

// ParseUnified parses a single-file unified diff into hunks.
// The resulting mappings carry no inner changes; callers that need
// character-level detail should use Compute on the full buffer contents.
func ParseUnified(raw []byte) ([]LineRangeMapping, error) {
	hunks, err := sgdiff.ParseHunks(raw)
	if err != nil {
		return nil, fmt.Errorf("parse unified diff: %w", err)
	}

	var mappings []LineRangeMapping
	for _, h := range hunks {
		oldLn := int(h.OrigStartLine)
		newLn := int(h.NewStartLine)

		lines := splitHunkBody(h.Body)
		for i := 0; i < len(lines); {
			line := lines[i]
			if line == "" {
				i++
				continue
			}
			switch line[0] {
			case ' ':
				oldLn++
				newLn++
				i++

			case '-', '+':
				delStart := oldLn
				for i < len(lines) && len(lines[i]) > 0 && lines[i][0] == '-' {
					oldLn++
					i++
				}
				addStart := newLn
				for i < len(lines) && len(lines[i]) > 0 && lines[i][0] == '+' {
					newLn++
					i++
				}
				mappings = append(mappings, LineRangeMapping{
					Original: NewLineRange(delStart, oldLn),
					Modified: NewLineRange(addStart, newLn),
				})

			case '\\':
				// Ignore "\ No newline at end of file" marker lines.
				i++

			default:
				return nil, fmt.Errorf("unexpected hunk line prefix %q", line)
			}
		}
	}
	return mappings, nil
}

// splitHunkBody splits a hunk body into its raw lines, dropping a trailing
// empty element produced by a final newline.
func splitHunkBody(body []byte) []string {
	lines := strings.Split(string(body), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
