package viewzone

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inlinediff/style"
)

// Block is the offscreen-rendered content of a view zone: a fixed grid of
// styled cells, one row per rendered modified line.
type Block struct {
	rows [][]style.Cell
}

// NewBlock creates an empty block.
func NewBlock() *Block {
	return &Block{}
}

// AppendRow adds one rendered line to the block.
func (b *Block) AppendRow(cells []style.Cell) {
	b.rows = append(b.rows, cells)
}

// Rows returns the rendered rows.
func (b *Block) Rows() [][]style.Cell {
	return b.rows
}

// LineCount returns the number of rendered lines.
func (b *Block) LineCount() int {
	return len(b.rows)
}

// MinWidthCells returns the display width of the widest row.
func (b *Block) MinWidthCells() int {
	width := 0
	for _, row := range b.rows {
		w := 0
		for _, c := range row {
			w += c.Width
		}
		if w > width {
			width = w
		}
	}
	return width
}

// Text returns the block content as plain text, one line per row.
func (b *Block) Text() string {
	var out []rune
	for i, row := range b.rows {
		if i > 0 {
			out = append(out, '\n')
		}
		for _, c := range row {
			out = append(out, c.Rune)
		}
	}
	return string(out)
}

// DrawTo paints the block onto a tcell screen at the given origin. Rows are
// clipped to the screen bounds.
func (b *Block) DrawTo(screen tcell.Screen, x, y int) {
	w, h := screen.Size()
	for row, cells := range b.rows {
		if y+row < 0 || y+row >= h {
			continue
		}
		col := x
		for _, c := range cells {
			if col >= w {
				break
			}
			screen.SetContent(col, y+row, c.Rune, nil, c.Style.Tcell())
			col += c.Width
		}
	}
}

// rowSpan is a styled overlay over a 0-based rune-column range of a row.
type rowSpan struct {
	start, end int
	overlay    style.Style
}

// renderRow builds the cell row for one line of text, applying token spans
// first and highlight spans on top.
func renderRow(text string, base style.Style, tokens, highlights []rowSpan) []style.Cell {
	runes := []rune(text)
	cells := make([]style.Cell, 0, len(runes))
	for col, r := range runes {
		s := base
		for _, sp := range tokens {
			if col >= sp.start && col < sp.end {
				s = s.Merge(sp.overlay)
			}
		}
		for _, sp := range highlights {
			if col >= sp.start && col < sp.end {
				s = s.Merge(sp.overlay)
			}
		}
		cells = append(cells, style.NewCell(r, s))
	}
	return cells
}
