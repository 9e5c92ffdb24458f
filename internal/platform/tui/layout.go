package tui

import (
	"math"

	"github.com/vovakirdan/pigpong/internal/core"
	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

// Screen rows reserved around the field.
const (
	headerRows = 1 // Scoreboard
	borderRows = 1 // Field border above and below
	footerRows = 2 // Help and journal lines, rendered outside the Screen
)

// Minimum terminal size that still fits a playable field.
const (
	MinWidth  = 40
	MinHeight = 12
)

// Layout maps field units to terminal cells and back. The whole canvas
// width spans the screen; the field height spans the rows between the
// field borders.
type Layout struct {
	params pigpong.Params

	// Inner is the cell rectangle the field interior maps onto.
	Inner  core.Rect
	scaleX float64 // Cells per field unit
	scaleY float64
}

// NewLayout computes a layout for a terminal of the given size.
func NewLayout(params pigpong.Params, width, height int) Layout {
	width = max(width, MinWidth)
	height = max(height, MinHeight)

	inner := core.NewRect(0, headerRows+borderRows, width, height-footerRows-headerRows-2*borderRows)

	return Layout{
		params: params,
		Inner:  inner,
		scaleX: float64(inner.W-1) / (params.CanvasRight - params.CanvasLeft),
		scaleY: float64(inner.H-1) / (params.FieldBottom - params.FieldTop),
	}
}

// ScreenSize returns the size of the Screen buffer the layout draws on.
func (l Layout) ScreenSize() (int, int) {
	return l.Inner.W, l.Inner.Bottom() + borderRows
}

// Col converts a field x coordinate to a screen column.
func (l Layout) Col(x float64) int {
	return l.Inner.X + int(math.Round((x-l.params.CanvasLeft)*l.scaleX))
}

// Row converts a field y coordinate to a screen row.
func (l Layout) Row(y float64) int {
	return l.Inner.Y + int(math.Round((y-l.params.FieldTop)*l.scaleY))
}

// ToCell converts a field position to a screen cell.
func (l Layout) ToCell(x, y float64) (int, int) {
	return l.Col(x), l.Row(y)
}

// ToField converts a screen cell to a field position.
func (l Layout) ToField(col, row int) (float64, float64) {
	x := l.params.CanvasLeft + float64(col-l.Inner.X)/l.scaleX
	y := l.params.FieldTop + float64(row-l.Inner.Y)/l.scaleY
	return x, y
}

// GateCols returns the first and last column of a side's gate. A gate is
// always at least one cell wide.
func (l Layout) GateCols(side pigpong.Side) (int, int) {
	gate := l.params.Gate(side)
	lo, hi := l.Col(gate.Lo), l.Col(gate.Hi)
	if side == pigpong.SideLeft && hi > lo {
		// The field edge column belongs to the field.
		hi--
	}
	if side == pigpong.SideRight && hi > lo {
		lo++
	}
	return lo, hi
}

// PaddleRows returns the first and last row covered by a paddle at y.
func (l Layout) PaddleRows(y float64) (int, int) {
	h := l.params.PaddleHalfHeight
	return l.Row(y - h), l.Row(y + h)
}

// HitsGate reports whether a cell lies on a side's paddle. The hit area is
// widened by one column so narrow gates stay easy to grab.
func (l Layout) HitsGate(side pigpong.Side, col, row int, paddleY float64) bool {
	lo, hi := l.GateCols(side)
	top, bottom := l.PaddleRows(paddleY)
	return col >= lo-1 && col <= hi+1 && row >= top && row <= bottom
}
