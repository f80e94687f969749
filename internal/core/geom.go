// Package core holds the platform-neutral types shared by games and frontends:
// a cell screen buffer, input frames and the mapping between arena units and
// terminal cells. It has no terminal dependencies.
package core

import "math"

// Rect is a rectangle in cell coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Viewport maps a continuous arena onto a grid of cells. Cells are usually
// about twice as tall as they are wide, so the two axes scale independently.
type Viewport struct {
	ArenaW, ArenaH float64
	Cols, Rows     int
	OffsetY        int // Rows reserved above the arena (HUD)
}

// CellW returns the arena width covered by one column.
func (v Viewport) CellW() float64 {
	return v.ArenaW / float64(v.Cols)
}

// CellH returns the arena height covered by one row.
func (v Viewport) CellH() float64 {
	return v.ArenaH / float64(v.Rows)
}

// ToCell returns the cell containing the arena point (x, y). The result may
// lie outside the viewport.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / v.CellW()))
	row = int(math.Floor(y/v.CellH())) + v.OffsetY
	return col, row
}

// ToArena returns the arena point at the center of cell (col, row).
func (v Viewport) ToArena(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * v.CellW()
	y = (float64(row-v.OffsetY) + 0.5) * v.CellH()
	return x, y
}

// CellRect returns the cells covered by the arena rectangle, clipped to the
// viewport. Any rectangle with positive area covers at least one cell.
func (v Viewport) CellRect(x, y, w, h float64) Rect {
	x0 := int(math.Floor(x / v.CellW()))
	y0 := int(math.Floor(y / v.CellH()))
	x1 := int(math.Ceil((x + w) / v.CellW()))
	y1 := int(math.Ceil((y + h) / v.CellH()))

	x0, x1 = Clamp(x0, 0, v.Cols), Clamp(x1, 0, v.Cols)
	y0, y1 = Clamp(y0, 0, v.Rows), Clamp(y1, 0, v.Rows)
	return NewRect(x0, y0+v.OffsetY, x1-x0, y1-y0)
}
