// Package arena holds what the blasters games share on top of the
// simulation: the world-to-cell projection, drawing helpers and the
// Runner that adapts a sim.Session to the registry Game interface.
package arena

import (
	"math"

	"github.com/vovakirdan/tui-blasters/internal/config"
)

// HUDRows is the number of screen rows reserved above the playfield.
const HUDRows = 1

// View maps world units to terminal cells.
type View struct {
	CellW, CellH float64
	Cols, Rows   int // playfield size in cells
}

// NewView creates the projection for a screen, reserving the HUD rows.
func NewView(w config.WorldConfig, screenW, screenH int) View {
	cw, ch := w.CellW, w.CellH
	if cw <= 0 {
		cw = 8
	}
	if ch <= 0 {
		ch = 16
	}
	rows := screenH - HUDRows
	if rows < 1 {
		rows = 1
	}
	cols := screenW
	if cols < 1 {
		cols = 1
	}
	return View{CellW: cw, CellH: ch, Cols: cols, Rows: rows}
}

// WorldSize returns the playfield size in world units.
func (v View) WorldSize() (w, h float64) {
	return float64(v.Cols) * v.CellW, float64(v.Rows) * v.CellH
}

// Cell returns the screen cell of a world point.
func (v View) Cell(x, y float64) (cx, cy int) {
	return int(math.Floor(x / v.CellW)), int(math.Floor(y/v.CellH)) + HUDRows
}

// RowCenter returns the world y at the middle of screen row sy.
func (v View) RowCenter(sy int) float64 {
	return (float64(sy-HUDRows) + 0.5) * v.CellH
}

// ColCenter returns the world x at the middle of screen column sx.
func (v View) ColCenter(sx int) float64 {
	return (float64(sx) + 0.5) * v.CellW
}

// InPlayfield reports whether a screen cell lies below the HUD.
func (v View) InPlayfield(cx, cy int) bool {
	return cx >= 0 && cx < v.Cols && cy >= HUDRows && cy < v.Rows+HUDRows
}
