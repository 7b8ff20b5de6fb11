// Package core provides fundamental types and utilities for the blasters platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Rect represents an axis-aligned cell rectangle used for layout on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned rectangle in world units, described by its center.
type Box struct {
	CX, CY float64 // Center
	W, H   float64
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.H/2 }

// Dist2 returns the squared distance between two points.
func Dist2(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// CircleHit reports whether a point lies within radius r of a center.
// The boundary is inclusive: a squared distance equal to r² is a hit.
func CircleHit(px, py, cx, cy, r float64) bool {
	return Dist2(px, py, cx, cy) <= r*r
}

// CircleRectHit reports whether a circle of radius r at (px, py) touches the box.
// The closest point of the box is found by clamping, then compared by distance.
func CircleRectHit(px, py, r float64, b Box) bool {
	nx := ClampF(px, b.Left(), b.Right())
	ny := ClampF(py, b.Top(), b.Bottom())
	return Dist2(px, py, nx, ny) <= r*r
}

// Wrap moves a coordinate that left [0, size) back in from the opposite edge.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	if v < 0 {
		v += size
	} else if v >= size {
		v -= size
	}
	// Large jumps (resize, teleports) need a full modulo.
	if v < 0 || v >= size {
		v = math.Mod(v, size)
		if v < 0 {
			v += size
		}
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
