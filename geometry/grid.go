package geometry

import (
	"math"

	"elbow/core"
)

// CellSize is the edge length of one routing grid cell in canvas units.
const CellSize = 20.0

// ToGrid snaps a canvas coordinate to the nearest grid index.
func ToGrid(v float64) int {
	return DefaultQuantizer.ToGrid(v)
}

// FromGrid converts a grid index back to a canvas coordinate.
func FromGrid(i int) float64 {
	return DefaultQuantizer.FromGrid(i)
}

// Quantizer maps continuous coordinates onto a square grid of the given size.
type Quantizer struct {
	Size float64
}

// DefaultQuantizer uses CellSize.
var DefaultQuantizer = Quantizer{Size: CellSize}

// ToGrid returns round(v / Size). Halves round away from zero. The result is
// only meaningful while v/Size fits in an int; see Index.
func (q Quantizer) ToGrid(v float64) int {
	return int(q.Index(v))
}

// Index is ToGrid without the int conversion, so it never overflows. It is
// an integral float64, or ±Inf when v/Size overflows.
func (q Quantizer) Index(v float64) float64 {
	return math.Round(v / q.Size)
}

// FromGrid returns i * Size.
func (q Quantizer) FromGrid(i int) float64 {
	return float64(i) * q.Size
}

// Cell returns the grid position containing p.
func (q Quantizer) Cell(p core.Point) core.GridPoint {
	return core.GridPoint{X: q.ToGrid(p.X), Y: q.ToGrid(p.Y)}
}

// IsFinite reports whether both coordinates of p are finite numbers.
func IsFinite(p core.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
