// Package canvas rasterises orthogonal connectors onto a character grid.
package canvas

import (
	"fmt"
	"math"

	"elbow/core"
	"elbow/geometry"
)

// Viewport maps canvas-space points onto character cells.
type Viewport struct {
	Origin core.Point // canvas-space point at cell (0,0)
	Unit   float64    // canvas units per character cell
}

// ToCell projects p onto the grid. Points sharing an x (or y) coordinate land
// in the same column (or row), so axis-aligned segments stay axis aligned.
func (v Viewport) ToCell(p core.Point) core.GridPoint {
	return core.GridPoint{
		X: int(math.Round((p.X - v.Origin.X) / v.Unit)),
		Y: int(math.Round((p.Y - v.Origin.Y) / v.Unit)),
	}
}

// FitViewport returns a viewport covering points with margin cells on each
// side, and the canvas size it needs.
func FitViewport(points []core.Point, unit float64, margin int) (Viewport, int, int, error) {
	if len(points) == 0 {
		return Viewport{}, 0, 0, ErrShortPath
	}
	if unit <= 0 || math.IsNaN(unit) || math.IsInf(unit, 0) {
		return Viewport{}, 0, 0, fmt.Errorf("%w: unit %v", ErrInvalidSize, unit)
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Checked in float64 so that far-apart points cannot overflow the cell
	// arithmetic below.
	spanX := (maxX-minX)/unit + float64(2*margin+1)
	spanY := (maxY-minY)/unit + float64(2*margin+1)
	if !(spanX*spanY <= MaxCells) {
		return Viewport{}, 0, 0, fmt.Errorf("%w: route spans %gx%g cells", ErrInvalidSize, spanX, spanY)
	}

	pad := float64(margin) * unit
	v := Viewport{Origin: core.Point{X: minX - pad, Y: minY - pad}, Unit: unit}
	far := v.ToCell(core.Point{X: maxX, Y: maxY})
	return v, far.X + margin + 1, far.Y + margin + 1, nil
}

// RenderRoute draws a routed connector, start marker to arrow head, on a
// canvas sized to fit it. unit is canvas units per character cell.
func RenderRoute(route core.Route, unit float64) (*MatrixCanvas, error) {
	viewport, width, height, err := FitViewport(route.Polyline(), unit, 1)
	if err != nil {
		return nil, err
	}

	c, err := NewMatrixCanvas(width, height)
	if err != nil {
		return nil, err
	}

	if err := c.DrawRoute(route, viewport); err != nil {
		return nil, err
	}
	return c, nil
}

// DrawRoute projects a routed connector through v and draws it with a start
// marker and an arrow head.
func (c *MatrixCanvas) DrawRoute(route core.Route, v Viewport) error {
	polyline := route.Polyline()
	cells := make([]core.GridPoint, len(polyline))
	for i, p := range polyline {
		cells[i] = v.ToCell(p)
	}

	if err := c.DrawPath(orthogonalize(cells), true); err != nil {
		return fmt.Errorf("failed to draw route: %w", err)
	}
	return nil
}

// orthogonalize inserts an elbow into any diagonal step. A direct route is
// only axis aligned to within one routing cell, which can still span several
// character cells.
func orthogonalize(cells []core.GridPoint) []core.GridPoint {
	out := make([]core.GridPoint, 0, len(cells))
	for i, p := range cells {
		if i > 0 {
			prev := out[len(out)-1]
			if prev.X != p.X && prev.Y != p.Y {
				if geometry.Abs(p.X-prev.X) >= geometry.Abs(p.Y-prev.Y) {
					out = append(out, core.GridPoint{X: p.X, Y: prev.Y})
				} else {
					out = append(out, core.GridPoint{X: prev.X, Y: p.Y})
				}
			}
		}
		out = append(out, p)
	}
	return out
}
