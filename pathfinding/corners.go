package pathfinding

import (
	"elbow/core"
	"elbow/geometry"
)

// ExtractCorners reduces a cell path to the points where its heading changes,
// using the default cell size.
//
// A corner is an interior cell whose outgoing heading differs from the
// heading it was entered with. A corner sharing a grid column or row with the
// first (last) cell takes the exact departure (arrival) coordinate on that
// axis instead of the quantized one, so corners line up with the dongles.
func ExtractCorners(path []core.Cell, departure, arrival core.Point) []core.Point {
	return extractCorners(path, departure, arrival, geometry.DefaultQuantizer, core.Point{})
}

// extractCorners treats path as relative to origin, a grid index pair.
func extractCorners(path []core.Cell, departure, arrival core.Point, q geometry.Quantizer, origin core.Point) []core.Point {
	if len(path) < 3 {
		return nil
	}

	first := path[0]
	last := path[len(path)-1]

	var corners []core.Point
	for i := 1; i < len(path)-1; i++ {
		in := path[i].Heading
		out := path[i+1].Heading
		if in == core.HeadingNone || in == out {
			continue
		}

		cell := path[i]
		corner := core.Point{
			X: (origin.X + float64(cell.X)) * q.Size,
			Y: (origin.Y + float64(cell.Y)) * q.Size,
		}
		if cell.X == first.X {
			corner.X = departure.X
		}
		if cell.Y == first.Y {
			corner.Y = departure.Y
		}
		if cell.X == last.X {
			corner.X = arrival.X
		}
		if cell.Y == last.Y {
			corner.Y = arrival.Y
		}
		corners = append(corners, corner)
	}

	return corners
}
