package pathfinding

import (
	"math"

	"elbow/core"
	"elbow/geometry"
)

// Waypoints are the departure and arrival dongles placed off the endpoints so
// the connector leaves and enters at a right angle.
type Waypoints struct {
	Departure core.Point
	Arrival   core.Point
	Heading   core.Heading // departure heading
}

// DeriveWaypoints computes the dongles for a connector from start to end using
// the default cell size. ok is false when the two points are already within a
// cell of each other on either axis and need no intermediate points.
func DeriveWaypoints(start, end core.Point) (Waypoints, bool) {
	return deriveWaypoints(start, end, geometry.CellSize)
}

func deriveWaypoints(start, end core.Point, cellSize float64) (Waypoints, bool) {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if math.Abs(dx) < cellSize {
		return Waypoints{}, false // vertical
	}
	if math.Abs(dy) < cellSize {
		return Waypoints{}, false // horizontal
	}

	var heading core.Heading
	switch {
	case geometry.IsHorizontal(start.X, start.Y, end.X, end.Y):
		heading = core.HeadingLeft
		if dx > 0 {
			heading = core.HeadingRight
		}
	case dy > 0:
		heading = core.HeadingDown
	default:
		heading = core.HeadingUp
	}

	// Halve first so the sum cannot overflow near the float64 limit.
	midX := start.X/2 + end.X/2
	midY := start.Y/2 + end.Y/2

	if heading.IsHorizontal() {
		return Waypoints{
			Departure: core.Point{X: midX, Y: start.Y},
			Arrival:   core.Point{X: midX, Y: end.Y},
			Heading:   heading,
		}, true
	}
	return Waypoints{
		Departure: core.Point{X: start.X, Y: midY},
		Arrival:   core.Point{X: end.X, Y: midY},
		Heading:   heading,
	}, true
}
