// Package core contains the fundamental types used throughout the elbow router.
package core

import (
	"fmt"
	"strings"
)

// Point represents a 2D coordinate in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String returns the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

// GridPoint represents an integer cell position.
type GridPoint struct {
	X, Y int
}

// Heading represents the cardinal direction of the most recent grid move.
type Heading int

const (
	HeadingNone Heading = iota // no prior direction, only valid for a start state
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

// String returns the string representation of a Heading.
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "Up"
	case HeadingDown:
		return "Down"
	case HeadingLeft:
		return "Left"
	case HeadingRight:
		return "Right"
	case HeadingNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ParseHeading converts a heading name such as "right" or "Up" to a Heading.
// "none" yields HeadingNone.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(s) {
	case "up":
		return HeadingUp, nil
	case "down":
		return HeadingDown, nil
	case "left":
		return HeadingLeft, nil
	case "right":
		return HeadingRight, nil
	case "none":
		return HeadingNone, nil
	default:
		return HeadingNone, fmt.Errorf("unknown heading: %q", s)
	}
}

// Reverse returns the opposite heading. HeadingNone has no opposite and
// reverses to itself.
func (h Heading) Reverse() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	default:
		return h
	}
}

// Delta returns the grid step taken by a move in this heading.
// Y grows downward, as on the canvas.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// IsHorizontal reports whether the heading moves along the x axis.
func (h Heading) IsHorizontal() bool {
	return h == HeadingLeft || h == HeadingRight
}

// Cell is a search state: a grid position plus the heading it was reached with.
// The same position reached with a different heading is a different Cell.
type Cell struct {
	X, Y    int
	Heading Heading
}

// Pos returns the grid position of the cell, dropping the heading.
func (c Cell) Pos() GridPoint {
	return GridPoint{X: c.X, Y: c.Y}
}

// Route is a routed connector: the caller's endpoints plus the intermediate
// points produced by the router.
type Route struct {
	Start  Point   `json:"start"`
	End    Point   `json:"end"`
	Points []Point `json:"points"`
}

// Polyline returns the full point sequence start, intermediates..., end.
func (r Route) Polyline() []Point {
	out := make([]Point, 0, len(r.Points)+2)
	out = append(out, r.Start)
	out = append(out, r.Points...)
	return append(out, r.End)
}

// Turns returns the number of intermediate points, which is the number of
// direction changes along the polyline.
func (r Route) Turns() int {
	return len(r.Points)
}
