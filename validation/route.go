// Package validation checks routed connectors and their rendered art.
package validation

import (
	"fmt"

	"elbow/core"
)

// RouteError describes a broken segment of a routed connector.
type RouteError struct {
	Segment  int // index of the segment's first point in the polyline
	From, To core.Point
	Message  string
}

func (e RouteError) Error() string {
	return fmt.Sprintf("segment %d %v -> %v: %s", e.Segment, e.From, e.To, e.Message)
}

// ValidateRoute checks the polyline start, points..., end of a route: every
// segment must change exactly one coordinate, and the path must never double
// back along the axis it just travelled.
func ValidateRoute(route core.Route) []RouteError {
	var errs []RouteError
	poly := route.Polyline()

	prev := core.HeadingNone
	for i := 0; i < len(poly)-1; i++ {
		a, b := poly[i], poly[i+1]

		heading, msg := segmentHeading(a, b)
		if msg != "" {
			errs = append(errs, RouteError{Segment: i, From: a, To: b, Message: msg})
			prev = core.HeadingNone
			continue
		}

		if prev != core.HeadingNone && heading == prev.Reverse() {
			errs = append(errs, RouteError{Segment: i, From: a, To: b,
				Message: fmt.Sprintf("path doubles back: %v after %v", heading, prev)})
		}
		prev = heading
	}

	return errs
}

// CountTurns returns the number of direction changes along the route.
// Collinear continuations are not turns.
func CountTurns(route core.Route) int {
	poly := route.Polyline()
	turns := 0
	prev := core.HeadingNone
	for i := 0; i < len(poly)-1; i++ {
		heading, msg := segmentHeading(poly[i], poly[i+1])
		if msg != "" {
			continue
		}
		if prev != core.HeadingNone && heading != prev {
			turns++
		}
		prev = heading
	}
	return turns
}

func segmentHeading(a, b core.Point) (core.Heading, string) {
	switch {
	case a == b:
		return core.HeadingNone, "zero-length segment"
	case a.X != b.X && a.Y != b.Y:
		return core.HeadingNone, "diagonal segment"
	case b.X > a.X:
		return core.HeadingRight, ""
	case b.X < a.X:
		return core.HeadingLeft, ""
	case b.Y > a.Y:
		return core.HeadingDown, ""
	default:
		return core.HeadingUp, ""
	}
}
