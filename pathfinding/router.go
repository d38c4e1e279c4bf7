package pathfinding

import (
	"errors"
	"fmt"
	"math"

	"elbow/core"
	"elbow/geometry"
)

var (
	ErrInvalidPoint    = errors.New("point has non-finite coordinates")
	ErrInvalidCellSize = errors.New("cell size must be positive and finite")
	ErrDistanceLimit   = errors.New("waypoints exceed the routing distance limit")
)

// maxTurnPenalty keeps Penalty^3 and a few turns' worth of it inside uint64.
// It bounds the arithmetic, not the running time; see WithMaxGridDistance.
const maxTurnPenalty = 1 << 20

// Result describes one routing call.
type Result struct {
	// Points is departure, corners..., arrival, or empty when a direct
	// segment from start to end is already axis aligned.
	Points        []core.Point
	Heading       core.Heading // departure heading, HeadingNone when Points is empty
	Searched      bool         // whether the A* search ran
	Cost          uint64
	ExpandedNodes int
}

// Router computes elbow connectors. A Router is immutable and safe for
// concurrent use.
type Router struct {
	quantizer   geometry.Quantizer
	maxDistance int
}

// Option configures a Router.
type Option func(*Router)

// WithCellSize sets the routing grid size in canvas units.
func WithCellSize(size float64) Option {
	return func(r *Router) { r.quantizer = geometry.Quantizer{Size: size} }
}

// WithMaxGridDistance rejects searches whose waypoints are more than cells
// apart (Manhattan, in grid cells) with ErrDistanceLimit. Zero means no limit
// beyond the arithmetic bound.
//
// The turn penalty grows with distance, so a search explores roughly
// distance^3/2 states: about half a million at 100 cells and four million at
// 200. Callers routing untrusted waypoints should set a limit.
func WithMaxGridDistance(cells int) Option {
	return func(r *Router) { r.maxDistance = cells }
}

// NewRouter creates a router with the default cell size, adjusted by options.
func NewRouter(options ...Option) (*Router, error) {
	r := &Router{quantizer: geometry.DefaultQuantizer}
	for _, option := range options {
		option(r)
	}

	if size := r.quantizer.Size; size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCellSize, size)
	}
	if r.maxDistance < 0 {
		return nil, fmt.Errorf("invalid max grid distance: %d", r.maxDistance)
	}
	return r, nil
}

var defaultRouter = &Router{quantizer: geometry.DefaultQuantizer}

// ComputeElbowPath returns the intermediate points of an orthogonal connector
// from start to end: departure, corners..., arrival. An empty result means the
// connector is a single straight segment.
func ComputeElbowPath(start, end core.Point) ([]core.Point, error) {
	return defaultRouter.Route(start, end)
}

// CellSize returns the routing grid size.
func (r *Router) CellSize() float64 {
	return r.quantizer.Size
}

// Route is ComputeElbowPath using this router's grid.
func (r *Router) Route(start, end core.Point) ([]core.Point, error) {
	result, err := r.Plan(start, end)
	if err != nil {
		return nil, err
	}
	return result.Points, nil
}

// Plan routes from start to end and reports how the route was obtained.
func (r *Router) Plan(start, end core.Point) (Result, error) {
	if err := checkFinite(start, end); err != nil {
		return Result{}, err
	}

	waypoints, ok := deriveWaypoints(start, end, r.quantizer.Size)
	if !ok {
		return Result{Heading: core.HeadingNone}, nil
	}
	return r.RouteBetween(waypoints.Departure, waypoints.Arrival, waypoints.Heading)
}

// RouteBetween routes between two explicit waypoints, leaving departure with
// the given heading. The result always starts with departure and ends with
// arrival. HeadingNone leaves the first move unconstrained.
func (r *Router) RouteBetween(departure, arrival core.Point, heading core.Heading) (Result, error) {
	if err := checkFinite(departure, arrival); err != nil {
		return Result{}, err
	}

	// Grid indices stay in float64 until the search is known to be short,
	// so far-away coordinates cannot overflow an int.
	fromX, fromY := r.quantizer.Index(departure.X), r.quantizer.Index(departure.Y)
	toX, toY := r.quantizer.Index(arrival.X), r.quantizer.Index(arrival.Y)

	// Waypoints already share a row or column: one straight segment.
	if fromX == toX || fromY == toY {
		return Result{
			Points:  []core.Point{departure, arrival},
			Heading: heading,
		}, nil
	}

	dx, dy := toX-fromX, toY-fromY
	distance := math.Abs(dx) + math.Abs(dy)
	if distance > maxTurnPenalty || (r.maxDistance > 0 && distance > float64(r.maxDistance)) {
		return Result{}, fmt.Errorf("%w: %g cells", ErrDistanceLimit, distance)
	}

	// Search relative to the departure cell.
	goal := core.GridPoint{X: int(dx), Y: int(dy)}
	search := Search(core.Cell{Heading: heading}, goal)

	origin := core.Point{X: fromX, Y: fromY}
	points := []core.Point{departure}
	points = append(points, extractCorners(search.Path, departure, arrival, r.quantizer, origin)...)
	points = append(points, arrival)

	return Result{
		Points:        points,
		Heading:       heading,
		Searched:      true,
		Cost:          search.Cost,
		ExpandedNodes: search.ExpandedNodes,
	}, nil
}

func checkFinite(points ...core.Point) error {
	for _, p := range points {
		if !geometry.IsFinite(p) {
			return fmt.Errorf("%w: (%v, %v)", ErrInvalidPoint, p.X, p.Y)
		}
	}
	return nil
}
