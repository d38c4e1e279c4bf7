package pathfinding

import (
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"

	"elbow/core"
	"elbow/geometry"
	"elbow/validation"
)

func TestComputeElbowPath(t *testing.T) {
	tests := []struct {
		name  string
		start core.Point
		end   core.Point
		want  []core.Point
	}{
		{
			name:  "Horizontal",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 100, Y: 0},
			want:  nil,
		},
		{
			name:  "Vertical",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 0, Y: 100},
			want:  nil,
		},
		{
			name:  "Diagonal tie",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 100, Y: 100},
			want:  []core.Point{{X: 50, Y: 0}, {X: 50, Y: 100}},
		},
		{
			name:  "Mostly horizontal",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 200, Y: 40},
			want:  []core.Point{{X: 100, Y: 0}, {X: 100, Y: 40}},
		},
		{
			name:  "Mostly vertical",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 40, Y: 100},
			want:  []core.Point{{X: 0, Y: 50}, {X: 40, Y: 50}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeElbowPath(tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeElbowPath(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestComputeElbowPath_InvalidInput(t *testing.T) {
	bad := []core.Point{
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.Inf(1)},
	}
	for _, p := range bad {
		if _, err := ComputeElbowPath(p, core.Point{X: 100, Y: 100}); !errors.Is(err, ErrInvalidPoint) {
			t.Errorf("start %v: got %v, want ErrInvalidPoint", p, err)
		}
		if _, err := ComputeElbowPath(core.Point{}, p); !errors.Is(err, ErrInvalidPoint) {
			t.Errorf("end %v: got %v, want ErrInvalidPoint", p, err)
		}
	}
}

// samplePoints covers every octant plus near-aligned and off-grid values.
func samplePoints() []core.Point {
	coords := []float64{-230, -95.5, -20, 0, 13, 19.9, 20, 47, 100, 333.3}
	var points []core.Point
	for _, x := range coords {
		for _, y := range coords {
			points = append(points, core.Point{X: x, Y: y})
		}
	}
	return points
}

func TestComputeElbowPath_Properties(t *testing.T) {
	points := samplePoints()

	for _, a := range points {
		for _, b := range points {
			if a == b {
				continue
			}

			forward, err := ComputeElbowPath(a, b)
			if err != nil {
				t.Fatalf("ComputeElbowPath(%v, %v): %v", a, b, err)
			}

			dx, dy := math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)
			shortcut := dx < geometry.CellSize || dy < geometry.CellSize
			if shortcut != (len(forward) == 0) {
				t.Errorf("%v -> %v: shortcut=%v but got %v", a, b, shortcut, forward)
			}

			if !shortcut {
				route := core.Route{Start: a, End: b, Points: forward}
				for _, e := range validation.ValidateRoute(route) {
					t.Errorf("%v -> %v: %v", a, b, e)
				}
			}

			backward, _ := ComputeElbowPath(b, a)
			if len(backward) != len(forward) {
				t.Errorf("asymmetric turn count: %v -> %v has %d points, reverse has %d",
					a, b, len(forward), len(backward))
			}

			again, _ := ComputeElbowPath(a, b)
			if !reflect.DeepEqual(forward, again) {
				t.Errorf("%v -> %v not deterministic: %v vs %v", a, b, forward, again)
			}
		}
	}
}

func TestRouteBetween(t *testing.T) {
	tests := []struct {
		name      string
		departure core.Point
		arrival   core.Point
		heading   core.Heading
		want      []core.Point
		searched  bool
	}{
		{
			name:      "Shared column skips search",
			departure: core.Point{X: 50, Y: 0},
			arrival:   core.Point{X: 50, Y: 100},
			heading:   core.HeadingRight,
			want:      []core.Point{{X: 50, Y: 0}, {X: 50, Y: 100}},
		},
		{
			name:      "One turn",
			departure: core.Point{X: 0, Y: 0},
			arrival:   core.Point{X: 100, Y: 60},
			heading:   core.HeadingRight,
			want:      []core.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 60}},
			searched:  true,
		},
		{
			name:      "One turn snapped off grid",
			departure: core.Point{X: 3, Y: -4},
			arrival:   core.Point{X: 97, Y: 61},
			heading:   core.HeadingRight,
			want:      []core.Point{{X: 3, Y: -4}, {X: 97, Y: -4}, {X: 97, Y: 61}},
			searched:  true,
		},
		{
			name:      "Heading away from arrival",
			departure: core.Point{X: 0, Y: 0},
			arrival:   core.Point{X: -100, Y: 60},
			heading:   core.HeadingRight,
			want:      []core.Point{{X: 0, Y: 0}, {X: 0, Y: 60}, {X: -100, Y: 60}},
			searched:  true,
		},
		{
			name:      "Downward departure",
			departure: core.Point{X: 0, Y: 0},
			arrival:   core.Point{X: 60, Y: 100},
			heading:   core.HeadingDown,
			want:      []core.Point{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 60, Y: 100}},
			searched:  true,
		},
	}

	router, err := NewRouter()
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := router.RouteBetween(tt.departure, tt.arrival, tt.heading)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result.Points, tt.want) {
				t.Errorf("points = %v, want %v", result.Points, tt.want)
			}
			if result.Searched != tt.searched {
				t.Errorf("Searched = %v, want %v", result.Searched, tt.searched)
			}
			if result.Heading != tt.heading {
				t.Errorf("Heading = %v, want %v", result.Heading, tt.heading)
			}

			// The waypoints themselves must form an orthogonal polyline.
			inner := core.Route{Start: result.Points[0], End: result.Points[len(result.Points)-1],
				Points: result.Points[1 : len(result.Points)-1]}
			for _, e := range validation.ValidateRoute(inner) {
				t.Error(e)
			}
		})
	}
}

func TestRouteBetween_FreeFirstMove(t *testing.T) {
	router, _ := NewRouter()
	result, err := router.RouteBetween(core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 60}, core.HeadingNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Points) != 3 {
		t.Fatalf("expected departure, one corner, arrival; got %v", result.Points)
	}
	corner := result.Points[1]
	if !(corner == core.Point{X: 100, Y: 0} || corner == core.Point{X: 0, Y: 60}) {
		t.Errorf("corner %v is not aligned with both waypoints", corner)
	}
}

func TestRouter_Options(t *testing.T) {
	if _, err := NewRouter(WithCellSize(0)); !errors.Is(err, ErrInvalidCellSize) {
		t.Errorf("zero cell size: got %v", err)
	}
	if _, err := NewRouter(WithCellSize(math.NaN())); !errors.Is(err, ErrInvalidCellSize) {
		t.Errorf("NaN cell size: got %v", err)
	}
	if _, err := NewRouter(WithMaxGridDistance(-1)); err == nil {
		t.Error("negative distance limit accepted")
	}

	fine, err := NewRouter(WithCellSize(10))
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	if fine.CellSize() != 10 {
		t.Errorf("CellSize() = %v", fine.CellSize())
	}
	got, _ := fine.Route(core.Point{X: 0, Y: 0}, core.Point{X: 200, Y: 15})
	want := []core.Point{{X: 100, Y: 0}, {X: 100, Y: 15}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Route with 10 unit cells = %v, want %v", got, want)
	}

	coarse, _ := NewRouter(WithCellSize(50))
	if got, _ := coarse.Route(core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 30}); len(got) != 0 {
		t.Errorf("Route with 50 unit cells = %v, want direct", got)
	}

	limited, _ := NewRouter(WithMaxGridDistance(5))
	_, err = limited.RouteBetween(core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 60}, core.HeadingRight)
	if !errors.Is(err, ErrDistanceLimit) {
		t.Errorf("got %v, want ErrDistanceLimit", err)
	}
}

func TestRouter_Plan(t *testing.T) {
	router, _ := NewRouter()

	direct, err := router.Plan(core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 5})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(direct.Points) != 0 || direct.Heading != core.HeadingNone || direct.Searched {
		t.Errorf("direct plan = %+v", direct)
	}

	elbow, _ := router.Plan(core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 100})
	if elbow.Heading != core.HeadingRight || elbow.Searched {
		t.Errorf("elbow plan = %+v", elbow)
	}
}

func TestRouter_Concurrent(t *testing.T) {
	router, _ := NewRouter()
	want, _ := router.RouteBetween(core.Point{X: 0, Y: 0}, core.Point{X: -100, Y: 60}, core.HeadingRight)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := router.RouteBetween(core.Point{X: 0, Y: 0}, core.Point{X: -100, Y: 60}, core.HeadingRight)
			if err != nil || !reflect.DeepEqual(got, want) {
				t.Errorf("concurrent route differs: %+v (%v)", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestRouteBetween_FarCoordinates(t *testing.T) {
	router, _ := NewRouter()

	// Cell indices beyond the int range must be rejected, not wrapped.
	_, err := router.RouteBetween(core.Point{X: 0, Y: 0}, core.Point{X: 1e300, Y: 1e300}, core.HeadingRight)
	if !errors.Is(err, ErrDistanceLimit) {
		t.Errorf("got %v, want ErrDistanceLimit", err)
	}

	// Far from the origin but close together: searched relative to departure.
	wide, _ := NewRouter(WithCellSize(1 << 16))
	base := math.Ldexp(1, 70)
	departure := core.Point{X: base, Y: 0}
	arrival := core.Point{X: base + math.Ldexp(1, 20), Y: 3 << 16}

	result, err := wide.RouteBetween(departure, arrival, core.HeadingRight)
	if err != nil {
		t.Fatalf("RouteBetween: %v", err)
	}
	want := []core.Point{departure, {X: arrival.X, Y: 0}, arrival}
	if !reflect.DeepEqual(result.Points, want) {
		t.Errorf("Points = %v, want %v", result.Points, want)
	}
	if !result.Searched {
		t.Error("expected the search to run")
	}
}

func TestComputeElbowPath_NearFloatLimit(t *testing.T) {
	got, err := ComputeElbowPath(core.Point{X: -1e308, Y: 0}, core.Point{X: 1e308, Y: 1e308})
	if err != nil {
		t.Fatalf("ComputeElbowPath: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected departure and arrival, got %v", got)
	}
	for _, p := range got {
		if !geometry.IsFinite(p) {
			t.Errorf("non-finite waypoint %v", p)
		}
	}
}
