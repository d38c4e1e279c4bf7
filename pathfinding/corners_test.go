package pathfinding

import (
	"reflect"
	"testing"

	"elbow/core"
)

func cells(headings string, x, y int, first core.Heading) []core.Cell {
	path := []core.Cell{{X: x, Y: y, Heading: first}}
	for _, r := range headings {
		var h core.Heading
		switch r {
		case 'U':
			h = core.HeadingUp
		case 'D':
			h = core.HeadingDown
		case 'L':
			h = core.HeadingLeft
		case 'R':
			h = core.HeadingRight
		}
		dx, dy := h.Delta()
		x, y = x+dx, y+dy
		path = append(path, core.Cell{X: x, Y: y, Heading: h})
	}
	return path
}

func TestExtractCorners(t *testing.T) {
	tests := []struct {
		name      string
		path      []core.Cell
		departure core.Point
		arrival   core.Point
		want      []core.Point
	}{
		{
			name:      "Straight run has no corners",
			path:      cells("RRRR", 0, 0, core.HeadingRight),
			departure: core.Point{X: 0, Y: 0},
			arrival:   core.Point{X: 80, Y: 0},
			want:      nil,
		},
		{
			name:      "Single turn snaps to both waypoints",
			path:      cells("RRRRRDDD", 0, 0, core.HeadingRight),
			departure: core.Point{X: 3, Y: -4},
			arrival:   core.Point{X: 97, Y: 61},
			want:      []core.Point{{X: 97, Y: -4}},
		},
		{
			name:      "Turn at the departure cell is not a corner",
			path:      cells("DDDLLLLL", 0, 0, core.HeadingRight),
			departure: core.Point{X: 0, Y: 0},
			arrival:   core.Point{X: -100, Y: 60},
			want:      []core.Point{{X: 0, Y: 60}},
		},
		{
			name:      "First move out of None is not a turn",
			path:      cells("DDRR", 0, 0, core.HeadingNone),
			departure: core.Point{X: 0, Y: 0},
			arrival:   core.Point{X: 40, Y: 40},
			want:      []core.Point{{X: 0, Y: 40}},
		},
		{
			name:      "Interior corner off both waypoint axes uses the grid",
			path:      cells("UURRRDDDDD", 0, 0, core.HeadingUp),
			departure: core.Point{X: 1, Y: 1},
			arrival:   core.Point{X: 61, Y: 59},
			want:      []core.Point{{X: 1, Y: -40}, {X: 61, Y: -40}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCorners(tt.path, tt.departure, tt.arrival)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCorners() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractCorners_ShortPaths(t *testing.T) {
	if got := ExtractCorners(nil, core.Point{}, core.Point{}); got != nil {
		t.Errorf("nil path gave %v", got)
	}
	if got := ExtractCorners(cells("D", 0, 0, core.HeadingRight), core.Point{}, core.Point{X: 0, Y: 20}); got != nil {
		t.Errorf("two-cell path gave %v", got)
	}
}
