package canvas

import (
	"errors"
	"fmt"
	"strings"

	"elbow/core"
)

// Common errors
var (
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrInvalidSize   = errors.New("invalid canvas size")
	ErrNotOrthogonal = errors.New("segment is not axis aligned")
	ErrShortPath     = errors.New("path must have at least 2 points")
)

// MatrixCanvas is a character grid that draws orthogonal connectors.
//
// Lines are stored as arms per cell and resolved to box-drawing runes when
// read, so crossings and corners join cleanly regardless of draw order.
// Markers (arrow heads, start dots, text) override the line rune of a cell.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//
// MatrixCanvas is NOT thread-safe for writes.
type MatrixCanvas struct {
	arms   [][]Arm
	marks  [][]rune
	width  int
	height int
}

// MaxCells bounds the area of a canvas.
const MaxCells = 1 << 22

// NewMatrixCanvas creates a blank canvas with the specified dimensions.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if width > MaxCells || height > MaxCells || width*height > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidSize, width, height, MaxCells)
	}

	arms := make([][]Arm, height)
	marks := make([][]rune, height)
	for y := 0; y < height; y++ {
		arms[y] = make([]Arm, width)
		marks[y] = make([]rune, width)
	}

	return &MatrixCanvas{
		arms:   arms,
		marks:  marks,
		width:  width,
		height: height,
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *MatrixCanvas) inBounds(p core.GridPoint) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Get returns the character at the given position.
// Returns ' ' (space) if position is out of bounds.
func (c *MatrixCanvas) Get(p core.GridPoint) rune {
	if !c.inBounds(p) {
		return ' '
	}
	if m := c.marks[p.Y][p.X]; m != 0 {
		return m
	}
	return JunctionRune(c.arms[p.Y][p.X])
}

// Arms returns the line arms recorded at p.
func (c *MatrixCanvas) Arms(p core.GridPoint) Arm {
	if !c.inBounds(p) {
		return ArmNone
	}
	return c.arms[p.Y][p.X]
}

// SetMark places a marker rune at p, hiding any line rune there.
func (c *MatrixCanvas) SetMark(p core.GridPoint, r rune) error {
	if !c.inBounds(p) {
		return ErrOutOfBounds
	}
	c.marks[p.Y][p.X] = r
	return nil
}

// DrawText writes text starting at (x, y), clipping at the right edge.
func (c *MatrixCanvas) DrawText(x, y int, text string) error {
	if y < 0 || y >= c.height {
		return ErrOutOfBounds
	}
	for _, r := range text {
		if x >= c.width {
			break
		}
		if x >= 0 {
			c.marks[y][x] = r
		}
		x++
	}
	return nil
}

// Clear resets the canvas.
func (c *MatrixCanvas) Clear() {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.arms[y][x] = ArmNone
			c.marks[y][x] = 0
		}
	}
}

// DrawSegment joins a and b with a straight line. Both ends must be on the
// canvas and share a row or column.
func (c *MatrixCanvas) DrawSegment(a, b core.GridPoint) error {
	if !c.inBounds(a) || !c.inBounds(b) {
		return ErrOutOfBounds
	}
	if a == b {
		return nil
	}
	if a.X != b.X && a.Y != b.Y {
		return ErrNotOrthogonal
	}

	forward, _ := travelArm(a, b)
	backward := forward.Opposite()
	dx, dy := step(forward)

	p := a
	for p != b {
		next := core.GridPoint{X: p.X + dx, Y: p.Y + dy}
		c.arms[p.Y][p.X] |= forward
		c.arms[next.Y][next.X] |= backward
		p = next
	}
	return nil
}

// DrawPath draws an orthogonal polyline. Consecutive duplicate points are
// skipped. With arrow set, the last point gets an arrow head facing the
// direction of travel and the first point gets the start marker.
func (c *MatrixCanvas) DrawPath(points []core.GridPoint, arrow bool) error {
	points = dedupe(points)
	if len(points) < 2 {
		return ErrShortPath
	}

	for i := 0; i < len(points)-1; i++ {
		if err := c.DrawSegment(points[i], points[i+1]); err != nil {
			return err
		}
	}

	if arrow {
		last := points[len(points)-1]
		travel, _ := travelArm(points[len(points)-2], last)
		c.marks[last.Y][last.X] = arrowFor(travel)
		c.marks[points[0].Y][points[0].X] = StartMarker
	}
	return nil
}

// String returns the canvas as a string with newlines. Trailing spaces on
// each row are trimmed.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		var row strings.Builder
		for x := 0; x < c.width; x++ {
			row.WriteRune(c.Get(core.GridPoint{X: x, Y: y}))
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// travelArm returns the arm pointing from a toward b along a shared axis.
func travelArm(a, b core.GridPoint) (Arm, bool) {
	switch {
	case a.Y == b.Y && b.X > a.X:
		return ArmEast, true
	case a.Y == b.Y && b.X < a.X:
		return ArmWest, true
	case a.X == b.X && b.Y > a.Y:
		return ArmSouth, true
	case a.X == b.X && b.Y < a.Y:
		return ArmNorth, true
	}
	return ArmNone, false
}

func step(a Arm) (dx, dy int) {
	switch a {
	case ArmEast:
		return 1, 0
	case ArmWest:
		return -1, 0
	case ArmSouth:
		return 0, 1
	case ArmNorth:
		return 0, -1
	}
	return 0, 0
}

func dedupe(points []core.GridPoint) []core.GridPoint {
	out := make([]core.GridPoint, 0, len(points))
	for i, p := range points {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
