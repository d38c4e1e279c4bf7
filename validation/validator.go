package validation

import (
	"fmt"
	"strings"

	"elbow/canvas"
)

// LineValidator validates that rendered connectors follow proper line drawing
// rules: every arm of a line character must meet a character with the
// matching arm, an arrow head, or the start marker.
type LineValidator struct {
	errors     []ValidationError
	allowASCII bool // Allow ASCII characters (-, |, +) mixed with Unicode
}

// ValidationError represents a validation error with location information.
type ValidationError struct {
	X, Y    int
	Char    rune
	Message string
}

// NewLineValidator creates a new validator with default settings.
func NewLineValidator() *LineValidator {
	return &LineValidator{allowASCII: true}
}

// SetAllowASCII controls whether ASCII line characters are accepted.
func (v *LineValidator) SetAllowASCII(allow bool) {
	v.allowASCII = allow
}

// Validate checks rendered art for dangling or mismatched line arms.
func (v *LineValidator) Validate(art string) []ValidationError {
	v.errors = nil

	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}

	for y := range grid {
		for x, char := range grid[y] {
			v.checkCharacter(grid, x, y, char)
		}
	}

	return v.errors
}

var neighbours = []struct {
	arm    canvas.Arm
	dx, dy int
	name   string
}{
	{canvas.ArmNorth, 0, -1, "north"},
	{canvas.ArmEast, 1, 0, "east"},
	{canvas.ArmSouth, 0, 1, "south"},
	{canvas.ArmWest, -1, 0, "west"},
}

// checkCharacter validates a single character's arms against its neighbours.
func (v *LineValidator) checkCharacter(grid [][]rune, x, y int, char rune) {
	arms, ok := canvas.ArmsOf(char)
	if !ok {
		return // text, spaces, markers
	}
	if !v.allowASCII && char < 0x80 {
		v.addError(x, y, char, "ASCII line character not allowed")
		return
	}

	for _, n := range neighbours {
		other := getChar(grid, x+n.dx, y+n.dy)
		otherArms, isLine := canvas.ArmsOf(other)

		if arms.Has(n.arm) {
			if canvas.IsTerminal(other) {
				continue
			}
			if !isLine || !otherArms.Has(n.arm.Opposite()) {
				v.addError(x, y, char, "%s arm meets %q which does not connect back", n.name, other)
			}
		}
	}
}

func getChar(grid [][]rune, x, y int) rune {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return ' '
	}
	return grid[y][x]
}

func (v *LineValidator) addError(x, y int, char rune, format string, args ...interface{}) {
	v.errors = append(v.errors, ValidationError{
		X:       x,
		Y:       y,
		Char:    char,
		Message: fmt.Sprintf(format, args...),
	})
}

// String returns a human-readable error description.
func (e ValidationError) String() string {
	return fmt.Sprintf("(%d,%d) %q: %s", e.X, e.Y, e.Char, e.Message)
}
