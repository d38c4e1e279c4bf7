// Package geometry provides grid quantization and small numeric helpers.
package geometry

import "math"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ManhattanDistance calculates the Manhattan distance between two grid positions.
func ManhattanDistance(x1, y1, x2, y2 int) int {
	return Abs(x2-x1) + Abs(y2-y1)
}

// IsHorizontal returns true if travel from (x1,y1) to (x2,y2) is at least as
// horizontal as it is vertical. Ties count as horizontal.
func IsHorizontal(x1, y1, x2, y2 float64) bool {
	return math.Abs(x2-x1) >= math.Abs(y2-y1)
}
