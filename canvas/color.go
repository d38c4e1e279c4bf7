package canvas

import (
	"strings"

	"elbow/core"
)

// ANSI color codes
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorWhite   = "\033[37m"

	StyleBold = "\033[1m"
	StyleDim  = "\033[2m"
)

// Palette picks the escape sequences used by ColorString.
type Palette struct {
	Line   string
	Marker string
}

// DefaultPalette draws lines green and endpoint markers bold yellow.
var DefaultPalette = Palette{Line: ColorGreen, Marker: StyleBold + ColorYellow}

// GetColorCode returns the ANSI color code for a color name
func GetColorCode(color string) string {
	switch color {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	default:
		return ""
	}
}

// ColorString is String with ANSI colors applied. Runs of cells sharing a
// color share one escape sequence.
func (c *MatrixCanvas) ColorString(p Palette) string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		row := make([]rune, c.width)
		for x := range row {
			row[x] = c.Get(core.GridPoint{X: x, Y: y})
		}
		row = []rune(strings.TrimRight(string(row), " "))

		active := ""
		for _, r := range row {
			code := ""
			switch {
			case r == ' ':
			case IsTerminal(r):
				code = p.Marker
			default:
				code = p.Line
			}
			if code != active {
				if active != "" {
					sb.WriteString(ColorReset)
				}
				sb.WriteString(code)
				active = code
			}
			sb.WriteRune(r)
		}
		if active != "" {
			sb.WriteString(ColorReset)
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
