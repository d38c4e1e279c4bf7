package canvas

// Arm is a bit set of the directions a box-drawing character connects to.
type Arm uint8

const (
	ArmNorth Arm = 1 << iota
	ArmEast
	ArmSouth
	ArmWest

	ArmNone Arm = 0
)

// Opposite returns the arm pointing the other way. Only defined for single arms.
func (a Arm) Opposite() Arm {
	switch a {
	case ArmNorth:
		return ArmSouth
	case ArmEast:
		return ArmWest
	case ArmSouth:
		return ArmNorth
	case ArmWest:
		return ArmEast
	default:
		return ArmNone
	}
}

// Has reports whether all arms in b are set in a.
func (a Arm) Has(b Arm) bool {
	return a&b == b
}

// Junction runes keyed by the arms they connect. Corners are rounded.
var junctionRunes = map[Arm]rune{
	ArmNorth:                               '╵',
	ArmEast:                                '╶',
	ArmSouth:                               '╷',
	ArmWest:                                '╴',
	ArmEast | ArmWest:                      '─',
	ArmNorth | ArmSouth:                    '│',
	ArmEast | ArmSouth:                     '╭',
	ArmWest | ArmSouth:                     '╮',
	ArmNorth | ArmEast:                     '╰',
	ArmNorth | ArmWest:                     '╯',
	ArmNorth | ArmEast | ArmSouth:          '├',
	ArmNorth | ArmWest | ArmSouth:          '┤',
	ArmEast | ArmWest | ArmSouth:           '┬',
	ArmNorth | ArmEast | ArmWest:           '┴',
	ArmNorth | ArmEast | ArmSouth | ArmWest: '┼',
}

// runeArms is the reverse of junctionRunes plus square corners and ASCII.
var runeArms = map[rune]Arm{
	'┌': ArmEast | ArmSouth,
	'┐': ArmWest | ArmSouth,
	'└': ArmNorth | ArmEast,
	'┘': ArmNorth | ArmWest,
	'-': ArmEast | ArmWest,
	'|': ArmNorth | ArmSouth,
	'+': ArmNorth | ArmEast | ArmSouth | ArmWest,
}

func init() {
	for arms, r := range junctionRunes {
		runeArms[r] = arms
	}
}

// JunctionRune returns the box-drawing rune for a set of arms.
func JunctionRune(arms Arm) rune {
	if r, ok := junctionRunes[arms]; ok {
		return r
	}
	return ' '
}

// ArmsOf returns the arms of a box-drawing rune. ok is false for anything
// that is not a line character.
func ArmsOf(r rune) (Arm, bool) {
	arms, ok := runeArms[r]
	return arms, ok
}

// Markers drawn at the ends of a connector.
const (
	StartMarker = '●'
	ArrowEast   = '▶'
	ArrowWest   = '◀'
	ArrowNorth  = '▲'
	ArrowSouth  = '▼'
)

// IsTerminal reports whether r ends a line: an arrow head or the start marker.
func IsTerminal(r rune) bool {
	switch r {
	case StartMarker, ArrowEast, ArrowWest, ArrowNorth, ArrowSouth,
		'>', '<', '^', 'v', 'o':
		return true
	}
	return false
}

// arrowFor returns the arrow head for travel along arm.
func arrowFor(travel Arm) rune {
	switch travel {
	case ArmEast:
		return ArrowEast
	case ArmWest:
		return ArrowWest
	case ArmNorth:
		return ArrowNorth
	default:
		return ArrowSouth
	}
}
