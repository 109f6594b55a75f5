package world

// Direction represents one of the four orthogonal steps between cells
type Direction int

// Direction constants, in neighbour enumeration order: left, right, up, down
const (
	West Direction = iota
	East
	North
	South
)

// AllDirections returns all valid directions in neighbour enumeration order
func AllDirections() []Direction {
	return []Direction{West, East, North, South}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case East:
		return "East"
	case North:
		return "North"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four orthogonal directions
func (d Direction) IsValid() bool {
	return d >= West && d <= South
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}
