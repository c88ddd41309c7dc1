package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name or its first letter, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("engine: unknown direction %q", s)
	}
}

// LineCoords returns the n positions of line number iteration for a move in
// direction dir. Index 0 is the cell nearest the edge the tiles travel toward.
func LineCoords(dir Direction, iteration, n int) []Position {
	coords := make([]Position, n)
	for i := range n {
		switch dir {
		case DirUp:
			coords[i] = Position{Row: i, Col: iteration}
		case DirDown:
			coords[i] = Position{Row: n - 1 - i, Col: iteration}
		case DirLeft:
			coords[i] = Position{Row: iteration, Col: i}
		case DirRight:
			coords[i] = Position{Row: iteration, Col: n - 1 - i}
		default:
			panic(fmt.Sprintf("engine: invalid direction %d", int(dir)))
		}
	}
	return coords
}
