package core

import (
	"fmt"
	"strings"
)

// Direction is a closed set of movement headings, zero value is invalid
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirNone:  "none",
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// Directions lists every valid direction
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the 180° reversal of d, DirNone for an unrecognised value
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts the lower-case names produced by String
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if directionNames[d] == name {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("parse direction %q: %w", s, ErrDirectionOutOfRange)
}
