package core

import "fmt"

// Position is a cell on the board. Row grows downward, Col grows to the right
type Position struct {
	Row int
	Col int
}

// Pos is a convenience constructor
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// OffsetRow returns a copy shifted by n rows, n may be negative
func (p Position) OffsetRow(n int) Position {
	return Position{Row: p.Row + n, Col: p.Col}
}

// OffsetCol returns a copy shifted by n columns, n may be negative
func (p Position) OffsetCol(n int) Position {
	return Position{Row: p.Row, Col: p.Col + n}
}

// Step returns the neighbouring cell one unit in direction d
func (p Position) Step(d Direction) (Position, error) {
	switch d {
	case DirUp:
		return p.OffsetRow(-1), nil
	case DirDown:
		return p.OffsetRow(1), nil
	case DirLeft:
		return p.OffsetCol(-1), nil
	case DirRight:
		return p.OffsetCol(1), nil
	}
	return p, fmt.Errorf("step %s: %w", d, ErrDirectionOutOfRange)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
