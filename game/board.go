package game

import "github.com/lixenwraith/term-snake/core"

const (
	DefaultRows      = 20
	DefaultColumns   = 20
	InitialSnakeSize = 5
)

// Origin is the spawn cell of every new snake
var Origin = core.Pos(0, 0)

// Board holds the grid dimensions used for apple placement
type Board struct {
	Rows    int
	Columns int
}

// DefaultBoard returns the 20x20 board
func DefaultBoard() Board {
	return Board{Rows: DefaultRows, Columns: DefaultColumns}
}

// RandomCell draws row and column independently from [0, Rows] and [0, Columns].
// The bounds are inclusive, one past the nominal board size on each axis.
func (b Board) RandomCell(rng Random) core.Position {
	row := rng.UniformInt(0, b.Rows)
	col := rng.UniformInt(0, b.Columns)
	return core.Pos(row, col)
}
