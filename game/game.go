package game

import (
	"fmt"

	"github.com/lixenwraith/term-snake/core"
)

// Outcome reports what a single tick did
type Outcome uint8

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeDied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	}
	return "unknown"
}

// Game is the Running/Over state machine around one snake and one apple.
// It is not safe for concurrent use, callers serialize all access.
type Game struct {
	board Board
	rng   Random

	snake *Snake
	apple Apple

	// next buffers the latest accepted input so at most one turn applies per tick
	current core.Direction
	next    core.Direction
}

// New starts a game with a length 5 snake at the origin heading right
func New(board Board, rng Random) *Game {
	g := &Game{
		board:   board,
		rng:     rng,
		snake:   NewSnake(Origin, InitialSnakeSize),
		current: core.DirRight,
		next:    core.DirRight,
	}
	g.apple = g.spawnApple()
	return g
}

// IsOver reports whether the snake has died
func (g *Game) IsOver() bool {
	return !g.snake.Alive()
}

// SetDirection buffers d for the next tick.
// Reversing onto the current heading is ignored, only the last call between ticks counts.
func (g *Game) SetDirection(d core.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("set direction %s: %w", d, core.ErrDirectionOutOfRange)
	}
	if d == g.current.Opposite() {
		return nil
	}
	g.next = d
	return nil
}

// Tick applies the buffered direction, moves the snake and resolves eating
func (g *Game) Tick() (Outcome, error) {
	if g.IsOver() {
		return OutcomeDied, fmt.Errorf("tick finished game: %w", core.ErrInvalidOperation)
	}

	g.current = g.next
	if err := g.snake.Move(g.current); err != nil {
		return OutcomeMoved, err
	}
	if !g.snake.Alive() {
		return OutcomeDied, nil
	}

	if g.snake.Head() != g.apple.Position() {
		return OutcomeMoved, nil
	}

	if err := g.snake.Grow(); err != nil {
		return OutcomeAte, err
	}
	g.apple = g.spawnApple()
	return OutcomeAte, nil
}

// Render draws a full frame, it does not change game state
func (g *Game) Render(surface Surface) {
	surface.Clear()
	g.snake.Render(surface)
	g.apple.Render(surface)
	surface.Show()
}

// Direction returns the heading applied on the last tick
func (g *Game) Direction() core.Direction {
	return g.current
}

// Snake exposes the snake for read access, callers must not mutate it
func (g *Game) Snake() *Snake {
	return g.snake
}

func (g *Game) Apple() Apple {
	return g.apple
}

func (g *Game) Board() Board {
	return g.board
}

// spawnApple may land on the snake, placement does not check occupancy
func (g *Game) spawnApple() Apple {
	return NewApple(g.board.RandomCell(g.rng))
}
