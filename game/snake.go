package game

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/term-snake/core"
)

// Snake is an ordered body of cells, head first, with deferred growth
type Snake struct {
	body          []core.Position
	pendingGrowth int
	alive         bool
}

// NewSnake spawns a one-cell snake that grows to initialSize over its first moves
func NewSnake(spawn core.Position, initialSize int) *Snake {
	return &Snake{
		body:          []core.Position{spawn},
		pendingGrowth: max(0, initialSize-1),
		alive:         true,
	}
}

// Head returns the foremost segment
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Len returns the number of materialized segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Alive reports whether the snake can still move, false is permanent
func (s *Snake) Alive() bool {
	return s.alive
}

// PendingGrowth returns queued segments not yet added to the body
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []core.Position {
	return slices.Clone(s.body)
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p core.Position) bool {
	return slices.Contains(s.body, p)
}

// Move advances the head one cell in direction d.
// Hitting the body or leaving the board kills the snake in place and is not an error.
func (s *Snake) Move(d core.Direction) error {
	if !s.alive {
		return fmt.Errorf("move dead snake: %w", core.ErrInvalidOperation)
	}

	newHead, err := s.Head().Step(d)
	if err != nil {
		return err
	}

	if s.Occupies(newHead) || !positionIsValid(newHead) {
		s.alive = false
		return nil
	}

	s.body = slices.Insert(s.body, 0, newHead)

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return nil
}

// Grow queues one segment, realized on the next move
func (s *Snake) Grow() error {
	if !s.alive {
		return fmt.Errorf("grow dead snake: %w", core.ErrInvalidOperation)
	}
	s.pendingGrowth++
	return nil
}

// Render draws the head glyph followed by every body segment
func (s *Snake) Render(surface Surface) {
	surface.DrawGlyph(s.body[0], GlyphHead)
	for _, p := range s.body[1:] {
		surface.DrawGlyph(p, GlyphBody)
	}
}

// positionIsValid only rejects negative coordinates, there is no far wall
func positionIsValid(p core.Position) bool {
	return p.Row >= 0 && p.Col >= 0
}
