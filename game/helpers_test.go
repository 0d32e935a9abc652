package game

import (
	"fmt"

	"github.com/lixenwraith/term-snake/core"
)

// scriptedRandom replays queued values and records every requested range
type scriptedRandom struct {
	values []int
	calls  [][2]int
}

func newScriptedRandom(values ...int) *scriptedRandom {
	return &scriptedRandom{values: values}
}

func (r *scriptedRandom) UniformInt(low, high int) int {
	r.calls = append(r.calls, [2]int{low, high})
	if len(r.values) == 0 {
		return high
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// applesAt queues row/col pairs for consecutive apple spawns
func applesAt(cells ...core.Position) *scriptedRandom {
	values := make([]int, 0, len(cells)*2)
	for _, c := range cells {
		values = append(values, c.Row, c.Col)
	}
	return newScriptedRandom(values...)
}

type drawCall struct {
	op    string
	pos   core.Position
	glyph Glyph
}

func (c drawCall) String() string {
	if c.op == "draw" {
		return fmt.Sprintf("draw %s at %v", c.glyph, c.pos)
	}
	return c.op
}

// recordingSurface captures the sequence of surface operations
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Clear() {
	s.calls = append(s.calls, drawCall{op: "clear"})
}

func (s *recordingSurface) DrawGlyph(p core.Position, g Glyph) {
	s.calls = append(s.calls, drawCall{op: "draw", pos: p, glyph: g})
}

func (s *recordingSurface) Show() {
	s.calls = append(s.calls, drawCall{op: "show"})
}

func (s *recordingSurface) glyphsAt() map[core.Position]Glyph {
	m := make(map[core.Position]Glyph)
	for _, c := range s.calls {
		if c.op == "draw" {
			m[c.pos] = c.glyph
		}
	}
	return m
}
