package game

import "github.com/lixenwraith/term-snake/core"

// Apple is a food item. It never moves, Game replaces it after it is eaten
type Apple struct {
	position core.Position
}

func NewApple(p core.Position) Apple {
	return Apple{position: p}
}

func (a Apple) Position() core.Position {
	return a.position
}

func (a Apple) Render(surface Surface) {
	surface.DrawGlyph(a.position, GlyphApple)
}
