package game

import "github.com/lixenwraith/term-snake/core"

// Glyph identifies what occupies a drawn cell, the surface picks the rune and style
type Glyph uint8

const (
	GlyphHead Glyph = iota
	GlyphBody
	GlyphApple
)

func (g Glyph) String() string {
	switch g {
	case GlyphHead:
		return "head"
	case GlyphBody:
		return "body"
	case GlyphApple:
		return "apple"
	}
	return "unknown"
}

// Surface is the drawing target for a frame
type Surface interface {
	// Clear blanks the whole surface
	Clear()
	// DrawGlyph places g at board cell p
	DrawGlyph(p core.Position, g Glyph)
	// Show flushes the frame and parks the cursor
	Show()
}
