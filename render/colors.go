package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/game"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbApple      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBanner     = tcell.NewRGBColor(255, 255, 255) // White
	RgbBannerBg   = tcell.NewRGBColor(180, 50, 50)   // Dark Red
)

// glyphRunes holds the rune drawn for each glyph
var glyphRunes = map[game.Glyph]rune{
	game.GlyphHead:  '◉',
	game.GlyphBody:  '■',
	game.GlyphApple: '🍏',
}

// GlyphRune returns the rune for g, '?' for an unknown glyph
func GlyphRune(g game.Glyph) rune {
	if r, ok := glyphRunes[g]; ok {
		return r
	}
	return '?'
}

// GetStyleForGlyph returns the foreground style of g over the background
func GetStyleForGlyph(g game.Glyph) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch g {
	case game.GlyphHead:
		return base.Foreground(RgbSnakeHead).Bold(true)
	case game.GlyphBody:
		return base.Foreground(RgbSnakeBody)
	case game.GlyphApple:
		return base.Foreground(RgbApple)
	}
	return base
}

// BannerStyle is used for the game over message
func BannerStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(RgbBanner).Background(RgbBannerBg).Bold(true)
}
