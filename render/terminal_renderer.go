package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/game"
)

// CellWidth is the number of terminal columns per board column, wide enough for the apple
const CellWidth = 2

// TerminalRenderer draws game frames on a tcell screen
type TerminalRenderer struct {
	screen       tcell.Screen
	defaultStyle tcell.Style
}

// NewTerminalRenderer creates a renderer, the screen must already be initialized
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:       screen,
		defaultStyle: tcell.StyleDefault.Background(RgbBackground),
	}
}

// Clear blanks the screen with the background color
func (r *TerminalRenderer) Clear() {
	r.screen.Fill(' ', r.defaultStyle)
}

// DrawGlyph places a glyph at board cell p, negative cells have no screen location
func (r *TerminalRenderer) DrawGlyph(p core.Position, g game.Glyph) {
	if p.Row < 0 || p.Col < 0 {
		return
	}
	r.screen.SetContent(p.Col*CellWidth, p.Row, GlyphRune(g), nil, GetStyleForGlyph(g))
}

// DrawText writes text starting at terminal cell (x, y), clipped to the screen width
func (r *TerminalRenderer) DrawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// DrawBanner centers text on row y
func (r *TerminalRenderer) DrawBanner(y int, text string) {
	width, _ := r.screen.Size()
	x := (width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.DrawText(x, y, text, BannerStyle())
}

// Show hides the cursor and flushes the frame
func (r *TerminalRenderer) Show() {
	r.screen.HideCursor()
	r.screen.Show()
}

// Sync repaints the whole screen, used after a resize
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}

var _ game.Surface = (*TerminalRenderer)(nil)
