package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/game"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawGlyphPlacement(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	tests := []struct {
		name  string
		pos   core.Position
		glyph game.Glyph
		x, y  int
	}{
		{"Head at origin", core.Pos(0, 0), game.GlyphHead, 0, 0},
		{"Body", core.Pos(3, 4), game.GlyphBody, 8, 3},
		{"Apple", core.Pos(10, 20), game.GlyphApple, 40, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.DrawGlyph(tt.pos, tt.glyph)
			if got := runeAt(screen, tt.x, tt.y); got != GlyphRune(tt.glyph) {
				t.Errorf("rune at (%d,%d) = %q, want %q", tt.x, tt.y, got, GlyphRune(tt.glyph))
			}
		})
	}
}

func TestDrawGlyphSkipsNegativeCells(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	r := NewTerminalRenderer(screen)
	r.Clear()

	r.DrawGlyph(core.Pos(-1, 0), game.GlyphHead)
	r.DrawGlyph(core.Pos(0, -1), game.GlyphHead)

	for x := 0; x < 20; x++ {
		if got := runeAt(screen, x, 0); got != ' ' {
			t.Errorf("unexpected rune %q at (%d,0)", got, x)
		}
	}
}

func TestClearFillsBackground(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	r := NewTerminalRenderer(screen)

	r.DrawGlyph(core.Pos(1, 1), game.GlyphBody)
	r.Clear()

	if got := runeAt(screen, CellWidth, 1); got != ' ' {
		t.Errorf("Clear left %q behind", got)
	}
	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != RgbBackground {
		t.Errorf("background = %v, want %v", bg, RgbBackground)
	}
}

// fixedRandom always returns the same value within range
type fixedRandom int

func (f fixedRandom) UniformInt(low, high int) int {
	return min(max(int(f), low), high)
}

func TestRenderGameFrame(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	g := game.New(game.DefaultBoard(), fixedRandom(10))
	g.Tick()
	g.Tick()
	g.Render(r)

	want := map[[2]int]rune{
		{2 * CellWidth, 0}:   GlyphRune(game.GlyphHead),
		{1 * CellWidth, 0}:   GlyphRune(game.GlyphBody),
		{0, 0}:               GlyphRune(game.GlyphBody),
		{10 * CellWidth, 10}: GlyphRune(game.GlyphApple),
	}
	for xy, ch := range want {
		if got := runeAt(screen, xy[0], xy[1]); got != ch {
			t.Errorf("rune at (%d,%d) = %q, want %q", xy[0], xy[1], got, ch)
		}
	}
	if got := runeAt(screen, 3*CellWidth, 0); got != ' ' {
		t.Errorf("cell ahead of the head = %q, want blank", got)
	}
}

func TestDrawBannerCentered(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	r := NewTerminalRenderer(screen)

	r.DrawBanner(2, "GAME OVER")

	// (20 - 9) / 2 = 5
	want := "GAME OVER"
	for i, ch := range want {
		if got := runeAt(screen, 5+i, 2); got != ch {
			t.Errorf("banner rune %d = %q, want %q", i, got, ch)
		}
	}
}

func TestDrawTextClipsAtWidth(t *testing.T) {
	screen := newSimScreen(t, 4, 1)
	r := NewTerminalRenderer(screen)

	r.DrawText(2, 0, "abcdef", tcell.StyleDefault)

	if got := runeAt(screen, 3, 0); got != 'b' {
		t.Errorf("rune at x=3 = %q, want 'b'", got)
	}
}

func TestGlyphStyles(t *testing.T) {
	tests := []struct {
		glyph  game.Glyph
		wantFg tcell.Color
	}{
		{game.GlyphHead, RgbSnakeHead},
		{game.GlyphBody, RgbSnakeBody},
		{game.GlyphApple, RgbApple},
	}

	for _, tt := range tests {
		t.Run(tt.glyph.String(), func(t *testing.T) {
			fg, bg, _ := GetStyleForGlyph(tt.glyph).Decompose()
			if fg != tt.wantFg {
				t.Errorf("foreground = %v, want %v", fg, tt.wantFg)
			}
			if bg != RgbBackground {
				t.Errorf("background = %v, want %v", bg, RgbBackground)
			}
		})
	}

	if GlyphRune(game.Glyph(99)) != '?' {
		t.Error("unknown glyph should render as '?'")
	}
	if GlyphRune(game.GlyphHead) == GlyphRune(game.GlyphBody) {
		t.Error("head and body must be distinct")
	}
}
