package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent

	// Ctrl+rune bindings for terminals that report control keys as runes
	CtrlRunes map[rune]Intent
}

// DefaultKeyTable returns WASD, arrows and vi keys for turning
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleEffectMute},
			tcell.KeyUp:     turn(core.DirUp),
			tcell.KeyDown:   turn(core.DirDown),
			tcell.KeyLeft:   turn(core.DirLeft),
			tcell.KeyRight:  turn(core.DirRight),
		},

		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},

			'w': turn(core.DirUp),
			'a': turn(core.DirLeft),
			's': turn(core.DirDown),
			'd': turn(core.DirRight),

			'k': turn(core.DirUp),
			'h': turn(core.DirLeft),
			'j': turn(core.DirDown),
			'l': turn(core.DirRight),
		},

		CtrlRunes: map[rune]Intent{
			'c': {Type: IntentQuit},
			's': {Type: IntentToggleEffectMute},
		},
	}
}

// Translate resolves a key event against the table, unknown keys yield IntentNone
func (kt *KeyTable) Translate(ev *tcell.EventKey) Intent {
	if ev == nil {
		return Intent{}
	}

	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return kt.CtrlRunes[r]
		}
		if intent, ok := kt.Runes[r]; ok {
			return intent
		}
		return Intent{}
	}

	if intent, ok := kt.SpecialKeys[ev.Key()]; ok {
		return intent
	}
	return Intent{}
}

func turn(d core.Direction) Intent {
	return Intent{Type: IntentTurn, Direction: d}
}
