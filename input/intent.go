package input

import "github.com/lixenwraith/term-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit             // Esc, q, Ctrl+C
	IntentToggleEffectMute // Ctrl+S
	IntentTurn             // WASD, arrows, hjkl
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleEffectMute:
		return "mute"
	case IntentTurn:
		return "turn"
	}
	return "none"
}

// Intent is a translated key event, Direction is set only for IntentTurn
type Intent struct {
	Type      IntentType
	Direction core.Direction
}
