package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType
	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentEscape,
			tcell.KeyCtrlS:  IntentSave,
			tcell.KeyCtrlL:  IntentLoad,
			tcell.KeyUp:     IntentMenuUp,
			tcell.KeyDown:   IntentMenuDown,
			tcell.KeyLeft:   IntentDecrease,
			tcell.KeyRight:  IntentIncrease,
			tcell.KeyTab:    IntentSelectNext,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			' ': IntentPause,
			'n': IntentNewGame,
			'g': IntentToggleIndicators,
			't': IntentToggleHeadTail,
			'c': IntentCycleScoring,
			'b': IntentToggleMutual,
			'd': IntentCycleDrag,
			'o': IntentOrbitShot,
			'+': IntentZoomIn,
			'=': IntentZoomIn,
			'-': IntentZoomOut,
			's': IntentSave,
			'l': IntentLoad,
			'm': IntentToggleMute,
			'e': IntentSettingsMenu,
			'k': IntentMenuUp,
			'j': IntentMenuDown,
			'h': IntentDecrease,
			'<': IntentDecrease,
			'>': IntentIncrease,
		},
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(kt.SpecialKeys)),
		Runes:       make(map[rune]IntentType, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}
