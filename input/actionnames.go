package input

// actionRegistry maps canonical action names used in keymap files to intents
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":        IntentQuit,
	"escape":      IntentEscape,
	"toggle_mute": IntentToggleMute,

	"pause":             IntentPause,
	"new_game":          IntentNewGame,
	"toggle_indicators": IntentToggleIndicators,
	"toggle_head_tail":  IntentToggleHeadTail,
	"cycle_scoring":     IntentCycleScoring,
	"toggle_mutual":     IntentToggleMutual,

	"cycle_drag":  IntentCycleDrag,
	"orbit_shot":  IntentOrbitShot,
	"select_next": IntentSelectNext,
	"zoom_in":     IntentZoomIn,
	"zoom_out":    IntentZoomOut,

	"save": IntentSave,
	"load": IntentLoad,

	"settings_menu": IntentSettingsMenu,
	"menu_up":       IntentMenuUp,
	"menu_down":     IntentMenuDown,
	"increase":      IntentIncrease,
	"decrease":      IntentDecrease,
}

// ActionIntent resolves a canonical action name
// Returns IntentNone and false if name is unknown
func ActionIntent(name string) (IntentType, bool) {
	intent, ok := actionRegistry[name]
	return intent, ok
}

// ActionNames returns all registered action names
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
