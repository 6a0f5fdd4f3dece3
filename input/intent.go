package input

import "github.com/lixenwraith/gravwell/engine"

// IntentType discriminates front-end actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit
	IntentEscape
	IntentToggleMute

	// Simulation commands
	IntentPause
	IntentNewGame
	IntentToggleIndicators
	IntentToggleHeadTail
	IntentCycleScoring
	IntentToggleMutual

	// Aiming and camera
	IntentCycleDrag
	IntentOrbitShot
	IntentSelectNext
	IntentZoomIn
	IntentZoomOut

	// Persistence
	IntentSave
	IntentLoad

	// Settings menu
	IntentSettingsMenu
	IntentMenuUp
	IntentMenuDown
	IntentIncrease
	IntentDecrease
)

var intentCommands = map[IntentType]engine.Command{
	IntentPause:            engine.CmdTogglePause,
	IntentNewGame:          engine.CmdNewGame,
	IntentToggleIndicators: engine.CmdToggleIndicators,
	IntentToggleHeadTail:   engine.CmdToggleHeadTail,
	IntentCycleScoring:     engine.CmdCycleScoring,
	IntentToggleMutual:     engine.CmdToggleMutual,
}

// Command returns the simulation command an intent maps to
// ok is false for intents handled by the front-end itself
func (i IntentType) Command() (engine.Command, bool) {
	cmd, ok := intentCommands[i]
	return cmd, ok
}
