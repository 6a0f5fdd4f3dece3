package engine

// Command is a boundary-level action from the input collaborator
type Command uint8

const (
	CmdTogglePause Command = iota
	CmdToggleIndicators
	CmdToggleHeadTail
	CmdNewGame
	CmdCycleScoring
	CmdToggleMutual
)

var commandNames = [...]string{
	CmdTogglePause:      "toggle-pause",
	CmdToggleIndicators: "toggle-indicators",
	CmdToggleHeadTail:   "toggle-head-tail",
	CmdNewGame:          "new-game",
	CmdCycleScoring:     "cycle-scoring",
	CmdToggleMutual:     "toggle-mutual",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// View holds the display toggles owned by the simulation context
type View struct {
	ShowIndicators bool
	ShowHeadTail   bool
}
