package director

// Mode is the coarse game state selecting which scene sequence is active.
type Mode int

const (
	ModeNotInGame Mode = iota
	ModeStory
	ModeSpeedRun
)

// InGame reports whether the mode is an active-play mode, as opposed to a
// menu or end state.
func (m Mode) InGame() bool {
	switch m {
	case ModeStory, ModeSpeedRun:
		return true
	}
	return false
}

func (m Mode) String() string {
	switch m {
	case ModeNotInGame:
		return "not_in_game"
	case ModeStory:
		return "story"
	case ModeSpeedRun:
		return "speedrun"
	}
	return "unknown"
}

// ParseMode maps a config-facing mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "story":
		return ModeStory, true
	case "speedrun":
		return ModeSpeedRun, true
	}
	return ModeNotInGame, false
}
