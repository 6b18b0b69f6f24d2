package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionConfirm
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputConfig maps actions to the lowercase key names that trigger them.
type InputConfig struct {
	Bindings map[ActionID][]string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]string{
			ActionMoveLeft:  {"a", "arrowleft"},
			ActionMoveRight: {"d", "arrowright"},
			ActionJump:      {" ", "space", "w", "arrowup"},
			ActionConfirm:   {"enter"},
			ActionPause:     {"escape", "p"},
		},
	}
}
