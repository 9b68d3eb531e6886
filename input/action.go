package input

import "fmt"

// Action is the semantic meaning bound to a key
type Action uint8

const (
	ActionNone Action = iota

	// Held actions, sampled every tick by the motion controller
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight

	// Edge actions, fired once per key-down
	ActionSpawnClone
	ActionSpawnPhantom
	ActionPause
	ActionToggleMute
	ActionQuit

	actionCount
)

// actionNames maps canonical config names to actions
var actionNames = map[string]Action{
	"none":          ActionNone,
	"forward":       ActionForward,
	"backward":      ActionBackward,
	"left":          ActionLeft,
	"right":         ActionRight,
	"spawn_clone":   ActionSpawnClone,
	"spawn_phantom": ActionSpawnPhantom,
	"pause":         ActionPause,
	"toggle_mute":   ActionToggleMute,
	"quit":          ActionQuit,
}

// ParseAction resolves a config action name
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Held reports whether the action is a continuous (held) action
func (a Action) Held() bool {
	return a >= ActionForward && a <= ActionRight
}
