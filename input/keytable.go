package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// KeyTable maps normalized key identifiers to actions
// Several keys may share one action (AZERTY letters and arrows both steer)
type KeyTable struct {
	bindings map[string]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		bindings: map[string]Action{
			"z":          ActionForward,
			"arrowup":    ActionForward,
			"s":          ActionBackward,
			"arrowdown":  ActionBackward,
			"q":          ActionLeft,
			"arrowleft":  ActionLeft,
			"d":          ActionRight,
			"arrowright": ActionRight,
			"c":          ActionSpawnClone,
			"v":          ActionSpawnPhantom,
			"space":      ActionPause,
			"m":          ActionToggleMute,
			"escape":     ActionQuit,
			"ctrl+c":     ActionQuit,
		},
	}
}

// Apply overlays config bindings of the form key -> action name
// Binding a key to "none" removes it
func (kt *KeyTable) Apply(overrides map[string]string) error {
	for key, name := range overrides {
		action, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("binding %q: %w", key, err)
		}
		key = strings.ToLower(key)
		if action == ActionNone {
			delete(kt.bindings, key)
			continue
		}
		kt.bindings[key] = action
	}
	return nil
}

// Lookup returns the action bound to key
func (kt *KeyTable) Lookup(key string) (Action, bool) {
	a, ok := kt.bindings[key]
	return a, ok
}

// KeysFor returns every key bound to action, sorted
func (kt *KeyTable) KeysFor(action Action) []string {
	var keys []string
	for _, k := range slices.Sorted(maps.Keys(kt.bindings)) {
		if kt.bindings[k] == action {
			keys = append(keys, k)
		}
	}
	return keys
}
