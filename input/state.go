package input

// KeyEvent is a normalized key transition
// Key is a lower-cased identifier such as "z", "arrowup" or "space"
type KeyEvent struct {
	Key  string
	Down bool
}

// State is the held-key map handed to the motion controller each tick
// Only keys bound in the table are ever stored
type State struct {
	table *KeyTable
	held  map[string]bool
}

// NewState creates an empty state recognizing the table's keys
func NewState(table *KeyTable) *State {
	return &State{
		table: table,
		held:  make(map[string]bool),
	}
}

// Apply records a transition and returns the bound action
// Unbound keys return ActionNone and leave the state untouched
func (s *State) Apply(ev KeyEvent) Action {
	action, ok := s.table.Lookup(ev.Key)
	if !ok {
		return ActionNone
	}
	s.held[ev.Key] = ev.Down
	return action
}

// Action returns the action bound to key
func (s *State) Action(key string) (Action, bool) {
	return s.table.Lookup(key)
}

// KeyHeld reports the held flag of a single key
func (s *State) KeyHeld(key string) bool {
	return s.held[key]
}

// Held reports whether any key bound to action is held
func (s *State) Held(action Action) bool {
	for key, down := range s.held {
		if !down {
			continue
		}
		if a, _ := s.table.Lookup(key); a == action {
			return true
		}
	}
	return false
}

// Stored returns the number of keys tracked so far
func (s *State) Stored() int {
	return len(s.held)
}

// ReleaseAll clears every held flag
func (s *State) ReleaseAll() {
	for k := range s.held {
		s.held[k] = false
	}
}
