package echo

// Handle addresses an arena slot; a stale handle never matches a reused slot
type Handle struct {
	index uint32
	gen   uint32
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// Arena stores values in reusable slots addressed by generation-checked handles
// Removing a value bumps the slot generation so every outstanding handle goes stale
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena creates an empty arena
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.live = true
	s.val = v
	a.live++
	return Handle{index: idx, gen: s.gen}
}

// Get returns a pointer to the live value behind h
// The pointer is valid until the next Insert
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return &s.val, true
}

// Remove frees the slot behind h; false if h is stale
func (a *Arena[T]) Remove(h Handle) bool {
	if int(h.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return false
	}
	var zero T
	s.val = zero
	s.live = false
	s.gen++
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Len returns the number of live values
func (a *Arena[T]) Len() int {
	return a.live
}

// Each calls fn for every live value in slot order
// fn may remove any handle but must not insert
func (a *Arena[T]) Each(fn func(h Handle, v *T)) {
	n := len(a.slots)
	for i := 0; i < n; i++ {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		fn(Handle{index: uint32(i), gen: s.gen}, &s.val)
	}
}

// Clear removes every value, invalidating all handles
func (a *Arena[T]) Clear() {
	for i := range a.slots {
		if a.slots[i].live {
			a.Remove(Handle{index: uint32(i), gen: a.slots[i].gen})
		}
	}
}
