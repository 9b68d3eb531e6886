package core

// Entity is a stable handle into the scene arena
// Zero is never issued and means "no entity"
type Entity uint64
