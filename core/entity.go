package core

// Entity identifies a widget in the world
// Zero is reserved for "no entity" and is never allocated
type Entity uint64
