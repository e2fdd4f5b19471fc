// Package state implements StateRepository: the interning, axiom-closing
// store of PackedState values every search algorithm and builder shares.
// It owns all PackedState memory; State values handed out to callers are
// non-owning views plus the StateIndex assigned at interning time.
package state
