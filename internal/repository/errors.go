// Package repository defines the user store contract and its
// implementations. Sentinel errors let higher layers distinguish the
// failure scenarios they care about without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when no user matches the lookup key.
var ErrNotFound = errors.New("user not found")

// ErrEmailTaken is returned when an insert violates the unique email
// index. The index is the authoritative guard against concurrent
// registrations with the same address; any advisory pre-check above
// this layer only exists to produce a friendlier error.
var ErrEmailTaken = errors.New("email already exists")
