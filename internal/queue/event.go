// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published when a registration succeeds. It
// carries enough for downstream consumers (welcome mail, analytics) to
// act without querying the primary database. It never includes the
// password hash.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	RegisteredAt string `json:"registered_at"`
}
