package model

import "time"

// User represents an account record as stored in the `users` table.
// Each field corresponds to a column. The password hash is bcrypt
// output and must never leave the service; handlers define separate
// response types with the appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique, normalized (lower-cased) email address.
//  PasswordHash – bcrypt hash of the password, never the plaintext.
//  Name         – optional display name, empty when not provided.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Name         string    // users.name (nullable)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
