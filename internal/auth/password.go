package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an empty plaintext is hashed.
var ErrEmptyPassword = errors.New("password must not be empty")

// PasswordHasher produces and checks salted bcrypt hashes. bcrypt embeds
// a fresh random salt in every hash, so hashing the same password twice
// yields different strings that both verify.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given cost factor. Costs
// outside the bcrypt range fall back to the library default.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of plain.
func (h PasswordHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the bcrypt hash. The comparison
// is constant-time; malformed hashes simply report false.
func (h PasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
