package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/user-auth-service/internal/model"
)

// MemoryUserRepo is an in-memory UserRepository used in tests and local
// development. It enforces the same email uniqueness guarantee as the
// MySQL implementation.
type MemoryUserRepo struct {
	mu     sync.RWMutex
	byMail map[string]model.User
	nextID uint64
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{byMail: make(map[string]model.User), nextID: 1}
}

func (r *MemoryUserRepo) Create(_ context.Context, email, passwordHash, name string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byMail[email]; ok {
		return model.User{}, ErrEmailTaken
	}
	now := time.Now().UTC()
	u := model.User{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.nextID++
	r.byMail[email] = u
	return u, nil
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byMail[email]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

// Delete removes a user by email. Account deletion is not part of the
// HTTP surface; this exists so tests can exercise identity resolution
// against a vanished user.
func (r *MemoryUserRepo) Delete(_ context.Context, email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byMail, email)
}

// Len reports the number of stored users.
func (r *MemoryUserRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byMail)
}
