// Package auth implements the core authentication mechanics: password
// hashing, access token issuance and verification, and the orchestration
// of registration, login and identity resolution over an abstract user
// store. All operations are stateless; the only shared state is the
// injected repository handle and the signing secret, both read-only
// after construction.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/user-auth-service/internal/model"
	"github.com/iliyamo/user-auth-service/internal/repository"
)

// DefaultTokenTTL is the access token lifetime used when none is
// configured (24 hours).
const DefaultTokenTTL = 1440 * time.Minute

// Service orchestrates registration, login and identity resolution.
type Service struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens *TokenService
	ttl    time.Duration
}

// NewService wires the auth service. A zero ttl selects DefaultTokenTTL.
func NewService(users repository.UserRepository, hasher PasswordHasher, tokens *TokenService, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{users: users, hasher: hasher, tokens: tokens, ttl: ttl}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account for the email/password pair. The lookup
// runs before the hash so a conflicting registration costs no bcrypt
// work; the storage-layer unique index still decides races, so a loser
// of two simultaneous registrations gets ErrEmailTaken either way.
func (s *Service) Register(ctx context.Context, email, password, name string) (model.User, error) {
	email = normalizeEmail(email)
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return model.User{}, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return model.User{}, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, err
	}
	u, err := s.users.Create(ctx, email, hash, name)
	if errors.Is(err, repository.ErrEmailTaken) {
		return model.User{}, ErrEmailTaken
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Login verifies the credentials and mints an access token with the
// user's email as subject. An unknown email and a wrong password return
// the identical ErrInvalidCredentials so the error shape cannot be used
// to enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.Email, u.ID, s.ttl)
}

// ResolveIdentity turns a presented token into a verified caller
// identity. The user is re-fetched by the token's subject email rather
// than trusted from the embedded id; a token for a deleted account
// resolves to ErrUnauthorized like any other invalid token.
func (s *Service) ResolveIdentity(ctx context.Context, token string) (Identity, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return Identity{}, ErrUnauthorized
	}
	u, err := s.users.GetByEmail(ctx, claims.Subject)
	if errors.Is(err, repository.ErrNotFound) {
		return Identity{}, ErrUnauthorized
	}
	if err != nil {
		return Identity{}, err
	}
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name}, nil
}
