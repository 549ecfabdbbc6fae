package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity facts embedded in an access token: the subject
// (the user's email), the numeric user id, plus the registered expiry
// and issued-at timestamps.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"uid"`
}

// TokenService signs and verifies self-contained HMAC access tokens.
// The secret is loaded once at startup and immutable afterwards.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokenService builds a TokenService for the named HMAC algorithm
// (HS256, HS384 or HS512). Anything else is rejected at startup rather
// than at the first token operation.
func NewTokenService(secret, algorithm string) (*TokenService, error) {
	var method jwt.SigningMethod
	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %q", algorithm)
	}
	return &TokenService{secret: []byte(secret), method: method}, nil
}

// Issue signs a token carrying the subject and user id that expires
// after ttl. The result is URL-safe and self-contained.
func (s *TokenService) Issue(subject string, userID uint64, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	t := jwt.NewWithClaims(s.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return t.SignedString(s.secret)
}

// Verify parses the token and returns its claims. Every failure mode —
// bad signature, wrong algorithm, expiry, malformed input, missing
// subject — comes back as the single ErrInvalidToken so a caller cannot
// probe for why a token was rejected.
func (s *TokenService) Verify(token string) (Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}
	return *claims, nil
}
