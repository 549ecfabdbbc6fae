package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	svc, err := NewTokenService(secret, "HS256")
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret")

	tok, err := svc.Issue("a@x.com", 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret")

	tok, err := svc.Issue("a@x.com", 1, -time.Second)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestTokenService(t, "right-secret").Issue("a@x.com", 1, time.Hour)
	require.NoError(t, err)

	_, err = newTestTokenService(t, "wrong-secret").Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_TamperedPayload(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret")
	tok, err := svc.Issue("a@x.com", 1, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// Flip one character of the payload segment.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MissingSubject(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret")
	tok, err := svc.Issue("", 1, time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret")

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestNewTokenService_UnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("secret", "none")
	require.Error(t, err)

	_, err = NewTokenService("secret", "RS256")
	require.Error(t, err)
}
