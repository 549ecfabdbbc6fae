package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepo_CreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	u, err := repo.Create(ctx, " A@X.com ", "hash-1", "Ann")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotZero(t, u.ID)

	got, err := repo.GetByEmail(ctx, "A@x.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestMemoryUserRepo_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	_, err := repo.Create(ctx, "a@x.com", "hash-1", "")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "a@x.com", "hash-2", "")
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, repo.Len())
}

func TestMemoryUserRepo_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	_, err := repo.GetByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, ErrNotFound)
}
