package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/user-auth-service/internal/model"
)

// CachedUserRepo wraps a UserRepository with a Redis read-through cache
// for GetByEmail. Entries are short-lived: user records are immutable in
// this service, so the only staleness risk is a deleted account lingering
// until its entry expires. Cache failures fall back to the inner store.
type CachedUserRepo struct {
	inner UserRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedUserRepo decorates inner with a Redis cache. A nil client
// disables caching and returns inner unchanged.
func NewCachedUserRepo(inner UserRepository, rdb *redis.Client, ttl time.Duration) UserRepository {
	if rdb == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedUserRepo{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(email string) string {
	return "user:email:" + strings.ToLower(strings.TrimSpace(email))
}

// Create delegates to the inner store and drops any stale cache entry
// for the address.
func (r *CachedUserRepo) Create(ctx context.Context, email, passwordHash, name string) (model.User, error) {
	u, err := r.inner.Create(ctx, email, passwordHash, name)
	if err != nil {
		return model.User{}, err
	}
	_ = r.rdb.Del(ctx, cacheKey(u.Email)).Err()
	return u, nil
}

// GetByEmail serves from Redis when possible, otherwise queries the
// inner store and populates the cache. Misses and negative results are
// never cached.
func (r *CachedUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	key := cacheKey(email)
	if raw, err := r.rdb.Get(ctx, key).Bytes(); err == nil {
		var u model.User
		if json.Unmarshal(raw, &u) == nil {
			return u, nil
		}
	}
	u, err := r.inner.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if raw, err := json.Marshal(u); err == nil {
		_ = r.rdb.Set(ctx, key, raw, r.ttl).Err()
	}
	return u, nil
}
