package usecase

import (
	"context"
	"time"
)

// MatchCache is the slice of the cache the ranking path needs. A nil or
// unavailable cache degrades to computing every call.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const matchCacheTTL = 30 * time.Second

func matchesCacheKey(userID string) string {
	return "matches:user:" + userID
}
