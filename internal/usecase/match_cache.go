package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func MatchCacheKey(requesterID uuid.UUID) string {
	return "matches:user:" + requesterID.String()
}
