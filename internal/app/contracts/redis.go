package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get reports a missing key through found=false rather than an empty value.
	Get(ctx context.Context, key string) (value string, found bool, err error)
}
