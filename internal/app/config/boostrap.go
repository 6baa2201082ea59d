package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Logger         *zap.Logger
	Redis          *redis.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ChannelStop closes any push channel still open when the CLI exits
	ChannelStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ChannelStop != nil {
		b.ChannelStop()
		b.Logger.Debug("Successfully closed realtime channel")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Debug("Successfully closing Redis")
	}

	// Sync on a console sink returns EINVAL on some platforms; nothing to act on.
	_ = b.Logger.Sync()
	return nil
}
