package main

import (
	"ccsed-client/internal/app/config"
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/delivery/cli"
	"ccsed-client/internal/app/drivers/database"
	"ccsed-client/internal/app/drivers/logger"
	"ccsed-client/internal/app/drivers/realtime"
	"ccsed-client/internal/app/services/gateway"
	"ccsed-client/internal/app/services/notification"
	"ccsed-client/internal/app/services/shared/redis"
	"ccsed-client/internal/app/services/shared/sessionstore"
	"ccsed-client/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ccsed: %v\n", err)
		return 1
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Error("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
		location = time.Local
	}
	time.Local = location

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	defer func() {
		if err := bootstrap.Shutdown(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}()

	app, err := bootstrapingTheApp(ctx, bootstrap, location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ccsed: %v\n", err)
		return 1
	}
	bootstrap.ChannelStop = app.StopWatchers

	if err := app.RootCommand().Execute(ctx, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "ccsed: %v\n", err)
		}
		return 1
	}
	return 0
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, location *time.Location) (*cli.App, error) {
	// Session store
	sessionStore, err := newSessionStore(ctx, bootstrap)
	if err != nil {
		return nil, err
	}

	// Gateway
	gatewayClient := gateway.NewClient(gateway.NewClientConfig(bootstrap.InternalConfig), bootstrap.Logger)

	// Notification channel
	dialer := realtime.NewWebsocketDialer(bootstrap.InternalConfig)
	channelFactory := notification.NewChannelFactory(bootstrap.InternalConfig, dialer, bootstrap.Logger)

	return cli.NewApp(
		gatewayClient,
		gatewayClient,
		sessionStore,
		channelFactory,
		cli.NewPresenter(os.Stdout, location),
		bootstrap.InternalConfig,
		bootstrap.Logger,
	), nil
}

func newSessionStore(ctx context.Context, bootstrap *config.Bootstrap) (contracts.SessionStore, error) {
	storeConfig := bootstrap.DriverConfig.SessionStore

	switch storeConfig.Driver {
	case constvars.SessionStoreDriverRedis:
		redisClient, err := database.NewRedisClient(ctx, bootstrap.DriverConfig, bootstrap.Logger)
		if err != nil {
			return nil, err
		}
		bootstrap.Redis = redisClient
		return sessionstore.NewRedisStore(redis.NewRedisRepository(redisClient), storeConfig.Key, bootstrap.Logger), nil
	case constvars.SessionStoreDriverFile:
		path := storeConfig.FilePath
		if path == "" {
			defaultPath, err := sessionstore.DefaultFilePath()
			if err != nil {
				return nil, fmt.Errorf("resolve session file location: %w", err)
			}
			path = defaultPath
		}
		return sessionstore.NewFileStore(path, storeConfig.Key, bootstrap.Logger), nil
	default:
		return nil, fmt.Errorf("unknown session store driver %q", storeConfig.Driver)
	}
}
