package cli

import (
	"ccsed-client/internal/app/config"
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

// App carries the dependencies every command builds its controllers from.
type App struct {
	Gateway          contracts.Gateway
	DirectoryGateway contracts.DirectoryGateway
	SessionStore     contracts.SessionStore
	ChannelFactory   contracts.NotificationChannelFactory
	Presenter        *Presenter
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger

	mu       sync.Mutex
	watchers []contracts.ReservationController
}

func NewApp(
	gateway contracts.Gateway,
	directoryGateway contracts.DirectoryGateway,
	sessionStore contracts.SessionStore,
	channelFactory contracts.NotificationChannelFactory,
	presenter *Presenter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *App {
	return &App{
		Gateway:          gateway,
		DirectoryGateway: directoryGateway,
		SessionStore:     sessionStore,
		ChannelFactory:   channelFactory,
		Presenter:        presenter,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

// report shows the user-facing message of err and returns ErrReported.
func (a *App) report(err error) error {
	a.Presenter.ShowError(exceptions.ClientMessageOf(err))
	return ErrReported
}

func (a *App) track(controller contracts.ReservationController) {
	a.mu.Lock()
	a.watchers = append(a.watchers, controller)
	a.mu.Unlock()
}

// StopWatchers unmounts every reservation list still listening for events.
func (a *App) StopWatchers() {
	a.mu.Lock()
	watchers := a.watchers
	a.watchers = nil
	a.mu.Unlock()

	for _, watcher := range watchers {
		watcher.Unmount()
	}
}
