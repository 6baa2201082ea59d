package session

import (
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type sessionController struct {
	Gateway      contracts.Gateway
	SessionStore contracts.SessionStore
	View         contracts.SessionView
	Log          *zap.Logger

	mu      sync.Mutex
	state   models.SessionState
	session models.Session
}

func NewSessionController(
	gateway contracts.Gateway,
	sessionStore contracts.SessionStore,
	view contracts.SessionView,
	logger *zap.Logger,
) contracts.SessionController {
	return &sessionController{
		Gateway:      gateway,
		SessionStore: sessionStore,
		View:         view,
		Log:          logger,
		state:        models.SessionUnchecked,
	}
}

// Activate runs Unchecked -> Checking -> Authenticated | Unauthenticated once
// and routes the view. Each call starts over from Unchecked; nothing is
// cached between activations.
func (c *sessionController) Activate(ctx context.Context) models.SessionState {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("sessionController.Activate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	c.transition(models.SessionUnchecked, models.Session{})
	c.transition(models.SessionChecking, models.Session{})

	credential, found, err := c.SessionStore.Load(ctx)
	if err != nil {
		c.Log.Error("sessionController.Activate error calling SessionStore.Load",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		c.transition(models.SessionUnauthenticated, models.Session{})
		c.View.ShowError(exceptions.ClientMessageOf(err))
		c.View.RouteToLogin()
		return models.SessionUnauthenticated
	}
	if !found {
		c.Log.Info("sessionController.Activate no stored credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		c.transition(models.SessionUnauthenticated, models.Session{})
		c.View.RouteToLogin()
		return models.SessionUnauthenticated
	}

	identity, err := c.Gateway.Verify(ctx, credential)
	if err != nil {
		c.Log.Warn("sessionController.Activate credential not verified",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		c.transition(models.SessionUnauthenticated, models.Session{})

		// Only an unreachable backend leaves the credential for the next
		// activation.
		if !exceptions.IsKind(err, exceptions.KindNetwork) {
			if clearErr := c.SessionStore.Clear(ctx); clearErr != nil {
				c.Log.Error("sessionController.Activate error calling SessionStore.Clear",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(clearErr),
				)
			}
		}
		if !exceptions.IsKind(err, exceptions.KindAuth) {
			c.View.ShowError(exceptions.ClientMessageOf(err))
		}
		c.View.RouteToLogin()
		return models.SessionUnauthenticated
	}

	c.transition(models.SessionAuthenticated, models.Session{
		Credential:   credential,
		IdentityName: identity.Username,
		Valid:        true,
	})
	c.Log.Info("sessionController.Activate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	c.View.RouteToHome(identity.Username)
	return models.SessionAuthenticated
}

func (c *sessionController) transition(state models.SessionState, session models.Session) {
	c.mu.Lock()
	c.state = state
	c.session = session
	c.mu.Unlock()

	c.Log.Debug("sessionController state changed",
		zap.String(constvars.LoggingStateKey, state.String()),
	)
}

func (c *sessionController) State() models.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *sessionController) Session() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}
