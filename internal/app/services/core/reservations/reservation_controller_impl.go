package reservations

import (
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/pkg/utils"
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// refetchQueueSize bounds how many resolved events may wait for the loop.
const refetchQueueSize = 16

type reservationController struct {
	Gateway        contracts.Gateway
	SessionStore   contracts.SessionStore
	ChannelFactory contracts.NotificationChannelFactory
	View           contracts.ReservationView
	Log            *zap.Logger

	mu           sync.Mutex
	reservations []models.Reservation
	loading      bool
	mounted      bool
	channel      contracts.NotificationChannel
	refetch      chan struct{}
	stopLoop     context.CancelFunc
	loopDone     chan struct{}
}

func NewReservationController(
	gateway contracts.Gateway,
	sessionStore contracts.SessionStore,
	channelFactory contracts.NotificationChannelFactory,
	view contracts.ReservationView,
	logger *zap.Logger,
) contracts.ReservationController {
	return &reservationController{
		Gateway:        gateway,
		SessionStore:   sessionStore,
		ChannelFactory: channelFactory,
		View:           view,
		Log:            logger,
	}
}

// Mount loads the list, then listens for resolved-attention events until
// Unmount. Mounting twice is a no-op.
func (c *reservationController) Mount(ctx context.Context) {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationController.Mount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.channel = c.ChannelFactory()
	c.refetch = make(chan struct{}, refetchQueueSize)
	loopCtx, stopLoop := context.WithCancel(context.Background())
	c.stopLoop = stopLoop
	c.loopDone = make(chan struct{})
	channel, refetch, loopDone := c.channel, c.refetch, c.loopDone
	c.mu.Unlock()

	go c.refetchLoop(loopCtx, refetch, loopDone)

	c.Load(ctx)

	// Unmount may have run while the first load was in flight.
	if !c.mountedWith(channel) {
		c.Log.Info("reservationController.Mount unmounted before connecting",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}

	channel.Subscribe(models.EventAttentionResolved, c.onAttentionResolved)
	if err := channel.Connect(ctx); err != nil {
		// Live updates are best-effort; the list stays usable without them.
		c.Log.Warn("reservationController.Mount live notifications unavailable",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
	}
}

func (c *reservationController) mountedWith(channel contracts.NotificationChannel) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted && c.channel == channel
}

// Unmount unsubscribes before anything else so no event reaches a torn-down
// view, then stops the refetch loop and closes the channel.
func (c *reservationController) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	channel, stopLoop, loopDone := c.channel, c.stopLoop, c.loopDone
	c.channel = nil
	c.stopLoop = nil
	c.mu.Unlock()

	channel.Unsubscribe(models.EventAttentionResolved)
	stopLoop()
	<-loopDone
	if err := channel.Close(); err != nil {
		c.Log.Warn("reservationController.Unmount error closing channel", zap.Error(err))
	}
	c.Log.Info("reservationController.Unmount succeeded")
}

// onAttentionResolved runs on the channel's dispatch goroutine, so it only
// queues the refetch.
func (c *reservationController) onAttentionResolved(event models.NotificationEvent) {
	c.mu.Lock()
	mounted, refetch := c.mounted, c.refetch
	c.mu.Unlock()
	if !mounted {
		return
	}

	c.Log.Info("reservationController received attention resolved event",
		zap.String(constvars.LoggingEventKey, string(event.Kind)),
	)
	select {
	case refetch <- struct{}{}:
	default:
		c.Log.Warn("reservationController refetch queue full, event dropped")
	}
}

// refetchLoop reloads on each queued event. Cancelling ctx also aborts a
// reload that is still waiting on the gateway.
func (c *reservationController) refetchLoop(ctx context.Context, refetch <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-refetch:
			if ctx.Err() != nil {
				return
			}
			c.View.ShowAlert(constvars.AlertAttentionResolvedTitle, constvars.AlertAttentionResolvedMessage)
			c.Load(ctx)
		}
	}
}

// Load replaces the list with the server's, in server order. On failure the
// previous list stays and a retryable message is shown.
func (c *reservationController) Load(ctx context.Context) {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationController.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	c.setLoading(true)
	defer c.setLoading(false)

	credential, found, err := c.SessionStore.Load(ctx)
	if err != nil {
		c.Log.Error("reservationController.Load error calling SessionStore.Load",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		c.View.ShowError(exceptions.ClientMessageOf(err))
		return
	}
	if !found {
		c.View.RouteToLogin()
		return
	}

	reservations, err := c.Gateway.ListMyReservations(ctx, credential)
	if err != nil {
		if ctx.Err() != nil {
			c.Log.Info("reservationController.Load cancelled",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return
		}
		c.Log.Error("reservationController.Load error calling Gateway.ListMyReservations",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		c.handleGatewayFailure(ctx, err)
		return
	}

	for i := range reservations {
		if reservations[i].Sanitize() {
			c.Log.Warn("reservationController.Load dropped meeting data from an unresolved reservation",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingReservationIDKey, reservations[i].ID),
			)
		}
	}

	c.mu.Lock()
	c.reservations = reservations
	c.mu.Unlock()

	c.Log.Info("reservationController.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(reservations)),
	)
	c.View.ShowReservations(c.Reservations())
}

// handleGatewayFailure clears the credential and routes to login on an auth
// failure; anything else becomes a message and the list is kept.
func (c *reservationController) handleGatewayFailure(ctx context.Context, err error) {
	if exceptions.IsKind(err, exceptions.KindAuth) {
		if clearErr := c.SessionStore.Clear(ctx); clearErr != nil {
			c.Log.Error("reservationController error calling SessionStore.Clear", zap.Error(clearErr))
		}
		c.View.RouteToLogin()
		return
	}
	if exceptions.IsKind(err, exceptions.KindValidation) {
		c.View.ShowError(exceptions.ClientMessageOf(err))
		return
	}
	c.View.ShowError(constvars.ErrClientReservationsUnavailable)
}

func (c *reservationController) setLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
	c.View.ShowLoading(loading)
}

func (c *reservationController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *reservationController) Reservations() []models.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Reservation{}, c.reservations...)
}

func (c *reservationController) find(reservationID string) (models.Reservation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, reservation := range c.reservations {
		if reservation.ID == reservationID {
			return reservation, true
		}
	}
	return models.Reservation{}, false
}

// RequestStaffAttention emits the atencion signal for a loaded, unresolved
// reservation. Delivery is best-effort: channel failures are logged and
// never returned.
func (c *reservationController) RequestStaffAttention(ctx context.Context, reservationID string) error {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationController.RequestStaffAttention called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
	)

	reservation, ok := c.find(reservationID)
	if !ok {
		return exceptions.ErrReservationNotFound(errors.New("not in loaded list"), reservationID)
	}
	if !reservation.CanNotifyStaff() {
		return exceptions.ErrReservationAlreadyResolved(errors.New("already attended"), reservationID)
	}

	c.mu.Lock()
	channel := c.channel
	c.mu.Unlock()

	// Outside a mounted screen a short-lived channel carries the signal.
	if channel == nil {
		channel = c.ChannelFactory()
		defer channel.Close()
		if err := channel.Connect(ctx); err != nil {
			c.Log.Warn("reservationController.RequestStaffAttention channel unavailable",
				append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
			)
			return nil
		}
	}

	signal := requests.AttentionSignal{
		ID:       reservation.ID,
		Username: reservation.PatientName,
		Phone:    reservation.ContactPhone,
	}
	if err := channel.Emit(ctx, models.EventAttentionRequested, signal); err != nil {
		c.Log.Warn("reservationController.RequestStaffAttention emit failed",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		return nil
	}

	c.Log.Info("reservationController.RequestStaffAttention succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
	)
	return nil
}

// CreateReservation validates locally, posts the request and reloads the
// list so the new entry shows up.
func (c *reservationController) CreateReservation(ctx context.Context, request *requests.CreateReservation) (string, error) {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationController.CreateReservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreateReservationRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return "", exceptions.ErrInputValidation(err)
	}

	credential, found, err := c.SessionStore.Load(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		c.View.RouteToLogin()
		return "", exceptions.ErrCredentialAbsent(nil)
	}

	reservationID, err := c.Gateway.CreateReservation(ctx, credential, request)
	if err != nil {
		c.Log.Error("reservationController.CreateReservation error calling Gateway.CreateReservation",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		if exceptions.IsKind(err, exceptions.KindAuth) {
			if clearErr := c.SessionStore.Clear(ctx); clearErr != nil {
				c.Log.Error("reservationController error calling SessionStore.Clear", zap.Error(clearErr))
			}
			c.View.RouteToLogin()
		}
		return "", err
	}

	c.Log.Info("reservationController.CreateReservation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
	)
	c.Load(ctx)
	return reservationID, nil
}
