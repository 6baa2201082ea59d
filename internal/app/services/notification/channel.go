package notification

import (
	"ccsed-client/internal/app/config"
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeTimeout = 10 * time.Second

// Channel is a socket.io client over a single websocket. It never
// reconnects: once the connection drops, events stop until Connect is
// called again.
type Channel struct {
	realtimeUrl      string
	dialer           *websocket.Dialer
	handshakeTimeout time.Duration
	fallbackTimeout  time.Duration
	Log              *zap.Logger

	mu        sync.Mutex
	conn      *websocket.Conn
	handlers  map[models.EventKind]contracts.EventHandler
	readDone  chan struct{}
	closed    bool
	writeLock sync.Mutex
}

func NewChannel(internalConfig *config.InternalConfig, dialer *websocket.Dialer, logger *zap.Logger) *Channel {
	return &Channel{
		realtimeUrl:      internalConfig.Realtime.Url,
		dialer:           dialer,
		handshakeTimeout: time.Duration(internalConfig.Realtime.HandshakeTimeoutInSeconds) * time.Second,
		fallbackTimeout:  time.Duration(internalConfig.Realtime.PingTimeoutInSeconds) * time.Second,
		Log:              logger,
		handlers:         make(map[models.EventKind]contracts.EventHandler),
	}
}

// NewChannelFactory gives every caller its own Channel sharing one dialer.
func NewChannelFactory(internalConfig *config.InternalConfig, dialer *websocket.Dialer, logger *zap.Logger) contracts.NotificationChannelFactory {
	return func() contracts.NotificationChannel {
		return NewChannel(internalConfig, dialer, logger)
	}
}

func socketURL(realtimeUrl string) (string, error) {
	u, err := url.Parse(strings.TrimRight(realtimeUrl, "/"))
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported realtime url scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + constvars.EndpointRealtimeSocketPath
	query := url.Values{}
	query.Set("EIO", constvars.EngineIOProtocolVersion)
	query.Set("transport", constvars.EngineIOTransport)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// Connect dials and completes the socket.io handshake. Calling it on a
// live channel is a no-op; a closed channel never dials again.
func (c *Channel) Connect(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("notification.Channel.Connect called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return exceptions.ErrChannelNotConnected(errors.New("connect after close"))
	}
	if c.conn != nil {
		return nil
	}

	target, err := socketURL(c.realtimeUrl)
	if err != nil {
		return exceptions.ErrChannelDial(err)
	}

	header := http.Header{}
	header.Set(constvars.HeaderUserAgent, constvars.UserAgentCLI)
	if requestID != "" {
		header.Set(constvars.HeaderXRequestID, requestID)
	}

	conn, _, err := c.dialer.DialContext(ctx, target, header)
	if err != nil {
		c.Log.Error("notification.Channel.Connect error dialing realtime endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrChannelDial(err)
	}

	liveness, err := c.handshake(ctx, conn)
	if err != nil {
		conn.Close()
		c.Log.Error("notification.Channel.Connect error during handshake",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrChannelHandshake(err)
	}

	c.conn = conn
	c.readDone = make(chan struct{})
	go c.readLoop(conn, liveness, c.readDone)

	c.Log.Info("notification.Channel.Connect succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// handshake reads the Engine.IO open packet, joins the default namespace and
// returns how long the read loop may wait between server packets.
func (c *Channel) handshake(ctx context.Context, conn *websocket.Conn) (time.Duration, error) {
	deadline := time.Now().Add(c.handshakeTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return 0, err
	}

	_, raw, err := conn.ReadMessage()
	if err != nil {
		return 0, err
	}
	packetType, data, err := splitEnginePacket(raw)
	if err != nil {
		return 0, err
	}
	if packetType != constvars.EnginePacketOpen {
		return 0, fmt.Errorf("expected open packet, got %q", packetType)
	}
	open, err := parseOpenPayload(data)
	if err != nil {
		return 0, err
	}

	liveness := c.fallbackTimeout
	if open.PingInterval > 0 || open.PingTimeout > 0 {
		liveness = time.Duration(open.PingInterval+open.PingTimeout) * time.Millisecond
	}

	if err := c.write(conn, encodeControlPacket(constvars.EnginePacketMessage, constvars.SocketPacketConnect)); err != nil {
		return 0, err
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return 0, err
		}
		packetType, data, err := splitEnginePacket(raw)
		if err != nil {
			continue
		}
		switch packetType {
		case constvars.EnginePacketPing:
			if err := c.write(conn, encodeControlPacket(constvars.EnginePacketPong)); err != nil {
				return 0, err
			}
		case constvars.EnginePacketClose:
			return 0, errors.New("server closed the connection during handshake")
		case constvars.EnginePacketMessage:
			packet, err := parseSocketPacket(data)
			if err != nil || packet.Namespace != "" {
				continue
			}
			switch packet.Type {
			case constvars.SocketPacketConnect:
				return liveness, conn.SetReadDeadline(time.Time{})
			case constvars.SocketPacketConnectError:
				var payload connectErrorPayload
				_ = json.Unmarshal(packet.Data, &payload)
				return 0, fmt.Errorf("namespace connect refused: %s", payload.Message)
			}
		}
	}
}

func (c *Channel) readLoop(conn *websocket.Conn, liveness time.Duration, done chan struct{}) {
	defer close(done)
	defer c.dropConnection(conn)

	for {
		if liveness > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(liveness)); err != nil {
				return
			}
		}
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !c.isClosed() {
				c.Log.Warn("notification.Channel connection dropped, live events stopped", zap.Error(err))
			}
			return
		}

		packetType, data, err := splitEnginePacket(raw)
		if err != nil {
			continue
		}

		switch packetType {
		case constvars.EnginePacketPing:
			if err := c.write(conn, encodeControlPacket(constvars.EnginePacketPong)); err != nil {
				c.Log.Warn("notification.Channel error answering ping", zap.Error(err))
				return
			}
		case constvars.EnginePacketClose:
			c.Log.Info("notification.Channel server closed the connection")
			return
		case constvars.EnginePacketMessage:
			if stop := c.handleSocketPacket(data); stop {
				c.Log.Info("notification.Channel server disconnected the namespace")
				return
			}
		}
	}
}

func (c *Channel) handleSocketPacket(data []byte) bool {
	packet, err := parseSocketPacket(data)
	if err != nil || packet.Namespace != "" {
		return false
	}

	switch packet.Type {
	case constvars.SocketPacketDisconnect:
		return true
	case constvars.SocketPacketEvent:
		name, payload, err := decodeEventData(packet.Data)
		if err != nil {
			c.Log.Warn("notification.Channel ignoring malformed event", zap.Error(err))
			return false
		}
		c.dispatch(models.NotificationEvent{
			Kind:       models.EventKind(name),
			Payload:    payload,
			ReceivedAt: time.Now(),
		})
	}
	return false
}

// dispatch runs the handler on the read goroutine, outside the lock, so a
// handler may call Unsubscribe or Emit.
func (c *Channel) dispatch(event models.NotificationEvent) {
	c.mu.Lock()
	handler, ok := c.handlers[event.Kind]
	c.mu.Unlock()

	if !ok {
		c.Log.Debug("notification.Channel event without subscriber",
			zap.String(constvars.LoggingEventKey, string(event.Kind)),
		)
		return
	}
	c.Log.Debug("notification.Channel dispatching event",
		zap.String(constvars.LoggingEventKey, string(event.Kind)),
	)
	handler(event)
}

func (c *Channel) dropConnection(conn *websocket.Conn) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.mu.Unlock()
	conn.Close()
}

func (c *Channel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Subscribe replaces any handler already registered for kind. It may be
// called before Connect.
func (c *Channel) Subscribe(kind models.EventKind, handler contracts.EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[kind] = handler
}

func (c *Channel) Unsubscribe(kind models.EventKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handlers, kind)
}

// Emit is fire-and-forget: no acknowledgement is requested.
func (c *Channel) Emit(ctx context.Context, kind models.EventKind, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("notification.Channel.Emit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, string(kind)),
	)

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return exceptions.ErrChannelNotConnected(errors.New("emit before connect or after drop"))
	}

	packet, err := encodeEventPacket(string(kind), payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := c.write(conn, packet); err != nil {
		c.Log.Error("notification.Channel.Emit error writing packet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrChannelWrite(err)
	}
	return nil
}

func (c *Channel) write(conn *websocket.Conn, packet []byte) error {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, packet)
}

// Close leaves the namespace, closes the socket and waits for the read loop.
// It is safe to call more than once, and it also works before Connect.
func (c *Channel) Close() error {
	c.mu.Lock()
	conn := c.conn
	done := c.readDone
	c.closed = true
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	_ = c.write(conn, encodeControlPacket(constvars.EnginePacketMessage, constvars.SocketPacketDisconnect))
	_ = c.write(conn, encodeControlPacket(constvars.EnginePacketClose))
	// The read loop may have closed the socket already.
	_ = conn.Close()
	if done != nil {
		<-done
	}
	c.Log.Info("notification.Channel closed")
	return nil
}
