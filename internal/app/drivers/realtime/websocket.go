package realtime

import (
	"ccsed-client/internal/app/config"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

func NewWebsocketDialer(internalConfig *config.InternalConfig) *websocket.Dialer {
	return &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: time.Duration(internalConfig.Realtime.HandshakeTimeoutInSeconds) * time.Second,
		ReadBufferSize:   4096,
		WriteBufferSize:  4096,
	}
}
