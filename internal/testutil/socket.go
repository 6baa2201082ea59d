package testutil

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SocketEvent is an event a client emitted on the push channel.
type SocketEvent struct {
	Name    string
	Payload json.RawMessage
}

type socketClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *socketClient) send(packet string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, []byte(packet))
}

type socketHub struct {
	upgrader websocket.Upgrader

	mu            sync.Mutex
	clients       map[*socketClient]struct{}
	rejectConnect bool
	pingInterval  int
	pongs         int
	events        chan SocketEvent
	joined        chan struct{}
}

func newSocketHub() *socketHub {
	return &socketHub{
		upgrader:     websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		clients:      make(map[*socketClient]struct{}),
		pingInterval: 25000,
		events:       make(chan SocketEvent, 64),
		joined:       make(chan struct{}, 64),
	}
}

func (h *socketHub) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("EIO") != "4" || r.URL.Query().Get("transport") != "websocket" {
		http.Error(w, "unsupported transport", http.StatusBadRequest)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &socketClient{conn: conn}
	defer conn.Close()

	h.mu.Lock()
	reject := h.rejectConnect
	pingInterval := h.pingInterval
	h.mu.Unlock()

	sid := uuid.NewString()
	open, _ := json.Marshal(map[string]interface{}{
		"sid":          sid,
		"upgrades":     []string{},
		"pingInterval": pingInterval,
		"pingTimeout":  20000,
		"maxPayload":   1000000,
	})
	if err := client.send("0" + string(open)); err != nil {
		return
	}

	_, raw, err := conn.ReadMessage()
	if err != nil || string(raw) != "40" {
		return
	}
	if reject {
		_ = client.send(`44{"message":"not authorized"}`)
		return
	}
	if err := client.send(`40{"sid":"` + uuid.NewString() + `"}`); err != nil {
		return
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.clients, client)
		h.mu.Unlock()
	}()
	h.joined <- struct{}{}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		packet := string(raw)
		switch {
		case packet == "3":
			h.mu.Lock()
			h.pongs++
			h.mu.Unlock()
		case packet == "41" || packet == "1":
			return
		case strings.HasPrefix(packet, "42"):
			var parts []json.RawMessage
			if err := json.Unmarshal(raw[2:], &parts); err != nil || len(parts) == 0 {
				continue
			}
			var name string
			if err := json.Unmarshal(parts[0], &name); err != nil {
				continue
			}
			event := SocketEvent{Name: name}
			if len(parts) > 1 {
				event.Payload = parts[1]
			}
			h.events <- event
		}
	}
}

func (h *socketHub) snapshot() []*socketClient {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := make([]*socketClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	return clients
}

func (h *socketHub) broadcast(packet string) int {
	sent := 0
	for _, client := range h.snapshot() {
		if client.send(packet) == nil {
			sent++
		}
	}
	return sent
}

func (h *socketHub) closeAll() {
	for _, client := range h.snapshot() {
		client.conn.Close()
	}
}

// PushEvent sends a socket.io event to every joined client and reports how
// many received it. A nil payload sends an event without arguments.
func (b *Backend) PushEvent(name string, payload interface{}) int {
	args := []interface{}{name}
	if payload != nil {
		args = append(args, payload)
	}
	data, err := json.Marshal(args)
	if err != nil {
		panic(err)
	}
	return b.sockets.broadcast("42" + string(data))
}

// Ping sends an Engine.IO ping to every joined client.
func (b *Backend) Ping() int {
	return b.sockets.broadcast("2")
}

// DropSockets closes every client connection from the server side.
func (b *Backend) DropSockets() {
	b.sockets.closeAll()
}

func (b *Backend) Pongs() int {
	b.sockets.mu.Lock()
	defer b.sockets.mu.Unlock()
	return b.sockets.pongs
}

func (b *Backend) SocketClients() int {
	b.sockets.mu.Lock()
	defer b.sockets.mu.Unlock()
	return len(b.sockets.clients)
}

func (b *Backend) RejectSocketConnect(reject bool) {
	b.sockets.mu.Lock()
	defer b.sockets.mu.Unlock()
	b.sockets.rejectConnect = reject
}

// SetPingInterval changes the interval advertised in the open packet, in
// milliseconds.
func (b *Backend) SetPingInterval(ms int) {
	b.sockets.mu.Lock()
	defer b.sockets.mu.Unlock()
	b.sockets.pingInterval = ms
}

// WaitForJoin blocks until a client joins the default namespace.
func (b *Backend) WaitForJoin(timeout time.Duration) bool {
	select {
	case <-b.sockets.joined:
		return true
	case <-time.After(timeout):
		return false
	}
}

// NextSocketEvent returns the next event emitted by any client.
func (b *Backend) NextSocketEvent(timeout time.Duration) (SocketEvent, bool) {
	select {
	case event := <-b.sockets.events:
		return event, true
	case <-time.After(timeout):
		return SocketEvent{}, false
	}
}
