package testutil

import (
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/dto/requests"
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Login(ctx context.Context, request *requests.LoginUser) (*contracts.LoginResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*contracts.LoginResult)
	return result, args.Error(1)
}

func (m *MockGateway) Register(ctx context.Context, request *requests.RegisterUser) (*models.Identity, error) {
	args := m.Called(ctx, request)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

func (m *MockGateway) Verify(ctx context.Context, credential models.Credential) (*models.Identity, error) {
	args := m.Called(ctx, credential)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

func (m *MockGateway) ListMyReservations(ctx context.Context, credential models.Credential) ([]models.Reservation, error) {
	args := m.Called(ctx, credential)
	reservations, _ := args.Get(0).([]models.Reservation)
	return reservations, args.Error(1)
}

func (m *MockGateway) CreateReservation(ctx context.Context, credential models.Credential, request *requests.CreateReservation) (string, error) {
	args := m.Called(ctx, credential, request)
	return args.String(0), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, credential models.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context) (models.Credential, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Credential), args.Bool(1), args.Error(2)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MemoryStore is a SessionStore held in memory. LoadErr, when set, is
// returned by every Load.
type MemoryStore struct {
	mu         sync.Mutex
	credential *models.Credential
	LoadErr    error
}

func NewMemoryStore(token string) *MemoryStore {
	store := &MemoryStore{}
	if token != "" {
		credential := models.NewCredential(token)
		store.credential = &credential
	}
	return store
}

func (s *MemoryStore) Save(_ context.Context, credential models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = &credential
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (models.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return models.Credential{}, false, s.LoadErr
	}
	if s.credential == nil {
		return models.Credential{}, false, nil
	}
	return *s.credential, true, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = nil
	return nil
}

// Token returns the stored value, empty when absent.
func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.credential == nil {
		return ""
	}
	return s.credential.Value
}

// FakeChannel is an in-memory NotificationChannel. Deliver plays the role of
// the server pushing an event.
type FakeChannel struct {
	mu         sync.Mutex
	handlers   map[models.EventKind]contracts.EventHandler
	connected  bool
	closed     bool
	ConnectErr error
	EmitErr    error
	emitted    []EmittedEvent
}

type EmittedEvent struct {
	Kind    models.EventKind
	Payload interface{}
}

func NewFakeChannel() *FakeChannel {
	return &FakeChannel{handlers: make(map[models.EventKind]contracts.EventHandler)}
}

func (c *FakeChannel) Connect(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ConnectErr != nil {
		return c.ConnectErr
	}
	if c.closed {
		return errors.New("connect after close")
	}
	c.connected = true
	return nil
}

func (c *FakeChannel) Subscribe(kind models.EventKind, handler contracts.EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[kind] = handler
}

func (c *FakeChannel) Unsubscribe(kind models.EventKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handlers, kind)
}

func (c *FakeChannel) Emit(_ context.Context, kind models.EventKind, payload interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.EmitErr != nil {
		return c.EmitErr
	}
	c.emitted = append(c.emitted, EmittedEvent{Kind: kind, Payload: payload})
	return nil
}

func (c *FakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
	c.closed = true
	return nil
}

// Deliver runs the handler subscribed to kind, if any, and reports whether
// one ran.
func (c *FakeChannel) Deliver(kind models.EventKind) bool {
	c.mu.Lock()
	handler, ok := c.handlers[kind]
	c.mu.Unlock()
	if !ok {
		return false
	}
	handler(models.NotificationEvent{Kind: kind})
	return true
}

func (c *FakeChannel) Subscribed(kind models.EventKind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.handlers[kind]
	return ok
}

func (c *FakeChannel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *FakeChannel) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *FakeChannel) Emitted() []EmittedEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]EmittedEvent{}, c.emitted...)
}
