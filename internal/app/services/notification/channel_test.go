package notification

import (
	"ccsed-client/internal/app/config"
	"ccsed-client/internal/app/drivers/realtime"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/testutil"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const waitFor = 2 * time.Second

func newTestChannel(t *testing.T, backend *testutil.Backend) *Channel {
	t.Helper()
	internalConfig := &config.InternalConfig{
		Realtime: config.AppRealtime{
			Url:                       backend.URL(),
			HandshakeTimeoutInSeconds: 2,
			PingTimeoutInSeconds:      5,
		},
	}
	channel := NewChannel(internalConfig, realtime.NewWebsocketDialer(internalConfig), zap.NewNop())
	t.Cleanup(func() { channel.Close() })
	return channel
}

func TestChannel_ConnectIsIdempotent(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	require.NoError(t, channel.Connect(context.Background()))
	require.True(t, backend.WaitForJoin(waitFor))
	require.NoError(t, channel.Connect(context.Background()))

	assert.Equal(t, 1, backend.SocketClients())
}

func TestChannel_DispatchesSubscribedEvents(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	received := make(chan models.NotificationEvent, 4)
	channel.Subscribe(models.EventAttentionResolved, func(event models.NotificationEvent) {
		received <- event
	})
	require.NoError(t, channel.Connect(context.Background()))
	require.True(t, backend.WaitForJoin(waitFor))

	assert.Equal(t, 1, backend.PushEvent("notificacionAtencion", nil))

	select {
	case event := <-received:
		assert.Equal(t, models.EventAttentionResolved, event.Kind)
		assert.Nil(t, event.Payload)
		assert.False(t, event.ReceivedAt.IsZero())
	case <-time.After(waitFor):
		t.Fatal("event was not dispatched")
	}
}

func TestChannel_UnsubscribeStopsDelivery(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	var resolved, other atomic.Int32
	channel.Subscribe(models.EventAttentionResolved, func(models.NotificationEvent) { resolved.Add(1) })
	channel.Subscribe("otroEvento", func(models.NotificationEvent) { other.Add(1) })
	require.NoError(t, channel.Connect(context.Background()))
	require.True(t, backend.WaitForJoin(waitFor))

	channel.Unsubscribe(models.EventAttentionResolved)
	backend.PushEvent("notificacionAtencion", nil)
	// Events are dispatched in order, so once the second one lands the
	// first has been handled or dropped.
	backend.PushEvent("otroEvento", map[string]string{"x": "y"})

	assert.Eventually(t, func() bool { return other.Load() == 1 }, waitFor, 10*time.Millisecond)
	assert.Equal(t, int32(0), resolved.Load())
}

func TestChannel_EmitReachesServer(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	require.NoError(t, channel.Connect(context.Background()))
	require.True(t, backend.WaitForJoin(waitFor))

	signal := requests.AttentionSignal{ID: "r1", Username: "Ana", Phone: "+59170000000"}
	require.NoError(t, channel.Emit(context.Background(), models.EventAttentionRequested, signal))

	event, ok := backend.NextSocketEvent(waitFor)
	require.True(t, ok)
	assert.Equal(t, "atencion", event.Name)

	var got requests.AttentionSignal
	require.NoError(t, json.Unmarshal(event.Payload, &got))
	assert.Equal(t, signal, got)
}

func TestChannel_EmitWithoutConnection(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	err := channel.Emit(context.Background(), models.EventAttentionRequested, nil)
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindChannel))
}

func TestChannel_AnswersPings(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	require.NoError(t, channel.Connect(context.Background()))
	require.True(t, backend.WaitForJoin(waitFor))

	backend.Ping()
	assert.Eventually(t, func() bool { return backend.Pongs() == 1 }, waitFor, 10*time.Millisecond)
}

func TestChannel_RejectedNamespace(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	backend.RejectSocketConnect(true)
	channel := newTestChannel(t, backend)

	err := channel.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindChannel))
}

func TestChannel_DialFailure(t *testing.T) {
	backend := testutil.NewBackend()
	channel := newTestChannel(t, backend)
	backend.Close()

	err := channel.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindChannel))
}

func TestChannel_DropIsSilent(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	require.NoError(t, channel.Connect(context.Background()))
	require.True(t, backend.WaitForJoin(waitFor))

	backend.DropSockets()
	assert.Eventually(t, func() bool {
		err := channel.Emit(context.Background(), models.EventAttentionRequested, nil)
		return exceptions.IsKind(err, exceptions.KindChannel)
	}, waitFor, 10*time.Millisecond)

	// A fresh Connect dials again.
	require.NoError(t, channel.Connect(context.Background()))
	assert.True(t, backend.WaitForJoin(waitFor))
}

func TestChannel_CloseIsIdempotent(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	require.NoError(t, channel.Connect(context.Background()))
	require.True(t, backend.WaitForJoin(waitFor))

	require.NoError(t, channel.Close())
	require.NoError(t, channel.Close())
	assert.Eventually(t, func() bool { return backend.SocketClients() == 0 }, waitFor, 10*time.Millisecond)
}

func TestChannel_ConnectAfterCloseDoesNotDial(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	channel := newTestChannel(t, backend)

	require.NoError(t, channel.Close())

	err := channel.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindChannel))
	assert.False(t, backend.WaitForJoin(200*time.Millisecond))
	assert.Equal(t, 0, backend.SocketClients())
}
