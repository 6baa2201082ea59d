package reservations

import (
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/testutil"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const waitFor = 2 * time.Second

type fixture struct {
	gateway    *testutil.MockGateway
	store      *testutil.MemoryStore
	channel    *testutil.FakeChannel
	view       *testutil.ReservationViewRecorder
	controller contracts.ReservationController
}

func newFixture(t *testing.T, token string) *fixture {
	t.Helper()
	f := &fixture{
		gateway: new(testutil.MockGateway),
		store:   testutil.NewMemoryStore(token),
		channel: testutil.NewFakeChannel(),
		view:    &testutil.ReservationViewRecorder{},
	}
	factory := func() contracts.NotificationChannel { return f.channel }
	f.controller = NewReservationController(f.gateway, f.store, factory, f.view, zap.NewNop())
	return f
}

func pending(id string, attentionType models.AttentionType) models.Reservation {
	return models.Reservation{ID: id, AttentionType: attentionType, PatientName: "Ana", ContactPhone: "+59170000000"}
}

func TestReservationController_UnresolvedVirtualHasNoMeetingLink(t *testing.T) {
	f := newFixture(t, "T1")
	f.gateway.On("ListMyReservations", mock.Anything, models.NewCredential("T1")).
		Return([]models.Reservation{pending("r1", models.AttentionVirtual)}, nil)

	f.controller.Load(context.Background())

	reservations := f.controller.Reservations()
	require.Len(t, reservations, 1)
	assert.Equal(t, "r1", reservations[0].ID)
	assert.True(t, reservations[0].IsVirtual())
	assert.False(t, reservations[0].Resolved)
	assert.False(t, reservations[0].CanJoinMeeting())
	assert.True(t, reservations[0].CanNotifyStaff())
	assert.False(t, f.controller.Loading())
	assert.Equal(t, []bool{true, false}, f.view.LoadingLog())
}

func TestReservationController_ResolvedEventRefetchesAndEnablesMeeting(t *testing.T) {
	f := newFixture(t, "T1")
	resolved := pending("r1", models.AttentionVirtual)
	resolved.Resolved = true
	resolved.MeetingLink = "https://meet/x"

	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
		Return([]models.Reservation{pending("r1", models.AttentionVirtual)}, nil).Once()
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
		Return([]models.Reservation{resolved}, nil).Once()

	f.controller.Mount(context.Background())
	defer f.controller.Unmount()

	require.True(t, f.channel.Connected())
	require.True(t, f.channel.Subscribed(models.EventAttentionResolved))
	assert.False(t, f.controller.Reservations()[0].CanJoinMeeting())

	require.True(t, f.channel.Deliver(models.EventAttentionResolved))

	assert.Eventually(t, func() bool {
		reservations := f.controller.Reservations()
		return len(reservations) == 1 && reservations[0].CanJoinMeeting()
	}, waitFor, 10*time.Millisecond)
	assert.Equal(t, "https://meet/x", f.controller.Reservations()[0].MeetingLink)

	alerts := f.view.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, constvars.AlertAttentionResolvedTitle, alerts[0].Title)
	f.gateway.AssertNumberOfCalls(t, "ListMyReservations", 2)
}

func TestReservationController_KeepsServerOrderAndSize(t *testing.T) {
	f := newFixture(t, "T1")
	served := []models.Reservation{
		pending("r9", models.AttentionInPerson),
		pending("r2", models.AttentionVirtual),
		pending("r5", models.AttentionVirtual),
		pending("r1", models.AttentionInPerson),
	}
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).Return(served, nil)

	f.controller.Load(context.Background())

	reservations := f.controller.Reservations()
	require.Len(t, reservations, len(served))
	for i := range served {
		assert.Equal(t, served[i].ID, reservations[i].ID)
	}
	assert.Equal(t, reservations, f.view.LastRender())
}

func TestReservationController_OneRefetchPerEvent(t *testing.T) {
	f := newFixture(t, "T1")
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).Return([]models.Reservation{}, nil)

	f.controller.Mount(context.Background())
	f.gateway.AssertNumberOfCalls(t, "ListMyReservations", 1)

	f.channel.Deliver(models.EventAttentionResolved)
	assert.Eventually(t, func() bool {
		return len(f.view.Renders()) == 2
	}, waitFor, 10*time.Millisecond)

	// No further refetch shows up on its own.
	time.Sleep(50 * time.Millisecond)
	f.gateway.AssertNumberOfCalls(t, "ListMyReservations", 2)

	f.controller.Unmount()
	assert.False(t, f.channel.Subscribed(models.EventAttentionResolved))
	assert.True(t, f.channel.Closed())

	assert.False(t, f.channel.Deliver(models.EventAttentionResolved))
	time.Sleep(50 * time.Millisecond)
	f.gateway.AssertNumberOfCalls(t, "ListMyReservations", 2)
}

func TestReservationController_LateHandlerAfterUnmountIsIgnored(t *testing.T) {
	f := newFixture(t, "T1")
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).Return([]models.Reservation{}, nil)

	f.controller.Mount(context.Background())
	controller := f.controller.(*reservationController)
	f.controller.Unmount()

	// A dispatch already in flight when Unmount ran.
	controller.onAttentionResolved(models.NotificationEvent{Kind: models.EventAttentionResolved})
	time.Sleep(50 * time.Millisecond)
	f.gateway.AssertNumberOfCalls(t, "ListMyReservations", 1)
}

func TestReservationController_UnmountCancelsHangingRefetch(t *testing.T) {
	f := newFixture(t, "T1")
	refetching := make(chan struct{})
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
		Return([]models.Reservation{pending("r1", models.AttentionVirtual)}, nil).Once()
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(refetching)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.Canceled).Once()

	f.controller.Mount(context.Background())
	require.True(t, f.channel.Deliver(models.EventAttentionResolved))

	select {
	case <-refetching:
	case <-time.After(waitFor):
		t.Fatal("refetch did not start")
	}

	unmounted := make(chan struct{})
	go func() {
		f.controller.Unmount()
		close(unmounted)
	}()

	select {
	case <-unmounted:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Unmount blocked on an in-flight refetch")
	}
	assert.True(t, f.channel.Closed())
	assert.Empty(t, f.view.Errors())
	assert.Len(t, f.controller.Reservations(), 1)
}

func TestReservationController_UnmountDuringFirstLoadSkipsConnect(t *testing.T) {
	f := newFixture(t, "T1")
	loading := make(chan struct{})
	release := make(chan struct{})
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(loading)
			<-release
		}).
		Return([]models.Reservation{pending("r1", models.AttentionVirtual)}, nil).Once()

	mounted := make(chan struct{})
	go func() {
		f.controller.Mount(context.Background())
		close(mounted)
	}()

	select {
	case <-loading:
	case <-time.After(waitFor):
		t.Fatal("first load did not start")
	}
	f.controller.Unmount()
	close(release)

	select {
	case <-mounted:
	case <-time.After(waitFor):
		t.Fatal("Mount did not return")
	}
	assert.True(t, f.channel.Closed())
	assert.False(t, f.channel.Connected())
	assert.False(t, f.channel.Subscribed(models.EventAttentionResolved))
}

func TestReservationController_MountSurvivesChannelFailure(t *testing.T) {
	f := newFixture(t, "T1")
	f.channel.ConnectErr = exceptions.ErrChannelDial(errors.New("refused"))
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
		Return([]models.Reservation{pending("r1", models.AttentionInPerson)}, nil)

	f.controller.Mount(context.Background())
	defer f.controller.Unmount()

	assert.Len(t, f.controller.Reservations(), 1)
	assert.Empty(t, f.view.Errors())
}

func TestReservationController_LoadWithoutCredentialRoutesToLogin(t *testing.T) {
	f := newFixture(t, "")

	f.controller.Load(context.Background())

	assert.Equal(t, 1, f.view.LoginRoutes())
	assert.False(t, f.controller.Loading())
	f.gateway.AssertNotCalled(t, "ListMyReservations", mock.Anything, mock.Anything)
}

func TestReservationController_LoadFailures(t *testing.T) {
	t.Run("auth failure clears credential", func(t *testing.T) {
		f := newFixture(t, "T1")
		f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrBackendUnauthorized(errors.New("401"), 401, constvars.ResourceReservations))

		f.controller.Load(context.Background())

		assert.Empty(t, f.store.Token())
		assert.Equal(t, 1, f.view.LoginRoutes())
	})

	t.Run("network failure keeps prior list", func(t *testing.T) {
		f := newFixture(t, "T1")
		f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
			Return([]models.Reservation{pending("r1", models.AttentionVirtual)}, nil).Once()
		f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrSendHTTPRequest(errors.New("offline"))).Once()

		f.controller.Load(context.Background())
		f.controller.Load(context.Background())

		require.Len(t, f.controller.Reservations(), 1)
		assert.Equal(t, []string{constvars.ErrClientReservationsUnavailable}, f.view.Errors())
		assert.Equal(t, "T1", f.store.Token())
		assert.False(t, f.controller.Loading())
		assert.Equal(t, []bool{true, false, true, false}, f.view.LoadingLog())
	})

	t.Run("validation failure shows server message", func(t *testing.T) {
		f := newFixture(t, "T1")
		f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrBackendValidation(errors.New("400"), 400, "Paciente no encontrado", constvars.ResourceReservations))

		f.controller.Load(context.Background())

		assert.Equal(t, []string{"Paciente no encontrado"}, f.view.Errors())
	})
}

func TestReservationController_SanitizesUnresolvedItems(t *testing.T) {
	f := newFixture(t, "T1")
	inconsistent := pending("r1", models.AttentionVirtual)
	inconsistent.MeetingLink = "https://meet/early"
	inconsistent.PrescriptionText = "Paracetamol"
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).Return([]models.Reservation{inconsistent}, nil)

	f.controller.Load(context.Background())

	reservation := f.controller.Reservations()[0]
	assert.Empty(t, reservation.MeetingLink)
	assert.Empty(t, reservation.PrescriptionText)
}

func TestReservationController_RequestStaffAttention(t *testing.T) {
	resolved := pending("r2", models.AttentionInPerson)
	resolved.Resolved = true

	setup := func(t *testing.T) *fixture {
		f := newFixture(t, "T1")
		f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
			Return([]models.Reservation{pending("r1", models.AttentionVirtual), resolved}, nil)
		f.controller.Mount(context.Background())
		t.Cleanup(f.controller.Unmount)
		return f
	}

	t.Run("emits contact info", func(t *testing.T) {
		f := setup(t)

		require.NoError(t, f.controller.RequestStaffAttention(context.Background(), "r1"))

		emitted := f.channel.Emitted()
		require.Len(t, emitted, 1)
		assert.Equal(t, models.EventAttentionRequested, emitted[0].Kind)
		assert.Equal(t, requests.AttentionSignal{ID: "r1", Username: "Ana", Phone: "+59170000000"}, emitted[0].Payload)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := setup(t)

		err := f.controller.RequestStaffAttention(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.Empty(t, f.channel.Emitted())
	})

	t.Run("already resolved", func(t *testing.T) {
		f := setup(t)

		err := f.controller.RequestStaffAttention(context.Background(), "r2")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientReservationAlreadyResolved, exceptions.ClientMessageOf(err))
	})

	t.Run("emit failure is not surfaced", func(t *testing.T) {
		f := setup(t)
		f.channel.EmitErr = exceptions.ErrChannelWrite(errors.New("broken pipe"))

		assert.NoError(t, f.controller.RequestStaffAttention(context.Background(), "r1"))
		assert.Empty(t, f.view.Errors())
	})
}

func TestReservationController_RequestStaffAttentionWithoutMount(t *testing.T) {
	f := newFixture(t, "T1")
	f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
		Return([]models.Reservation{pending("r1", models.AttentionVirtual)}, nil)

	f.controller.Load(context.Background())
	require.NoError(t, f.controller.RequestStaffAttention(context.Background(), "r1"))

	assert.Len(t, f.channel.Emitted(), 1)
	assert.True(t, f.channel.Closed())
}

func TestReservationController_CreateReservation(t *testing.T) {
	t.Run("invalid attention type never reaches the backend", func(t *testing.T) {
		f := newFixture(t, "T1")

		_, err := f.controller.CreateReservation(context.Background(), &requests.CreateReservation{
			AttentionType: "domicilio",
			Address:       "Calle 1",
			Phone:         "70000000",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		f.gateway.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("without credential", func(t *testing.T) {
		f := newFixture(t, "")

		_, err := f.controller.CreateReservation(context.Background(), &requests.CreateReservation{
			AttentionType: "virtual",
			Address:       "Calle 1",
			Phone:         "70000000",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindAuth))
		assert.Equal(t, 1, f.view.LoginRoutes())
	})

	t.Run("success reloads the list", func(t *testing.T) {
		f := newFixture(t, "T1")
		f.gateway.On("CreateReservation", mock.Anything, models.NewCredential("T1"), mock.MatchedBy(func(r *requests.CreateReservation) bool {
			return r.AttentionType == "virtual" && r.Phone == "+59170000000"
		})).Return("r7", nil)
		f.gateway.On("ListMyReservations", mock.Anything, mock.Anything).
			Return([]models.Reservation{pending("r7", models.AttentionVirtual)}, nil)

		id, err := f.controller.CreateReservation(context.Background(), &requests.CreateReservation{
			AttentionType: " Virtual ",
			Address:       "Calle 1",
			Phone:         "+591 700 00000",
		})
		require.NoError(t, err)
		assert.Equal(t, "r7", id)
		require.Len(t, f.controller.Reservations(), 1)
	})
}
