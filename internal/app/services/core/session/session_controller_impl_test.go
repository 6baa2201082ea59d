package session

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/testutil"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionController_StoredCredentialAccepted(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := testutil.NewMemoryStore("T1")
	view := &testutil.SessionViewRecorder{}
	controller := NewSessionController(gateway, store, view, zap.NewNop())

	gateway.On("Verify", mock.Anything, models.NewCredential("T1")).
		Return(&models.Identity{Username: "Ana"}, nil).Once()

	assert.Equal(t, models.SessionUnchecked, controller.State())

	state := controller.Activate(context.Background())
	assert.Equal(t, models.SessionAuthenticated, state)
	assert.Equal(t, models.SessionAuthenticated, controller.State())
	assert.Equal(t, "Ana", controller.Session().IdentityName)
	assert.True(t, controller.Session().Valid)
	assert.Equal(t, []string{"Ana"}, view.HomeRoutes)
	assert.Zero(t, view.LoginRoutes)
	gateway.AssertExpectations(t)
}

func TestSessionController_NoCredentialSkipsVerify(t *testing.T) {
	gateway := new(testutil.MockGateway)
	view := &testutil.SessionViewRecorder{}
	controller := NewSessionController(gateway, testutil.NewMemoryStore(""), view, zap.NewNop())

	state := controller.Activate(context.Background())
	assert.Equal(t, models.SessionUnauthenticated, state)
	assert.Equal(t, 1, view.LoginRoutes)
	assert.Empty(t, view.ErrorsShown)
	gateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestSessionController_AuthFailureClearsCredential(t *testing.T) {
	rejections := []error{
		exceptions.ErrBackendUnauthorized(errors.New("401"), 401, constvars.ResourceSession),
		exceptions.ErrTokenMalformed(errors.New("bad")),
	}

	for _, rejection := range rejections {
		gateway := new(testutil.MockGateway)
		store := testutil.NewMemoryStore("T1")
		view := &testutil.SessionViewRecorder{}
		controller := NewSessionController(gateway, store, view, zap.NewNop())

		gateway.On("Verify", mock.Anything, mock.Anything).Return(nil, rejection)

		state := controller.Activate(context.Background())
		assert.Equal(t, models.SessionUnauthenticated, state)
		assert.Empty(t, store.Token())
		assert.Equal(t, 1, view.LoginRoutes)
		assert.False(t, controller.Session().Valid)
	}
}

func TestSessionController_UnreachableBackendKeepsCredential(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := testutil.NewMemoryStore("T1")
	view := &testutil.SessionViewRecorder{}
	controller := NewSessionController(gateway, store, view, zap.NewNop())

	failure := exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
	gateway.On("Verify", mock.Anything, mock.Anything).Return(nil, failure)

	state := controller.Activate(context.Background())
	assert.Equal(t, models.SessionUnauthenticated, state)
	assert.Equal(t, "T1", store.Token())
	assert.Equal(t, 1, view.LoginRoutes)
	require.Len(t, view.ErrorsShown, 1)
	assert.Equal(t, exceptions.ClientMessageOf(failure), view.ErrorsShown[0])
}

func TestSessionController_BackendErrorClearsCredential(t *testing.T) {
	failures := []error{
		exceptions.ErrBackendServer(errors.New("500"), 500, constvars.ResourceSession),
		exceptions.ErrBackendValidation(errors.New("400"), 400, "", constvars.ResourceSession),
	}

	for _, failure := range failures {
		gateway := new(testutil.MockGateway)
		store := testutil.NewMemoryStore("T1")
		view := &testutil.SessionViewRecorder{}
		controller := NewSessionController(gateway, store, view, zap.NewNop())

		gateway.On("Verify", mock.Anything, mock.Anything).Return(nil, failure)

		state := controller.Activate(context.Background())
		assert.Equal(t, models.SessionUnauthenticated, state)
		assert.Empty(t, store.Token())
		assert.Equal(t, 1, view.LoginRoutes)
		require.Len(t, view.ErrorsShown, 1)
		assert.Equal(t, exceptions.ClientMessageOf(failure), view.ErrorsShown[0])
	}
}

func TestSessionController_StoreFailure(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := testutil.NewMemoryStore("T1")
	store.LoadErr = exceptions.ErrStorageRead(errors.New("permission denied"), constvars.SessionStoreDriverFile)
	view := &testutil.SessionViewRecorder{}
	controller := NewSessionController(gateway, store, view, zap.NewNop())

	state := controller.Activate(context.Background())
	assert.Equal(t, models.SessionUnauthenticated, state)
	assert.Equal(t, 1, view.LoginRoutes)
	assert.Equal(t, []string{constvars.ErrClientStorageUnavailable}, view.ErrorsShown)
	gateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestSessionController_ActivationIsNotCached(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := testutil.NewMemoryStore("T1")
	view := &testutil.SessionViewRecorder{}
	controller := NewSessionController(gateway, store, view, zap.NewNop())

	gateway.On("Verify", mock.Anything, mock.Anything).Return(&models.Identity{Username: "Ana"}, nil).Once()
	gateway.On("Verify", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrBackendUnauthorized(errors.New("expired"), 401, constvars.ResourceSession)).Once()

	assert.Equal(t, models.SessionAuthenticated, controller.Activate(context.Background()))
	assert.Equal(t, models.SessionUnauthenticated, controller.Activate(context.Background()))
	assert.Empty(t, controller.Session().IdentityName)
	assert.Empty(t, store.Token())
	gateway.AssertNumberOfCalls(t, "Verify", 2)
}
