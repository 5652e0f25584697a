package client

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	app := NewApp(serverAdapter, config.Client{Token: "valid_token", Username: "alice"}, logger.Nop())
	return app, serverAdapter
}

func TestApp_Run_Success(t *testing.T) {
	app, serverAdapter := newTestApp(t)

	gomock.InOrder(
		serverAdapter.EXPECT().Version(gomock.Any()).Return("1.0.0", nil),
		serverAdapter.EXPECT().CreateUser(gomock.Any(), "alice").Return(models.User{ID: 1337, Username: "alice"}, nil),
		serverAdapter.EXPECT().Greet(gomock.Any(), "valid_token").Return("Hello, World!", nil),
	)

	require.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_VersionFails_StopsEarly(t *testing.T) {
	app, serverAdapter := newTestApp(t)

	serverAdapter.EXPECT().Version(gomock.Any()).Return("", adapter.ErrUnexpectedStatus)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, adapter.ErrUnexpectedStatus)
}

func TestApp_Run_CreateUserFails_SkipsGreet(t *testing.T) {
	app, serverAdapter := newTestApp(t)

	serverAdapter.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)
	serverAdapter.EXPECT().CreateUser(gomock.Any(), "alice").Return(models.User{}, adapter.ErrUnprocessableEntity)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, adapter.ErrUnprocessableEntity)
}

func TestApp_Run_Unauthorized(t *testing.T) {
	app, serverAdapter := newTestApp(t)

	serverAdapter.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)
	serverAdapter.EXPECT().CreateUser(gomock.Any(), "alice").Return(models.User{ID: 1337, Username: "alice"}, nil)
	serverAdapter.EXPECT().Greet(gomock.Any(), "valid_token").Return("", adapter.ErrUnauthorized)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = (*App)(nil)
}
