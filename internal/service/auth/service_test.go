package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/domain/auth"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/jwt"
	"github.com/tracklight/timesheet-backend-go/internal/repository/memory"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ws, err := workspace.Open(context.Background(), memory.NewSnapshotStore())
	require.NoError(t, err)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewService(ws, jwtService)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{UserID: 1, Password: "password"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "Alice Smith", resp.User.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{UserID: 1, Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{UserID: 99, Password: "password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{UserID: 1, Password: "password"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{UserID: 1, Password: "password"})
	require.NoError(t, err)

	svc.Logout(ctx, login.RefreshToken)

	_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}
