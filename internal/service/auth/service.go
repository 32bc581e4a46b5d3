package auth

import (
	"context"

	"github.com/tracklight/timesheet-backend-go/internal/domain/auth"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/jwt"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

// Service handles login and token refresh. Credentials are compared as plain
// strings by product decision; this is a placeholder, not a security design.
type Service struct {
	ws         *workspace.Manager
	jwtService jwt.Service
}

func NewService(ws *workspace.Manager, jwtService jwt.Service) *Service {
	return &Service{ws: ws, jwtService: jwtService}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, ok := s.ws.UserByID(req.UserID)
	if !ok || u.Password != req.Password {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Name, u.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
		User:                  u.ToPublic(),
	}, nil
}

func (s *Service) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	u, ok := s.ws.UserByID(userID)
	if !ok {
		return auth.RefreshResponse{}, user.ErrUserNotFound
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Name, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, err
	}
	return auth.RefreshResponse{AccessToken: accessToken, AccessTokenExpiresAt: accessExp}, nil
}

func (s *Service) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}
