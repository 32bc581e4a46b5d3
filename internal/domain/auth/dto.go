package auth

import "github.com/tracklight/timesheet-backend-go/internal/domain/user"

type LoginRequest struct {
	UserID   int64  `json:"user_id"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken           string      `json:"access_token"`
	AccessTokenExpiresAt  int64       `json:"access_token_expires_at"`
	RefreshToken          string      `json:"refresh_token"`
	RefreshTokenExpiresAt int64       `json:"refresh_token_expires_at"`
	User                  user.Public `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
}
