package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid user or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
)
