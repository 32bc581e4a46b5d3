package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidRole      = errors.New("invalid role")
	ErrNameRequired     = errors.New("name is required")
	ErrManagerReference = errors.New("managerId must reference an existing Manager")
	// ErrProtectedAccount covers the primary administrator and the acting
	// administrator's own account: neither may be deleted or have its role edited.
	ErrProtectedAccount = errors.New("this account is protected and cannot be deleted or demoted")
)
