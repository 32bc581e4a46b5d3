package catalog

import "errors"

var (
	ErrDuplicateProjectID  = errors.New("project ID already exists")
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectIDRequired   = errors.New("project ID is required")
	ErrProjectNameRequired = errors.New("project name is required")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrActivityNameEmpty   = errors.New("activity name is required")
	ErrInvalidActivityType = errors.New("activity type must be Internal or External")
)
