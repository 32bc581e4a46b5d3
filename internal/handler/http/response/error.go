package response

import (
	"errors"
	"net/http"

	"github.com/tracklight/timesheet-backend-go/internal/domain/auth"
	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Builder validation errors carry row/total context in their message.
	var invalidHours *timesheet.InvalidHoursError
	var hoursRange *timesheet.HoursRangeError
	var unknownActivity *timesheet.UnknownActivityError
	var unknownProject *timesheet.UnknownProjectError
	switch {
	case errors.As(err, &invalidHours),
		errors.As(err, &hoursRange),
		errors.As(err, &unknownActivity),
		errors.As(err, &unknownProject):
		ValidationError(w, err.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrProtectedAccount):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrManagerReference):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrNameRequired),
		errors.Is(err, user.ErrInvalidRole):
		ValidationError(w, err.Error())

	// Catalog domain errors
	case errors.Is(err, catalog.ErrDuplicateProjectID):
		Conflict(w, err.Error())
	case errors.Is(err, catalog.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, catalog.ErrActivityNotFound):
		NotFound(w, "Activity not found")
	case errors.Is(err, catalog.ErrProjectIDRequired),
		errors.Is(err, catalog.ErrProjectNameRequired),
		errors.Is(err, catalog.ErrActivityNameEmpty),
		errors.Is(err, catalog.ErrInvalidActivityType):
		ValidationError(w, err.Error())

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrSubmissionNotFound):
		NotFound(w, "Submission not found")
	case errors.Is(err, timesheet.ErrEmptyRejectionComment),
		errors.Is(err, timesheet.ErrNoRows),
		errors.Is(err, timesheet.ErrDateRequired),
		errors.Is(err, timesheet.ErrInvalidAction):
		ValidationError(w, err.Error())

	// Environment errors
	case errors.Is(err, snapshot.ErrUnknownEnvironment),
		errors.Is(err, workspace.ErrNotStaging):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
