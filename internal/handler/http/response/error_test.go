package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/domain/auth"
	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"protected account", user.ErrProtectedAccount, http.StatusForbidden},
		{"manager reference", user.ErrManagerReference, http.StatusConflict},
		{"invalid role", user.ErrInvalidRole, http.StatusUnprocessableEntity},
		{"duplicate project id", catalog.ErrDuplicateProjectID, http.StatusConflict},
		{"project not found", catalog.ErrProjectNotFound, http.StatusNotFound},
		{"submission not found", timesheet.ErrSubmissionNotFound, http.StatusNotFound},
		{"empty rejection comment", timesheet.ErrEmptyRejectionComment, http.StatusUnprocessableEntity},
		{"unknown environment", snapshot.ErrUnknownEnvironment, http.StatusBadRequest},
		{"reset outside staging", workspace.ErrNotStaging, http.StatusBadRequest},
		{"invalid hours", &timesheet.InvalidHoursError{Row: 2, Value: "abc"}, http.StatusUnprocessableEntity},
		{"hours range", &timesheet.HoursRangeError{Total: 25}, http.StatusUnprocessableEntity},
		{"unknown activity", &timesheet.UnknownActivityError{Row: 1, Name: "X", Type: catalog.ActivityInternal}, http.StatusUnprocessableEntity},
		{"unknown project", &timesheet.UnknownProjectError{Row: 1, ProjectID: "PROJ-404"}, http.StatusUnprocessableEntity},
		{"unmapped", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.code, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: connection refused"))

	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleErrorWrappedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.Join(errors.New("context"), user.ErrProtectedAccount))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
