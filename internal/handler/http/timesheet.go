package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/tracklight/timesheet-backend-go/internal/handler/http/response"
	timesheetService "github.com/tracklight/timesheet-backend-go/internal/service/timesheet"
)

type TimesheetHandler interface {
	MySubmissions(w http.ResponseWriter, r *http.Request)
	SubmitDay(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService *timesheetService.Service
}

func NewTimesheetHandler(service *timesheetService.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: service}
}

// MySubmissions returns the caller's daily submissions, most recent first.
func (h *TimesheetHandlerImpl) MySubmissions(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	response.Success(w, h.timesheetService.SubmissionsForUser(userID))
}

// SubmitDay validates and stores the caller's activity rows for one date.
// Submitting again for the same date appends rows to the same logical
// submission; a rejected day stays rejected (there is no resubmission flow,
// which is a known product gap).
func (h *TimesheetHandlerImpl) SubmitDay(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req timesheet.SubmitDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entries, err := h.timesheetService.SubmitDay(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Timesheet submitted", entries)
}
