package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/tracklight/timesheet-backend-go/internal/handler/http/response"
	timesheetService "github.com/tracklight/timesheet-backend-go/internal/service/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

type ApprovalHandler interface {
	TeamSubmissions(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandlerImpl struct {
	timesheetService *timesheetService.Service
	ws               *workspace.Manager
}

func NewApprovalHandler(service *timesheetService.Service, ws *workspace.Manager) ApprovalHandler {
	return &ApprovalHandlerImpl{timesheetService: service, ws: ws}
}

// TeamSubmissions lists the submissions of everyone reporting to the caller.
func (h *ApprovalHandlerImpl) TeamSubmissions(w http.ResponseWriter, r *http.Request) {
	managerID, err := middleware.UserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	response.Success(w, h.timesheetService.TeamSubmissions(managerID))
}

// Decide approves or rejects one submission as a unit. The workflow itself
// does not check visibility, so the handler restricts the target to the
// acting manager's own reports before invoking it.
func (h *ApprovalHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	managerID, err := middleware.UserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req timesheet.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	target, ok := h.ws.UserByID(req.UserID)
	if !ok || target.ManagerID == nil || *target.ManagerID != managerID {
		response.Forbidden(w, "Submission is not from your team")
		return
	}

	sub, err := h.timesheetService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Decision recorded", sub)
}
