package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalogDomain "github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	userDomain "github.com/tracklight/timesheet-backend-go/internal/domain/user"
	"github.com/tracklight/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/tracklight/timesheet-backend-go/internal/handler/http/response"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/export"
	catalogService "github.com/tracklight/timesheet-backend-go/internal/service/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/service/directory"
	timesheetService "github.com/tracklight/timesheet-backend-go/internal/service/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)

	ListProjects(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
	UpdateProject(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)

	ListActivities(w http.ResponseWriter, r *http.Request)
	CreateActivity(w http.ResponseWriter, r *http.Request)
	UpdateActivity(w http.ResponseWriter, r *http.Request)
	DeleteActivity(w http.ResponseWriter, r *http.Request)

	ListEntries(w http.ResponseWriter, r *http.Request)
	ExportEntries(w http.ResponseWriter, r *http.Request)

	GetEnvironment(w http.ResponseWriter, r *http.Request)
	SwitchEnvironment(w http.ResponseWriter, r *http.Request)
	ResetStaging(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	directoryService *directory.Service
	catalogService   *catalogService.Service
	timesheetService *timesheetService.Service
	ws               *workspace.Manager
}

func NewAdminHandler(
	directoryService *directory.Service,
	catalogSvc *catalogService.Service,
	timesheetSvc *timesheetService.Service,
	ws *workspace.Manager,
) AdminHandler {
	return &AdminHandlerImpl{
		directoryService: directoryService,
		catalogService:   catalogSvc,
		timesheetService: timesheetSvc,
		ws:               ws,
	}
}

func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// parseFilterCriteria reads the admin filter query parameters. Unknown or
// malformed values simply leave the criterion unset.
func parseFilterCriteria(r *http.Request) timesheet.FilterCriteria {
	q := r.URL.Query()
	c := timesheet.FilterCriteria{
		Department: q.Get("department"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}
	if v := q.Get("user_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.UserID = &id
		}
	}
	if v := q.Get("status"); v != "" {
		if status, ok := timesheet.ParseStatus(v); ok {
			c.Status = &status
		}
	}
	return c
}

func (h *AdminHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.directoryService.Users())
}

func (h *AdminHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userDomain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.directoryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "User created", created)
}

func (h *AdminHandlerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actingID, err := middleware.UserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	id, ok := parseIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user ID", nil)
		return
	}

	var req userDomain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.directoryService.Update(r.Context(), actingID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User updated", updated)
}

// DeleteUser removes a user and all of their timesheet entries. The cascade
// is irreversible, so the route is deliberately explicit (no soft delete).
func (h *AdminHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actingID, err := middleware.UserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	id, ok := parseIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user ID", nil)
		return
	}

	if err := h.directoryService.Delete(r.Context(), actingID, id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User and their timesheet entries deleted", nil)
}

func (h *AdminHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid user ID", nil)
		return
	}

	var req userDomain.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		response.BadRequest(w, "A new password is required", nil)
		return
	}

	if err := h.directoryService.ResetPassword(r.Context(), id, req.Password); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Password reset", nil)
}

func (h *AdminHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.catalogService.Projects())
}

func (h *AdminHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req catalogDomain.SaveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.catalogService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Project created", created)
}

func (h *AdminHandlerImpl) UpdateProject(w http.ResponseWriter, r *http.Request) {
	prevID := chi.URLParam(r, "id")

	var req catalogDomain.SaveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.catalogService.UpdateProject(r.Context(), prevID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project updated", updated)
}

func (h *AdminHandlerImpl) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project deleted", nil)
}

func (h *AdminHandlerImpl) ListActivities(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.catalogService.Activities())
}

func (h *AdminHandlerImpl) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req catalogDomain.SaveActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.catalogService.CreateActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Activity created", created)
}

func (h *AdminHandlerImpl) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid activity ID", nil)
		return
	}

	var req catalogDomain.SaveActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.catalogService.UpdateActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Activity updated", updated)
}

func (h *AdminHandlerImpl) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid activity ID", nil)
		return
	}
	if err := h.catalogService.DeleteActivity(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Activity deleted", nil)
}

// ListEntries returns raw entries matching the filter criteria.
func (h *AdminHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.timesheetService.FilteredEntries(parseFilterCriteria(r)))
}

// ExportEntries streams the filtered entries as a CSV download.
func (h *AdminHandlerImpl) ExportEntries(w http.ResponseWriter, r *http.Request) {
	entries := h.timesheetService.FilteredEntries(parseFilterCriteria(r))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="timesheet_export.csv"`)
	if err := export.WriteCSV(w, entries, h.ws.Users(), h.ws.Projects()); err != nil {
		slog.Error("CSV export failed", "error", err)
	}
}

func (h *AdminHandlerImpl) GetEnvironment(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"environment": string(h.ws.Environment())})
}

// SwitchEnvironment performs a hard context switch between Live and Staging.
func (h *AdminHandlerImpl) SwitchEnvironment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Environment string `json:"environment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	env, err := snapshot.ParseEnvironment(req.Environment)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if err := h.ws.Switch(r.Context(), env); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Environment switched", map[string]string{"environment": string(env)})
}

func (h *AdminHandlerImpl) ResetStaging(w http.ResponseWriter, r *http.Request) {
	if err := h.ws.ResetStaging(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staging data has been reset to defaults", nil)
}
