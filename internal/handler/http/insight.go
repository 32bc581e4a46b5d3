package http

import (
	"encoding/json"
	"net/http"
	"strings"

	insightDomain "github.com/tracklight/timesheet-backend-go/internal/domain/insight"
	"github.com/tracklight/timesheet-backend-go/internal/handler/http/response"
	"github.com/tracklight/timesheet-backend-go/internal/service/insight"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

type InsightHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	CostEstimate(w http.ResponseWriter, r *http.Request)
	Ask(w http.ResponseWriter, r *http.Request)
}

type InsightHandlerImpl struct {
	insightService *insight.Service
	ws             *workspace.Manager
}

func NewInsightHandler(insightService *insight.Service, ws *workspace.Manager) InsightHandler {
	return &InsightHandlerImpl{insightService: insightService, ws: ws}
}

// Summary produces an AI-written narrative over the current entries.
// Generation is best effort, so the endpoint never fails.
func (h *InsightHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	text := h.insightService.TimesheetSummary(r.Context(), h.ws.Entries(), h.ws.Users(), h.ws.Projects())
	response.Success(w, map[string]string{"summary": text})
}

func (h *InsightHandlerImpl) CostEstimate(w http.ResponseWriter, r *http.Request) {
	var req insightDomain.CostEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	text := h.insightService.CostEstimate(r.Context(), req)
	response.Success(w, map[string]string{"estimate": text})
}

func (h *InsightHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	var req insightDomain.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		response.BadRequest(w, "A prompt is required", nil)
		return
	}

	result := h.insightService.ProjectInsights(r.Context(), req.Prompt)
	response.Success(w, result)
}
