// Package insight produces AI-generated narratives for administrators. Every
// generative call is best-effort: failures degrade to a placeholder string
// and never surface as errors to the caller.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/insight"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/genai"
)

const (
	summaryPlaceholder  = "An error occurred while generating the summary. Please try again later."
	estimatePlaceholder = "An error occurred while generating the cost estimate. Please try again later."
	insightPlaceholder  = "An error occurred while fetching insights. Please try again later."
)

// Generator is the opaque text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts *genai.Options) (genai.Result, error)
}

type Service struct {
	generator Generator
}

func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

type summaryEntry struct {
	Employee string  `json:"employee"`
	Date     string  `json:"date"`
	Project  string  `json:"project"`
	Activity string  `json:"activity"`
	Hours    float64 `json:"hours"`
	Status   string  `json:"status"`
}

// TimesheetSummary narrates the filtered entry set for an administrator.
func (s *Service) TimesheetSummary(ctx context.Context, entries []timesheet.Entry, users []user.User, projects []catalog.Project) string {
	userNames := make(map[int64]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}

	simplified := make([]summaryEntry, 0, len(entries))
	for _, e := range entries {
		name, ok := userNames[e.UserID]
		if !ok {
			name = "Unknown User"
		}
		project := "N/A"
		if e.ProjectID != nil {
			if pn, ok := projectNames[*e.ProjectID]; ok {
				project = pn
			}
		}
		simplified = append(simplified, summaryEntry{
			Employee: name,
			Date:     e.Date,
			Project:  project,
			Activity: e.Activity,
			Hours:    e.Hours,
			Status:   string(e.Status),
		})
	}

	data, err := json.MarshalIndent(simplified, "", "  ")
	if err != nil {
		slog.Warn("timesheet summary: encode entries", "error", err)
		return summaryPlaceholder
	}

	prompt := fmt.Sprintf(`You are an expert project management analyst. Based on the following timesheet data in JSON format, provide a concise and insightful summary for an administrator.

The summary should include:
1. Total hours logged.
2. A breakdown of hours by project.
3. A breakdown of hours by status (Pending, Approved, Rejected).
4. Any potential insights, such as employees with high rejected hours, projects consuming the most effort, or significant idle time.

Use markdown for formatting.

Data:
%s`, data)

	result, err := s.generator.Generate(ctx, prompt, nil)
	if err != nil {
		slog.Warn("timesheet summary generation failed", "error", err)
		return summaryPlaceholder
	}
	return result.Text
}

// CostEstimate narrates a monthly deployment cost estimate from the cost
// estimator form parameters.
func (s *Service) CostEstimate(ctx context.Context, req insight.CostEstimateRequest) string {
	prompt := fmt.Sprintf(`You are a cloud cost estimation expert. Based on the following parameters for a web application, provide a monthly cost estimate.

Application Details:
- A simple CRUD timesheet application with user authentication.
- Frontend: static hosting
- Backend: a small API service (serverless functions or small container)
- Database: storing user data, timesheet entries, projects.
- AI Integration: uses a large language model for occasional summaries.

Parameters:
- Number of Users: %s
- Average Daily Timesheet Entries per User: %s
- Expected AI Summary Generations per month: %s
- Cloud Provider: %s
- Database Type: %s
- Redundancy Level: %s

Please provide a cost breakdown in markdown format covering frontend hosting, backend compute, database, AI API usage, and data transfer, and conclude with a total estimated monthly cost. Keep the explanation concise and clear for a non-technical user, assuming standard cost-effective service tiers.`,
		req.NumUsers, req.EntriesPerUser, req.SummaryGenerations,
		req.CloudProvider, req.DatabaseType, req.Redundancy)

	result, err := s.generator.Generate(ctx, prompt, nil)
	if err != nil {
		slog.Warn("cost estimate generation failed", "error", err)
		return estimatePlaceholder
	}
	return result.Text
}

// ProjectInsights answers a free-form project management question, grounded
// in web search. The result always carries text; sources may be empty.
func (s *Service) ProjectInsights(ctx context.Context, prompt string) insight.Result {
	prompt = strings.TrimSpace(prompt)
	wrapped := fmt.Sprintf("As a project management expert, answer the following question based on the latest information from the web: %q", prompt)

	result, err := s.generator.Generate(ctx, wrapped, &genai.Options{GroundedSearch: true})
	if err != nil {
		slog.Warn("project insight generation failed", "error", err)
		return insight.Result{Text: insightPlaceholder, Sources: []insight.Source{}}
	}

	sources := make([]insight.Source, 0, len(result.Sources))
	for _, src := range result.Sources {
		sources = append(sources, insight.Source{URI: src.URI, Title: src.Title})
	}
	return insight.Result{Text: result.Text, Sources: sources}
}
