package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/insight"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/genai"
)

type stubGenerator struct {
	lastPrompt string
	lastOpts   *genai.Options
	result     genai.Result
	err        error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string, opts *genai.Options) (genai.Result, error) {
	g.lastPrompt = prompt
	g.lastOpts = opts
	return g.result, g.err
}

func strPtr(v string) *string { return &v }

func TestTimesheetSummaryPrompt(t *testing.T) {
	gen := &stubGenerator{result: genai.Result{Text: "All good."}}
	svc := NewService(gen)

	users := []user.User{{ID: 1, Name: "Alice Smith"}}
	projects := []catalog.Project{{ID: "PROJ-001", Name: "Phoenix Project"}}
	entries := []timesheet.Entry{
		{UserID: 1, Date: "2025-11-04", Activity: "Project", ProjectID: strPtr("PROJ-001"), Hours: 8, Status: timesheet.StatusApproved},
		{UserID: 42, Date: "2025-11-04", Activity: "Self Learning", Hours: 2, Status: timesheet.StatusPending},
	}

	got := svc.TimesheetSummary(context.Background(), entries, users, projects)
	assert.Equal(t, "All good.", got)

	// The prompt carries resolved names and fallbacks, never raw IDs.
	assert.Contains(t, gen.lastPrompt, "Alice Smith")
	assert.Contains(t, gen.lastPrompt, "Phoenix Project")
	assert.Contains(t, gen.lastPrompt, "Unknown User")
	assert.Contains(t, gen.lastPrompt, `"N/A"`)
	assert.Nil(t, gen.lastOpts)
}

func TestTimesheetSummaryDegrades(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("quota exceeded")})

	got := svc.TimesheetSummary(context.Background(), nil, nil, nil)
	assert.Equal(t, summaryPlaceholder, got)
}

func TestCostEstimate(t *testing.T) {
	gen := &stubGenerator{result: genai.Result{Text: "$42/month"}}
	svc := NewService(gen)

	got := svc.CostEstimate(context.Background(), insight.CostEstimateRequest{
		NumUsers:           "50",
		EntriesPerUser:     "3",
		SummaryGenerations: "10",
		CloudProvider:      "GCP",
		DatabaseType:       "PostgreSQL",
		Redundancy:         "Multi-zone",
	})
	assert.Equal(t, "$42/month", got)
	assert.Contains(t, gen.lastPrompt, "Number of Users: 50")
	assert.Contains(t, gen.lastPrompt, "Cloud Provider: GCP")
}

func TestCostEstimateDegrades(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("boom")})
	got := svc.CostEstimate(context.Background(), insight.CostEstimateRequest{})
	assert.Equal(t, estimatePlaceholder, got)
}

func TestProjectInsights(t *testing.T) {
	gen := &stubGenerator{result: genai.Result{
		Text:    "Use burndown charts.",
		Sources: []genai.Source{{URI: "https://example.com", Title: "Example"}},
	}}
	svc := NewService(gen)

	got := svc.ProjectInsights(context.Background(), "  how do I track velocity?  ")
	assert.Equal(t, "Use burndown charts.", got.Text)
	require.Len(t, got.Sources, 1)
	assert.Equal(t, "https://example.com", got.Sources[0].URI)

	require.NotNil(t, gen.lastOpts)
	assert.True(t, gen.lastOpts.GroundedSearch)
	assert.True(t, strings.Contains(gen.lastPrompt, `"how do I track velocity?"`))
}

func TestProjectInsightsDegrades(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("offline")})

	got := svc.ProjectInsights(context.Background(), "anything")
	assert.Equal(t, insightPlaceholder, got.Text)
	assert.NotNil(t, got.Sources)
	assert.Empty(t, got.Sources)
}
