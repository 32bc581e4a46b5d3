package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
)

func strPtr(v string) *string { return &v }

func TestWriteCSV(t *testing.T) {
	users := []user.User{
		{ID: 1, Name: "Alice Smith", Department: "Engineering"},
	}
	projects := []catalog.Project{
		{ID: "PROJ-001", Name: "Phoenix Project"},
	}
	entries := []timesheet.Entry{
		{
			ID: "e1", UserID: 1, Date: "2025-11-04",
			Activity: "Project", ActivityType: catalog.ActivityExternal,
			ProjectID: strPtr("PROJ-001"), Hours: 7.5, Status: timesheet.StatusRejected,
			ManagerComments: strPtr(`Too high, please "verify"`),
		},
		{
			ID: "e2", UserID: 99, Date: "2025-11-05",
			Activity: "Self Learning", ActivityType: catalog.ActivityInternal,
			Hours: 2, Status: timesheet.StatusPending,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries, users, projects))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])

	assert.Equal(t, []string{
		"e1", "Alice Smith", "Engineering", "2025-11-04",
		"External", "Project", "Phoenix Project", "7.5", "Rejected",
		`Too high, please "verify"`,
	}, records[1])

	// Unknown owner and internal activity fall back to placeholders.
	assert.Equal(t, []string{
		"e2", "Unknown", "Unknown", "2025-11-05",
		"Internal", "Self Learning", "N/A", "2", "Pending", "",
	}, records[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
