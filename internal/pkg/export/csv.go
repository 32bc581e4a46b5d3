// Package export renders timesheet entries as delimited text.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
)

var csvHeader = []string{
	"Entry ID",
	"Employee Name",
	"Department",
	"Date",
	"Activity Type",
	"Activity",
	"Project Name",
	"Hours",
	"Status",
	"Manager Comments",
}

// WriteCSV writes one row per entry with employee and project names resolved
// from the lookup tables. encoding/csv quotes fields as needed, so comments
// with embedded delimiters survive the round trip.
func WriteCSV(w io.Writer, entries []timesheet.Entry, users []user.User, projects []catalog.Project) error {
	userByID := make(map[int64]user.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range entries {
		employeeName, department := "Unknown", "Unknown"
		if u, ok := userByID[e.UserID]; ok {
			employeeName = u.Name
			department = u.Department
		}

		projectName := "N/A"
		if e.ProjectID != nil {
			if name, ok := projectNames[*e.ProjectID]; ok {
				projectName = name
			}
		}

		comments := ""
		if e.ManagerComments != nil {
			comments = *e.ManagerComments
		}

		record := []string{
			e.ID,
			employeeName,
			department,
			e.Date,
			string(e.ActivityType),
			e.Activity,
			projectName,
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			string(e.Status),
			comments,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
