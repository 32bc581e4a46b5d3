package timesheet

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
)

const maxDailyHours = 24

// SubmitDay validates one employee's draft rows for one date and materializes
// them as Pending entries. Validation is ordered and first-failure-wins; on
// any failure zero entries are persisted. On success the batch is appended
// atomically.
//
// Repeated submission for the same day appends more rows to that day's group;
// it never merges, deduplicates, or un-rejects prior rows.
func (s *Service) SubmitDay(ctx context.Context, userID int64, req timesheet.SubmitDayRequest) ([]timesheet.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 1. Every row's hours must parse to a number > 0. ParseFloat accepts
	// "NaN", and NaN compares false against everything, so it needs its own
	// check or it would slip through both this and the total range guard.
	hours := make([]float64, len(req.Rows))
	for i, row := range req.Rows {
		h, err := strconv.ParseFloat(row.Hours, 64)
		if err != nil || math.IsNaN(h) || h <= 0 {
			return nil, &timesheet.InvalidHoursError{Row: i + 1, Value: row.Hours}
		}
		hours[i] = h
	}

	// 2. The daily total must be in (0, 24].
	var total float64
	for _, h := range hours {
		total += h
	}
	if total <= 0 || total > maxDailyHours {
		return nil, &timesheet.HoursRangeError{Total: total}
	}

	// 3 & 4. Resolve each row against the catalog.
	entries := make([]timesheet.Entry, 0, len(req.Rows))
	for i, row := range req.Rows {
		typ, ok := catalog.ParseActivityType(row.ActivityType)
		if !ok {
			return nil, fmt.Errorf("row %d: %w: %q", i+1, catalog.ErrInvalidActivityType, row.ActivityType)
		}
		activity, ok := s.ws.FindActivity(row.Activity, typ)
		if !ok {
			return nil, &timesheet.UnknownActivityError{Row: i + 1, Name: row.Activity, Type: typ}
		}

		entry := timesheet.Entry{
			ID:           uuid.NewString(),
			UserID:       userID,
			Date:         req.Date,
			Activity:     activity.Name,
			ActivityType: activity.Type,
			Hours:        hours[i],
			Status:       timesheet.StatusPending,
		}

		if activity.Type == catalog.ActivityExternal {
			project, ok := s.ws.ProjectByID(row.ProjectID)
			if !ok {
				return nil, &timesheet.UnknownProjectError{Row: i + 1, ProjectID: row.ProjectID}
			}
			id := project.ID
			entry.ProjectID = &id
		}
		// Internal rows discard any supplied project ID silently.

		entries = append(entries, entry)
	}

	if err := s.ws.AppendEntries(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}
