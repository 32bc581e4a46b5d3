package timesheet

import (
	"context"
	"strings"

	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
)

// Decide applies a manager decision to every entry of the targeted
// (employee, date) submission uniformly; there is no per-row decision.
//
// Rejection requires a non-empty comment and overwrites each entry's prior
// comment. Approval never touches comments. Restricting the candidate set to
// the acting manager's reports is the caller's responsibility; Decide itself
// only applies the transition.
//
// Approved and Rejected are terminal here: nothing in this workflow
// resubmits or reopens a decided day.
func (s *Service) Decide(ctx context.Context, req timesheet.DecideRequest) (timesheet.Submission, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Submission{}, err
	}

	var target []timesheet.Entry
	for _, e := range s.ws.EntriesByUser(req.UserID) {
		if e.Date == req.Date {
			target = append(target, e)
		}
	}
	if len(target) == 0 {
		return timesheet.Submission{}, timesheet.ErrSubmissionNotFound
	}

	ids := make([]string, len(target))
	for i, e := range target {
		ids[i] = e.ID
	}

	status := timesheet.StatusApproved
	var comments *string
	if req.Action == timesheet.ActionReject {
		status = timesheet.StatusRejected
		c := strings.TrimSpace(req.Comments)
		comments = &c
	}

	if err := s.ws.UpdateEntryStatus(ctx, ids, status, comments); err != nil {
		return timesheet.Submission{}, err
	}

	for _, sub := range Aggregate(s.ws.EntriesByUser(req.UserID)) {
		if sub.Date == req.Date {
			return sub, nil
		}
	}
	return timesheet.Submission{}, timesheet.ErrSubmissionNotFound
}
