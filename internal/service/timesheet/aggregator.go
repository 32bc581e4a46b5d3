package timesheet

import (
	"sort"

	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
)

type groupKey struct {
	userID int64
	date   string
}

// Aggregate projects a flat entry collection into per-(employee, date)
// submissions. The projection is pure: totals and statuses are independent of
// input order, and nothing is persisted.
//
// Aggregate status precedence, first match wins:
//  1. any entry Rejected  -> Rejected (one rejected row taints the day)
//  2. any entry Pending   -> Pending  (unresolved rows block full approval)
//  3. otherwise           -> Approved
//
// Output is ordered by date descending (most recent first); equal dates are
// broken by employee ID ascending so the result is deterministic.
func Aggregate(entries []timesheet.Entry) []timesheet.Submission {
	groups := make(map[groupKey]*timesheet.Submission)
	for _, e := range entries {
		key := groupKey{userID: e.UserID, date: e.Date}
		sub, ok := groups[key]
		if !ok {
			sub = &timesheet.Submission{
				UserID: e.UserID,
				Date:   e.Date,
				Status: timesheet.StatusApproved,
			}
			groups[key] = sub
		}
		sub.Entries = append(sub.Entries, e)
		sub.TotalHours += e.Hours
	}

	out := make([]timesheet.Submission, 0, len(groups))
	for _, sub := range groups {
		sub.Status = aggregateStatus(sub.Entries)
		out = append(out, *sub)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

func aggregateStatus(entries []timesheet.Entry) timesheet.Status {
	anyPending := false
	for _, e := range entries {
		switch e.Status {
		case timesheet.StatusRejected:
			return timesheet.StatusRejected
		case timesheet.StatusPending:
			anyPending = true
		}
	}
	if anyPending {
		return timesheet.StatusPending
	}
	return timesheet.StatusApproved
}

// FilterEntries applies criteria to raw entries before grouping. An entry
// failing any criterion is excluded, which can change or eliminate the
// derived status of its group.
func FilterEntries(entries []timesheet.Entry, users []user.User, c timesheet.FilterCriteria) []timesheet.Entry {
	byID := make(map[int64]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var out []timesheet.Entry
	for _, e := range entries {
		if c.Department != "" {
			owner, ok := byID[e.UserID]
			if !ok || owner.Department != c.Department {
				continue
			}
		}
		if c.UserID != nil && e.UserID != *c.UserID {
			continue
		}
		if c.Status != nil && e.Status != *c.Status {
			continue
		}
		// Dates are opaque YYYY-MM-DD tokens; lexicographic order is date order.
		if c.StartDate != "" && e.Date < c.StartDate {
			continue
		}
		if c.EndDate != "" && e.Date > c.EndDate {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SubmissionsForUser returns the employee's own submissions, most recent first.
func (s *Service) SubmissionsForUser(userID int64) []timesheet.Submission {
	return Aggregate(s.ws.EntriesByUser(userID))
}

// TeamSubmissions returns submissions of every employee reporting to the
// manager. This is the candidate set the approval workflow may target.
func (s *Service) TeamSubmissions(managerID int64) []timesheet.Submission {
	reports := make(map[int64]struct{})
	for _, u := range s.ws.Users() {
		if u.ManagerID != nil && *u.ManagerID == managerID {
			reports[u.ID] = struct{}{}
		}
	}

	var team []timesheet.Entry
	for _, e := range s.ws.Entries() {
		if _, ok := reports[e.UserID]; ok {
			team = append(team, e)
		}
	}
	return Aggregate(team)
}

// FilteredEntries is the administrator view over raw entries.
func (s *Service) FilteredEntries(c timesheet.FilterCriteria) []timesheet.Entry {
	return FilterEntries(s.ws.Entries(), s.ws.Users(), c)
}

// FilteredSubmissions groups the filtered entries.
func (s *Service) FilteredSubmissions(c timesheet.FilterCriteria) []timesheet.Submission {
	return Aggregate(s.FilteredEntries(c))
}
