package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
)

func entry(userID int64, date string, hours float64, status timesheet.Status) timesheet.Entry {
	return timesheet.Entry{
		ID:     date + "-" + string(status),
		UserID: userID,
		Date:   date,
		Hours:  hours,
		Status: status,
	}
}

func TestAggregateStatusPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		statuses []timesheet.Status
		want     timesheet.Status
	}{
		{"all approved", []timesheet.Status{timesheet.StatusApproved, timesheet.StatusApproved}, timesheet.StatusApproved},
		{"pending blocks approval", []timesheet.Status{timesheet.StatusApproved, timesheet.StatusPending}, timesheet.StatusPending},
		{"rejected taints the day", []timesheet.Status{timesheet.StatusApproved, timesheet.StatusPending, timesheet.StatusRejected}, timesheet.StatusRejected},
		{"single pending", []timesheet.Status{timesheet.StatusPending}, timesheet.StatusPending},
		{"single rejected", []timesheet.Status{timesheet.StatusRejected}, timesheet.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []timesheet.Entry
			for _, s := range tt.statuses {
				entries = append(entries, entry(1, "2025-11-04", 2, s))
			}
			subs := Aggregate(entries)
			require.Len(t, subs, 1)
			assert.Equal(t, tt.want, subs[0].Status)
		})
	}
}

func TestAggregateGroupsAndTotals(t *testing.T) {
	entries := []timesheet.Entry{
		entry(1, "2025-11-04", 6, timesheet.StatusPending),
		entry(1, "2025-11-04", 2, timesheet.StatusPending),
		entry(2, "2025-11-04", 8, timesheet.StatusApproved),
		entry(1, "2025-11-05", 4, timesheet.StatusRejected),
	}

	subs := Aggregate(entries)
	require.Len(t, subs, 3)

	// Date descending, ties broken by employee ID ascending.
	assert.Equal(t, "2025-11-05", subs[0].Date)
	assert.Equal(t, int64(1), subs[0].UserID)
	assert.Equal(t, "2025-11-04", subs[1].Date)
	assert.Equal(t, int64(1), subs[1].UserID)
	assert.Equal(t, "2025-11-04", subs[2].Date)
	assert.Equal(t, int64(2), subs[2].UserID)

	assert.Equal(t, 8.0, subs[1].TotalHours)
	assert.Len(t, subs[1].Entries, 2)
	assert.Equal(t, 8.0, subs[2].TotalHours)
}

func TestAggregateOrderIndependence(t *testing.T) {
	entries := []timesheet.Entry{
		entry(1, "2025-11-04", 6, timesheet.StatusPending),
		entry(1, "2025-11-04", 2, timesheet.StatusRejected),
		entry(2, "2025-11-05", 8, timesheet.StatusApproved),
	}
	reversed := make([]timesheet.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	a := Aggregate(entries)
	b := Aggregate(reversed)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].UserID, b[i].UserID)
		assert.Equal(t, a[i].Date, b[i].Date)
		assert.Equal(t, a[i].Status, b[i].Status)
		assert.Equal(t, a[i].TotalHours, b[i].TotalHours)
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestFilterEntries(t *testing.T) {
	users := []user.User{
		{ID: 1, Department: "Engineering"},
		{ID: 2, Department: "Design"},
	}
	entries := []timesheet.Entry{
		entry(1, "2025-11-03", 8, timesheet.StatusApproved),
		entry(1, "2025-11-04", 8, timesheet.StatusPending),
		entry(2, "2025-11-04", 6, timesheet.StatusPending),
		entry(2, "2025-11-05", 4, timesheet.StatusRejected),
	}

	t.Run("department", func(t *testing.T) {
		got := FilterEntries(entries, users, timesheet.FilterCriteria{Department: "Design"})
		require.Len(t, got, 2)
		for _, e := range got {
			assert.Equal(t, int64(2), e.UserID)
		}
	})

	t.Run("status", func(t *testing.T) {
		pending := timesheet.StatusPending
		got := FilterEntries(entries, users, timesheet.FilterCriteria{Status: &pending})
		assert.Len(t, got, 2)
	})

	t.Run("inclusive date range", func(t *testing.T) {
		got := FilterEntries(entries, users, timesheet.FilterCriteria{StartDate: "2025-11-04", EndDate: "2025-11-04"})
		assert.Len(t, got, 2)
	})

	t.Run("user and date combined", func(t *testing.T) {
		uid := int64(1)
		got := FilterEntries(entries, users, timesheet.FilterCriteria{UserID: &uid, StartDate: "2025-11-04"})
		require.Len(t, got, 1)
		assert.Equal(t, "2025-11-04", got[0].Date)
	})

	t.Run("unknown owner excluded by department filter", func(t *testing.T) {
		orphan := []timesheet.Entry{entry(99, "2025-11-04", 1, timesheet.StatusPending)}
		got := FilterEntries(orphan, users, timesheet.FilterCriteria{Department: "Engineering"})
		assert.Empty(t, got)
	})
}

func TestTeamSubmissionsOnlyDirectReports(t *testing.T) {
	svc, _ := newTestService(t)

	// Charlie (3) manages Alice (1) and Bob (2). Diana's entry must not appear.
	subs := svc.TeamSubmissions(3)
	require.Len(t, subs, 3)
	for _, sub := range subs {
		assert.Contains(t, []int64{1, 2}, sub.UserID)
	}

	assert.Equal(t, "2025-11-05", subs[0].Date)
	assert.Equal(t, timesheet.StatusRejected, subs[0].Status)
}

func TestSubmissionsForUser(t *testing.T) {
	svc, _ := newTestService(t)

	subs := svc.SubmissionsForUser(2)
	require.Len(t, subs, 1)
	assert.Equal(t, "2025-11-04", subs[0].Date)
	assert.Equal(t, 8.0, subs[0].TotalHours)
	assert.Equal(t, timesheet.StatusPending, subs[0].Status)
	assert.Len(t, subs[0].Entries, 2)
}
