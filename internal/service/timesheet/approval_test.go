package timesheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
)

func TestDecideValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Decide(ctx, timesheet.DecideRequest{UserID: 2, Date: "2025-11-04", Action: "escalate"})
	assert.ErrorIs(t, err, timesheet.ErrInvalidAction)

	_, err = svc.Decide(ctx, timesheet.DecideRequest{UserID: 2, Action: timesheet.ActionApprove})
	assert.ErrorIs(t, err, timesheet.ErrDateRequired)
}

func TestDecideRejectRequiresComment(t *testing.T) {
	svc, ws := newTestService(t)

	_, err := svc.Decide(context.Background(), timesheet.DecideRequest{
		UserID: 2, Date: "2025-11-04", Action: timesheet.ActionReject, Comments: "   ",
	})
	require.ErrorIs(t, err, timesheet.ErrEmptyRejectionComment)

	// The failed decision must not have touched the entries.
	for _, e := range ws.EntriesByUser(2) {
		assert.Equal(t, timesheet.StatusPending, e.Status)
		assert.Nil(t, e.ManagerComments)
	}
}

func TestDecideRejectOverwritesComments(t *testing.T) {
	svc, ws := newTestService(t)

	sub, err := svc.Decide(context.Background(), timesheet.DecideRequest{
		UserID: 2, Date: "2025-11-04", Action: timesheet.ActionReject, Comments: "  needs detail  ",
	})
	require.NoError(t, err)

	assert.Equal(t, timesheet.StatusRejected, sub.Status)
	assert.Equal(t, 8.0, sub.TotalHours)
	require.Len(t, sub.Entries, 2)

	for _, e := range ws.EntriesByUser(2) {
		assert.Equal(t, timesheet.StatusRejected, e.Status)
		require.NotNil(t, e.ManagerComments)
		assert.Equal(t, "needs detail", *e.ManagerComments)
	}
}

func TestDecideApproveLeavesCommentsUntouched(t *testing.T) {
	svc, ws := newTestService(t)

	// Alice's 2025-11-05 entry is seeded as Rejected with a manager comment.
	// Approving the day flips the status but keeps the historical comment.
	sub, err := svc.Decide(context.Background(), timesheet.DecideRequest{
		UserID: 1, Date: "2025-11-05", Action: timesheet.ActionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, sub.Status)

	for _, e := range ws.EntriesByUser(1) {
		if e.Date != "2025-11-05" {
			continue
		}
		assert.Equal(t, timesheet.StatusApproved, e.Status)
		require.NotNil(t, e.ManagerComments)
		assert.Equal(t, "Hours seem too high for this task. Please verify.", *e.ManagerComments)
	}
}

func TestDecideApprovesWholeDay(t *testing.T) {
	svc, _ := newTestService(t)

	sub, err := svc.Decide(context.Background(), timesheet.DecideRequest{
		UserID: 2, Date: "2025-11-04", Action: timesheet.ActionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, sub.Status)
	for _, e := range sub.Entries {
		assert.Equal(t, timesheet.StatusApproved, e.Status)
	}
}

func TestDecideUnknownSubmission(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Decide(context.Background(), timesheet.DecideRequest{
		UserID: 2, Date: "2025-12-25", Action: timesheet.ActionApprove,
	})
	assert.ErrorIs(t, err, timesheet.ErrSubmissionNotFound)
}
