package timesheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/repository/memory"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

// newTestService opens a workspace over an in-memory store, which seeds the
// default dataset: users 1-6, projects PROJ-001/PROJ-002/CRM-101, and five
// entries across 2025-11-04 and 2025-11-05.
func newTestService(t *testing.T) (*Service, *workspace.Manager) {
	t.Helper()
	ws, err := workspace.Open(context.Background(), memory.NewSnapshotStore())
	require.NoError(t, err)
	return NewService(ws), ws
}
