package timesheet

import (
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

// Service exposes the submission grouping, approval workflow, and daily
// submission builder over one environment's workspace.
type Service struct {
	ws *workspace.Manager
}

func NewService(ws *workspace.Manager) *Service {
	return &Service{ws: ws}
}
