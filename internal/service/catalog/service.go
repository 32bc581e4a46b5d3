// Package catalog manages the project and activity reference data.
package catalog

import (
	"context"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

type Service struct {
	ws *workspace.Manager
}

func NewService(ws *workspace.Manager) *Service {
	return &Service{ws: ws}
}

func (s *Service) Projects() []catalog.Project {
	return s.ws.Projects()
}

// CreateProject adds a project. Project IDs are human-assigned and must be
// unique among active projects.
func (s *Service) CreateProject(ctx context.Context, req catalog.SaveProjectRequest) (catalog.Project, error) {
	if err := req.Validate(); err != nil {
		return catalog.Project{}, err
	}
	p := catalog.Project{ID: req.ID, Name: req.Name}
	if err := s.ws.AddProject(ctx, p); err != nil {
		return catalog.Project{}, err
	}
	return p, nil
}

// UpdateProject renames an existing project, or re-keys it when req.ID
// differs from prevID. Either way the change is one snapshot write, so a
// failure leaves the original project untouched.
func (s *Service) UpdateProject(ctx context.Context, prevID string, req catalog.SaveProjectRequest) (catalog.Project, error) {
	if err := req.Validate(); err != nil {
		return catalog.Project{}, err
	}

	p := catalog.Project{ID: req.ID, Name: req.Name}
	if req.ID != prevID {
		if err := s.ws.RekeyProject(ctx, prevID, p); err != nil {
			return catalog.Project{}, err
		}
		return p, nil
	}

	if err := s.ws.UpdateProject(ctx, p); err != nil {
		return catalog.Project{}, err
	}
	return p, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	return s.ws.RemoveProject(ctx, id)
}

func (s *Service) Activities() []catalog.Activity {
	return s.ws.Activities()
}

// CreateActivity adds a catalog activity. Entries snapshot the name/type pair
// at submission time, so later edits never rewrite historical entries.
func (s *Service) CreateActivity(ctx context.Context, req catalog.SaveActivityRequest) (catalog.Activity, error) {
	if err := req.Validate(); err != nil {
		return catalog.Activity{}, err
	}
	typ, _ := catalog.ParseActivityType(req.Type)
	return s.ws.AddActivity(ctx, catalog.Activity{Name: req.Name, Type: typ})
}

func (s *Service) UpdateActivity(ctx context.Context, req catalog.SaveActivityRequest) (catalog.Activity, error) {
	if err := req.Validate(); err != nil {
		return catalog.Activity{}, err
	}
	typ, _ := catalog.ParseActivityType(req.Type)
	a := catalog.Activity{ID: req.ID, Name: req.Name, Type: typ}
	if err := s.ws.UpdateActivity(ctx, a); err != nil {
		return catalog.Activity{}, err
	}
	return a, nil
}

func (s *Service) DeleteActivity(ctx context.Context, id int64) error {
	return s.ws.RemoveActivity(ctx, id)
}
