// Package directory manages users and enforces the account-protection rules
// the approval workflow depends on.
package directory

import (
	"context"

	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

type Service struct {
	ws *workspace.Manager
}

func NewService(ws *workspace.Manager) *Service {
	return &Service{ws: ws}
}

func (s *Service) Users() []user.Public {
	all := s.ws.Users()
	out := make([]user.Public, len(all))
	for i, u := range all {
		out[i] = u.ToPublic()
	}
	return out
}

func (s *Service) UserByID(id int64) (user.Public, error) {
	u, ok := s.ws.UserByID(id)
	if !ok {
		return user.Public{}, user.ErrUserNotFound
	}
	return u.ToPublic(), nil
}

// PrimaryAdminID returns the protected primary administrator: by policy, the
// Admin-role user with the lowest numeric ID. The comparison is explicit so
// the rule does not depend on insertion order.
func (s *Service) PrimaryAdminID() (int64, bool) {
	var (
		found bool
		minID int64
	)
	for _, u := range s.ws.Users() {
		if u.Role != user.RoleAdmin {
			continue
		}
		if !found || u.ID < minID {
			minID = u.ID
			found = true
		}
	}
	return minID, found
}

// validateManagerReference enforces that managerId, when set, references an
// existing Manager-role user.
func (s *Service) validateManagerReference(managerID *int64) error {
	if managerID == nil {
		return nil
	}
	mgr, ok := s.ws.UserByID(*managerID)
	if !ok || !mgr.IsManager() {
		return user.ErrManagerReference
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req user.CreateUserRequest) (user.Public, error) {
	if err := req.Validate(); err != nil {
		return user.Public{}, err
	}
	if err := s.validateManagerReference(req.ManagerID); err != nil {
		return user.Public{}, err
	}

	role, _ := user.ParseRole(req.Role)
	password := req.Password
	if password == "" {
		password = "password"
	}

	created, err := s.ws.AddUser(ctx, user.User{
		Name:       req.Name,
		Role:       role,
		Department: req.Department,
		Password:   password,
		ManagerID:  req.ManagerID,
	})
	if err != nil {
		return user.Public{}, err
	}
	return created.ToPublic(), nil
}

// Update edits a user. The primary administrator may never be demoted, and no
// administrator may change its own role.
func (s *Service) Update(ctx context.Context, actingID int64, req user.UpdateUserRequest) (user.Public, error) {
	if err := req.Validate(); err != nil {
		return user.Public{}, err
	}

	existing, ok := s.ws.UserByID(req.ID)
	if !ok {
		return user.Public{}, user.ErrUserNotFound
	}

	role, _ := user.ParseRole(req.Role)
	if role != existing.Role {
		if primaryID, ok := s.PrimaryAdminID(); ok && req.ID == primaryID {
			return user.Public{}, user.ErrProtectedAccount
		}
		if req.ID == actingID {
			return user.Public{}, user.ErrProtectedAccount
		}
	}

	if err := s.validateManagerReference(req.ManagerID); err != nil {
		return user.Public{}, err
	}

	updated, err := s.ws.UpdateUser(ctx, user.User{
		ID:         req.ID,
		Name:       req.Name,
		Role:       role,
		Department: req.Department,
		ManagerID:  req.ManagerID,
	})
	if err != nil {
		return user.Public{}, err
	}
	return updated.ToPublic(), nil
}

// Delete removes a user and cascades hard-deletion of their timesheet
// entries. The primary administrator can never be deleted, regardless of who
// is acting, and an administrator can never delete itself.
func (s *Service) Delete(ctx context.Context, actingID, userID int64) error {
	if _, ok := s.ws.UserByID(userID); !ok {
		return user.ErrUserNotFound
	}
	if primaryID, ok := s.PrimaryAdminID(); ok && userID == primaryID {
		return user.ErrProtectedAccount
	}
	if userID == actingID {
		return user.ErrProtectedAccount
	}
	return s.ws.RemoveUser(ctx, userID)
}

func (s *Service) ResetPassword(ctx context.Context, userID int64, password string) error {
	return s.ws.SetUserPassword(ctx, userID, password)
}
