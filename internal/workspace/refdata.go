package workspace

import (
	"context"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
)

// Reference data operations (users, projects, activities). Existence and
// uniqueness checks live here; role policy (protected accounts, manager
// references) belongs to the directory and catalog services.

func (m *Manager) Users() []user.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]user.User, len(m.doc.Users))
	copy(out, m.doc.Users)
	return out
}

func (m *Manager) UserByID(id int64) (user.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.doc.Users {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

func (m *Manager) AddUser(ctx context.Context, u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var maxID int64
	for _, existing := range m.doc.Users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u.ID = maxID + 1

	prev := m.doc.Users
	m.doc.Users = append(append([]user.User{}, prev...), u)
	if err := m.persist(ctx); err != nil {
		m.doc.Users = prev
		return user.User{}, err
	}
	return u, nil
}

func (m *Manager) UpdateUser(ctx context.Context, u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.doc.Users
	next := make([]user.User, len(prev))
	copy(next, prev)
	found := false
	for i := range next {
		if next[i].ID == u.ID {
			// Credentials are managed separately; keep the stored one.
			u.Password = next[i].Password
			next[i] = u
			found = true
			break
		}
	}
	if !found {
		return user.User{}, user.ErrUserNotFound
	}

	m.doc.Users = next
	if err := m.persist(ctx); err != nil {
		m.doc.Users = prev
		return user.User{}, err
	}
	return u, nil
}

func (m *Manager) SetUserPassword(ctx context.Context, userID int64, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.doc.Users
	next := make([]user.User, len(prev))
	copy(next, prev)
	found := false
	for i := range next {
		if next[i].ID == userID {
			next[i].Password = password
			found = true
			break
		}
	}
	if !found {
		return user.ErrUserNotFound
	}

	m.doc.Users = next
	if err := m.persist(ctx); err != nil {
		m.doc.Users = prev
		return err
	}
	return nil
}

// RemoveUser deletes the user and cascades hard-deletion of every timesheet
// entry they own, in one snapshot write. Destructive and irreversible.
func (m *Manager) RemoveUser(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prevUsers := m.doc.Users
	prevEntries := m.doc.TimesheetEntries

	var kept []user.User
	found := false
	for _, u := range prevUsers {
		if u.ID == userID {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return user.ErrUserNotFound
	}

	m.doc.Users = kept
	m.removeEntriesByUserLocked(userID)
	if err := m.persist(ctx); err != nil {
		m.doc.Users = prevUsers
		m.doc.TimesheetEntries = prevEntries
		return err
	}
	return nil
}

func (m *Manager) Projects() []catalog.Project {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]catalog.Project, len(m.doc.Projects))
	copy(out, m.doc.Projects)
	return out
}

func (m *Manager) ProjectByID(id string) (catalog.Project, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.doc.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Project{}, false
}

func (m *Manager) AddProject(ctx context.Context, p catalog.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.doc.Projects {
		if existing.ID == p.ID {
			return catalog.ErrDuplicateProjectID
		}
	}

	prev := m.doc.Projects
	m.doc.Projects = append(append([]catalog.Project{}, prev...), p)
	if err := m.persist(ctx); err != nil {
		m.doc.Projects = prev
		return err
	}
	return nil
}

func (m *Manager) UpdateProject(ctx context.Context, p catalog.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.doc.Projects
	next := make([]catalog.Project, len(prev))
	copy(next, prev)
	found := false
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = p
			found = true
			break
		}
	}
	if !found {
		return catalog.ErrProjectNotFound
	}

	m.doc.Projects = next
	if err := m.persist(ctx); err != nil {
		m.doc.Projects = prev
		return err
	}
	return nil
}

// RekeyProject replaces the project stored under prevID with p in one
// snapshot write, so a failed persist leaves the original project in place.
func (m *Manager) RekeyProject(ctx context.Context, prevID string, p catalog.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.doc.Projects {
		if existing.ID == p.ID {
			return catalog.ErrDuplicateProjectID
		}
	}

	prev := m.doc.Projects
	next := make([]catalog.Project, len(prev))
	copy(next, prev)
	found := false
	for i := range next {
		if next[i].ID == prevID {
			next[i] = p
			found = true
			break
		}
	}
	if !found {
		return catalog.ErrProjectNotFound
	}

	m.doc.Projects = next
	if err := m.persist(ctx); err != nil {
		m.doc.Projects = prev
		return err
	}
	return nil
}

func (m *Manager) RemoveProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.doc.Projects
	var kept []catalog.Project
	found := false
	for _, p := range prev {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return catalog.ErrProjectNotFound
	}

	m.doc.Projects = kept
	if err := m.persist(ctx); err != nil {
		m.doc.Projects = prev
		return err
	}
	return nil
}

func (m *Manager) Activities() []catalog.Activity {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]catalog.Activity, len(m.doc.Activities))
	copy(out, m.doc.Activities)
	return out
}

// FindActivity resolves a name/type pair against the catalog.
func (m *Manager) FindActivity(name string, typ catalog.ActivityType) (catalog.Activity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.doc.Activities {
		if a.Name == name && a.Type == typ {
			return a, true
		}
	}
	return catalog.Activity{}, false
}

func (m *Manager) AddActivity(ctx context.Context, a catalog.Activity) (catalog.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var maxID int64
	for _, existing := range m.doc.Activities {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	a.ID = maxID + 1

	prev := m.doc.Activities
	m.doc.Activities = append(append([]catalog.Activity{}, prev...), a)
	if err := m.persist(ctx); err != nil {
		m.doc.Activities = prev
		return catalog.Activity{}, err
	}
	return a, nil
}

func (m *Manager) UpdateActivity(ctx context.Context, a catalog.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.doc.Activities
	next := make([]catalog.Activity, len(prev))
	copy(next, prev)
	found := false
	for i := range next {
		if next[i].ID == a.ID {
			next[i] = a
			found = true
			break
		}
	}
	if !found {
		return catalog.ErrActivityNotFound
	}

	m.doc.Activities = next
	if err := m.persist(ctx); err != nil {
		m.doc.Activities = prev
		return err
	}
	return nil
}

func (m *Manager) RemoveActivity(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.doc.Activities
	var kept []catalog.Activity
	found := false
	for _, a := range prev {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return catalog.ErrActivityNotFound
	}

	m.doc.Activities = kept
	if err := m.persist(ctx); err != nil {
		m.doc.Activities = prev
		return err
	}
	return nil
}
