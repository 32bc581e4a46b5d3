package workspace

import (
	"context"

	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
)

// Entry store operations. Reads return copies so callers can never mutate
// the snapshot behind the manager's back; every mutation persists the whole
// document before returning.

func (m *Manager) Entries() []timesheet.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]timesheet.Entry, len(m.doc.TimesheetEntries))
	copy(out, m.doc.TimesheetEntries)
	return out
}

func (m *Manager) EntriesByUser(userID int64) []timesheet.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []timesheet.Entry
	for _, e := range m.doc.TimesheetEntries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// AppendEntries adds a batch of entries as one persisted write. The batch is
// all-or-nothing: a persistence failure leaves the in-memory state unchanged.
func (m *Manager) AppendEntries(ctx context.Context, entries []timesheet.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.doc.TimesheetEntries
	m.doc.TimesheetEntries = append(append([]timesheet.Entry{}, prev...), entries...)
	if err := m.persist(ctx); err != nil {
		m.doc.TimesheetEntries = prev
		return err
	}
	return nil
}

// UpdateEntryStatus sets the status of every listed entry. When comments is
// non-nil it overwrites each entry's manager comment; when nil the existing
// comments are left untouched (approval never mutates comments).
func (m *Manager) UpdateEntryStatus(ctx context.Context, entryIDs []string, status timesheet.Status, comments *string) error {
	ids := make(map[string]struct{}, len(entryIDs))
	for _, id := range entryIDs {
		ids[id] = struct{}{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.doc.TimesheetEntries
	next := make([]timesheet.Entry, len(prev))
	copy(next, prev)
	for i := range next {
		if _, ok := ids[next[i].ID]; !ok {
			continue
		}
		next[i].Status = status
		if comments != nil {
			c := *comments
			next[i].ManagerComments = &c
		}
	}

	m.doc.TimesheetEntries = next
	if err := m.persist(ctx); err != nil {
		m.doc.TimesheetEntries = prev
		return err
	}
	return nil
}

// removeEntriesByUserLocked hard-deletes every entry owned by the user.
// Only the user-deletion cascade calls this; there is no soft delete.
func (m *Manager) removeEntriesByUserLocked(userID int64) {
	var kept []timesheet.Entry
	for _, e := range m.doc.TimesheetEntries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	m.doc.TimesheetEntries = kept
}
