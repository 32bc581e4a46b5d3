// Package workspace owns the active environment and its in-memory snapshot.
//
// The design assumes a single logical writer per environment: one Manager
// serializes all operations in-process with a mutex, and every mutation
// rewrites the environment's whole snapshot (write-through, last write wins).
// There is no optimistic-concurrency token or merge strategy across
// processes; that is an explicit product limitation, not an oversight.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
)

var ErrNotStaging = errors.New("reset is only available in the Staging environment")

type Manager struct {
	store snapshot.Store

	mu  sync.Mutex
	env snapshot.Environment
	doc snapshot.Document
}

// Open restores the last active environment (defaulting to Live) and loads
// its snapshot, seeding a fresh one when none exists yet.
func Open(ctx context.Context, store snapshot.Store) (*Manager, error) {
	env, found, err := store.ActiveEnvironment(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore active environment: %w", err)
	}
	if !found {
		env = snapshot.EnvLive
		if err := store.SetActiveEnvironment(ctx, env); err != nil {
			return nil, err
		}
	}

	m := &Manager{store: store}
	if err := m.load(ctx, env); err != nil {
		return nil, err
	}
	return m, nil
}

// load replaces all in-memory state with the target environment's snapshot.
func (m *Manager) load(ctx context.Context, env snapshot.Environment) error {
	doc, found, err := m.store.Load(ctx, env)
	if err != nil {
		return err
	}
	if !found {
		doc = snapshot.Seed()
		if err := m.store.Save(ctx, env, doc); err != nil {
			return err
		}
	}
	m.env = env
	m.doc = doc
	return nil
}

func (m *Manager) Environment() snapshot.Environment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.env
}

// Switch performs a hard context switch: it discards the in-memory snapshot
// and loads (or seeds) the target environment before any further operation.
func (m *Manager) Switch(ctx context.Context, env snapshot.Environment) error {
	if _, err := snapshot.ParseEnvironment(string(env)); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.load(ctx, env); err != nil {
		return err
	}
	return m.store.SetActiveEnvironment(ctx, env)
}

// ResetStaging reseeds the Staging snapshot. Only permitted while Staging is
// the active environment; Live data is never resettable.
func (m *Manager) ResetStaging(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.env != snapshot.EnvStaging {
		return ErrNotStaging
	}
	m.doc = snapshot.Seed()
	return m.persist(ctx)
}

// persist writes the whole current document. Callers hold the lock.
func (m *Manager) persist(ctx context.Context) error {
	return m.store.Save(ctx, m.env, m.doc)
}
