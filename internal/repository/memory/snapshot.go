package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
)

// SnapshotStore keeps environment documents in process memory. Used by tests
// and ephemeral runs. Documents round-trip through JSON so callers never
// share slices with the store, matching the persistence backends.
type SnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{data: make(map[string][]byte)}
}

func (s *SnapshotStore) Load(ctx context.Context, env snapshot.Environment) (snapshot.Document, bool, error) {
	key, err := snapshot.Key(env)
	if err != nil {
		return snapshot.Document{}, false, err
	}

	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return snapshot.Document{}, false, nil
	}

	var doc snapshot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return snapshot.Document{}, false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return doc, true, nil
}

func (s *SnapshotStore) Save(ctx context.Context, env snapshot.Environment, doc snapshot.Document) error {
	key, err := snapshot.Key(env)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *SnapshotStore) ActiveEnvironment(ctx context.Context) (snapshot.Environment, bool, error) {
	s.mu.RLock()
	raw, ok := s.data[snapshot.KeyActive]
	s.mu.RUnlock()
	if !ok {
		return "", false, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", false, fmt.Errorf("decode active environment: %w", err)
	}
	env, err := snapshot.ParseEnvironment(name)
	if err != nil {
		return "", false, err
	}
	return env, true, nil
}

func (s *SnapshotStore) SetActiveEnvironment(ctx context.Context, env snapshot.Environment) error {
	raw, err := json.Marshal(string(env))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[snapshot.KeyActive] = raw
	s.mu.Unlock()
	return nil
}
