package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tracklight/timesheet-backend-go/internal/pkg/database"
	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
)

// SnapshotStore persists environment documents in a single key/value table.
// Each Save is a whole-document upsert, so last write wins.
type SnapshotStore struct {
	db *database.DB
}

func NewSnapshotStore(db *database.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Migrate creates the snapshots table if it does not exist.
func (s *SnapshotStore) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Load(ctx context.Context, env snapshot.Environment) (snapshot.Document, bool, error) {
	key, err := snapshot.Key(env)
	if err != nil {
		return snapshot.Document{}, false, err
	}

	var raw []byte
	err = s.db.QueryRow(ctx, `SELECT doc FROM snapshots WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return snapshot.Document{}, false, nil
	}
	if err != nil {
		return snapshot.Document{}, false, fmt.Errorf("load snapshot %s: %w", key, err)
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

	_, err = s.db.Exec(ctx, `
		INSERT INTO snapshots (key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, key, raw)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) ActiveEnvironment(ctx context.Context) (snapshot.Environment, bool, error) {
	var raw []byte
	err := s.db.QueryRow(ctx, `SELECT doc FROM snapshots WHERE key = $1`, snapshot.KeyActive).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load active environment: %w", err)
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
	_, err = s.db.Exec(ctx, `
		INSERT INTO snapshots (key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, snapshot.KeyActive, raw)
	if err != nil {
		return fmt.Errorf("save active environment: %w", err)
	}
	return nil
}
