package sqlitestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
)

type snapshotRow struct {
	Key       string `gorm:"primaryKey"`
	Doc       string
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "snapshots" }

// SnapshotStore is an embedded single-file backend for laptop installs and
// staging sandboxes. Same key/value semantics as the postgres store.
type SnapshotStore struct {
	db *gorm.DB
}

func Open(path string) (*SnapshotStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite snapshot store: %w", err)
	}

	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite snapshot store: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SnapshotStore) load(ctx context.Context, key string) ([]byte, bool, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	return []byte(row.Doc), true, nil
}

func (s *SnapshotStore) save(ctx context.Context, key string, raw []byte) error {
	row := snapshotRow{Key: key, Doc: string(raw), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Save(&row).Error
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) Load(ctx context.Context, env snapshot.Environment) (snapshot.Document, bool, error) {
	key, err := snapshot.Key(env)
	if err != nil {
		return snapshot.Document{}, false, err
	}
	raw, found, err := s.load(ctx, key)
	if err != nil || !found {
		return snapshot.Document{}, false, err
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
	return s.save(ctx, key, raw)
}

func (s *SnapshotStore) ActiveEnvironment(ctx context.Context) (snapshot.Environment, bool, error) {
	raw, found, err := s.load(ctx, snapshot.KeyActive)
	if err != nil || !found {
		return "", false, err
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
	return s.save(ctx, snapshot.KeyActive, raw)
}
