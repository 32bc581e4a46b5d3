package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
)

func openTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadMissing(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.Load(context.Background(), snapshot.EnvLive)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc := snapshot.Seed()
	require.NoError(t, store.Save(ctx, snapshot.EnvLive, doc))

	loaded, found, err := store.Load(ctx, snapshot.EnvLive)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, doc, loaded)

	// Environments have independent keys.
	_, found, err = store.Load(ctx, snapshot.EnvStaging)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc := snapshot.Seed()
	require.NoError(t, store.Save(ctx, snapshot.EnvLive, doc))

	doc.Projects = doc.Projects[:1]
	require.NoError(t, store.Save(ctx, snapshot.EnvLive, doc))

	loaded, _, err := store.Load(ctx, snapshot.EnvLive)
	require.NoError(t, err)
	assert.Len(t, loaded.Projects, 1)
}

func TestActiveEnvironment(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, found, err := store.ActiveEnvironment(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetActiveEnvironment(ctx, snapshot.EnvStaging))

	env, found, err := store.ActiveEnvironment(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snapshot.EnvStaging, env)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, snapshot.EnvLive, snapshot.Seed()))
	require.NoError(t, store.SetActiveEnvironment(ctx, snapshot.EnvLive))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	_, found, err := reopened.Load(ctx, snapshot.EnvLive)
	require.NoError(t, err)
	assert.True(t, found)
}
