package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
)

func TestRoundTrip(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	_, found, err := store.Load(ctx, snapshot.EnvLive)
	require.NoError(t, err)
	assert.False(t, found)

	doc := snapshot.Seed()
	require.NoError(t, store.Save(ctx, snapshot.EnvLive, doc))

	loaded, found, err := store.Load(ctx, snapshot.EnvLive)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, doc, loaded)
}

func TestDocumentsAreIsolatedCopies(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	doc := snapshot.Seed()
	require.NoError(t, store.Save(ctx, snapshot.EnvLive, doc))

	// Mutating the caller's slice after Save must not leak into the store.
	doc.Projects[0].Name = "Mutated"

	loaded, _, err := store.Load(ctx, snapshot.EnvLive)
	require.NoError(t, err)
	assert.Equal(t, "Phoenix Project", loaded.Projects[0].Name)
}

func TestActiveEnvironment(t *testing.T) {
	store := NewSnapshotStore()
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
