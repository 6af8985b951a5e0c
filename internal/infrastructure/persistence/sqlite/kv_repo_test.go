package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/mytab/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestKeyValueRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "mytab.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewKeyValueRepository(db)

	got, err := repo.Get(ctx, "mytab_missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "mytab_showClock", []byte("true")))
	require.NoError(t, repo.Set(ctx, "mytab_groups", []byte("[]")))
	require.NoError(t, repo.Set(ctx, "mytab_showClock", []byte("false")))

	got, err = repo.Get(ctx, "mytab_showClock")
	require.NoError(t, err)
	assert.Equal(t, "false", string(got))

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mytab_groups", "mytab_showClock"}, keys)

	require.NoError(t, repo.Delete(ctx, "mytab_groups"))
	require.NoError(t, repo.Delete(ctx, "mytab_groups"), "deleting an absent key is not an error")

	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mytab_showClock"}, keys)
}

func TestKeyValueRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "mytab.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewKeyValueRepository(db).Set(ctx, "k", []byte(`"v"`)))
	require.NoError(t, db.Close())

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := sqlite.NewKeyValueRepository(db).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"v"`, string(got))

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestLazyKeyValueRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "nested", "mytab.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyKeyValueRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	assert.True(t, lazy.IsInitialized())

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys)
}
