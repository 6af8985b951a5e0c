package sqlite_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/mytab/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_CloseWithoutOpening(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "mytab.db"))

	assert.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
	_, err := os.Stat(lazy.Path())
	assert.True(t, os.IsNotExist(err), "nothing is created before first use")
}

func TestLazyDB_ConcurrentWritersShareOneConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "mytab.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewLazyKeyValueRepository(lazy)

	const writers = 8
	var g errgroup.Group
	for i := range writers {
		g.Go(func() error {
			return repo.Set(ctx, "mytab_k"+strconv.Itoa(i), []byte(strconv.Itoa(i)))
		})
	}
	require.NoError(t, g.Wait())

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, writers)

	first, err := lazy.DB(ctx)
	require.NoError(t, err)
	second, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)

	var tables int
	require.NoError(t, first.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'").Scan(&tables))
	assert.Equal(t, 1, tables)
}

func TestLazyKeyValueRepository_OpenFailureIsSticky(t *testing.T) {
	ctx := testCtx()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "mytab.db"))
	repo := sqlite.NewLazyKeyValueRepository(lazy)

	_, err := repo.Get(ctx, "mytab_groups")
	require.Error(t, err)
	assert.ErrorContains(t, repo.Set(ctx, "mytab_groups", []byte("[]")), "database initialization failed")
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}
