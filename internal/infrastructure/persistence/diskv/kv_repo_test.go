package diskv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/infrastructure/persistence/diskv"
)

func TestKeyValueRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	repo := diskv.NewKeyValueRepository(base)

	got, err := repo.Get(ctx, "mytab_groups")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "mytab_groups", []byte(`[{"id":"default"}]`)))
	require.NoError(t, repo.Set(ctx, "mytab_backgroundBlur", []byte(`8`)))

	got, err = repo.Get(ctx, "mytab_groups")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"default"}]`, string(got))

	_, err = os.Stat(filepath.Join(base, "mytab_groups"))
	require.NoError(t, err, "each key is a file in the base directory")

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mytab_backgroundBlur", "mytab_groups"}, keys)

	require.NoError(t, repo.Delete(ctx, "mytab_groups"))
	require.NoError(t, repo.Delete(ctx, "mytab_groups"))

	got, err = repo.Get(ctx, "mytab_groups")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKeyValueRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()

	require.NoError(t, diskv.NewKeyValueRepository(base).Set(ctx, "k", []byte(`"v"`)))

	got, err := diskv.NewKeyValueRepository(base).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"v"`, string(got))
}
