package storage_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/infrastructure/persistence/memory"
	"github.com/bnema/mytab/internal/infrastructure/storage"
	"github.com/bnema/mytab/internal/logging"
)

func captureCtx(buf *bytes.Buffer) context.Context {
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Output = buf
	cfg.Level = logging.ParseLevel("debug")
	return logging.WithContext(context.Background(), logging.New(cfg))
}

func TestAdapter_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewKeyValueRepository()
	a := storage.NewAdapter(repo, "")

	a.Save(ctx, "showClock", false)

	raw, err := repo.Get(ctx, "mytab_showClock")
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw), "keys are namespaced with the default prefix")

	v := true
	assert.True(t, a.Load(ctx, "showClock", &v))
	assert.False(t, v)
}

func TestAdapter_LoadFallsBack(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		stored []byte
	}{
		{name: "absent"},
		{name: "empty", stored: []byte("")},
		{name: "null", stored: []byte("null")},
		{name: "corrupt", stored: []byte("{not json")},
		{name: "wrong type", stored: []byte(`"seventy"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewKeyValueRepository()
			if tt.stored != nil {
				require.NoError(t, repo.Set(ctx, "mytab_backgroundBrightness", tt.stored))
			}
			a := storage.NewAdapter(repo, "")

			v := 70
			assert.False(t, a.Load(ctx, "backgroundBrightness", &v))
			assert.Equal(t, 70, v)
		})
	}
}

func TestAdapter_PartialDecodeLeavesDestinationUntouched(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewKeyValueRepository()
	require.NoError(t, repo.Set(ctx, "mytab_hitokotoTypes", []byte(`["a", 5]`)))
	a := storage.NewAdapter(repo, "")

	v := []string{"a", "b", "c"}
	assert.False(t, a.Load(ctx, "hitokotoTypes", &v))
	assert.Equal(t, []string{"a", "b", "c"}, v)
}

func TestAdapter_BackendFailuresAreSwallowed(t *testing.T) {
	var buf bytes.Buffer
	ctx := captureCtx(&buf)

	repo := memory.NewKeyValueRepository()
	repo.Fail = memory.ErrInjected
	a := storage.NewAdapter(repo, "")

	v := "google"
	assert.False(t, a.Load(ctx, "searchEngine", &v))
	assert.Equal(t, "google", v)
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	assert.NotPanics(t, func() { a.Save(ctx, "searchEngine", "bing") })
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"key":"searchEngine"`)
}

func TestAdapter_UnencodableValueIsLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx := captureCtx(&buf)
	repo := memory.NewKeyValueRepository()
	a := storage.NewAdapter(repo, "")

	a.Save(ctx, "bad", make(chan int))

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Contains(t, buf.String(), "failed to encode setting")
}

func TestAdapter_KeysDumpAndReset(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewKeyValueRepository()
	require.NoError(t, repo.Set(ctx, "other_key", []byte("1")))
	require.NoError(t, repo.Set(ctx, "custom_corrupt", []byte("{oops")))
	a := storage.NewAdapter(repo, "custom_")

	a.Save(ctx, "use24Hour", true)

	keys, err := a.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"corrupt", "use24Hour"}, keys)

	dump, err := a.Dump(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `true`, string(dump["use24Hour"]))
	assert.JSONEq(t, `"{oops"`, string(dump["corrupt"]))

	require.NoError(t, a.Reset(ctx))
	keys, err = a.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	other, err := repo.Get(ctx, "other_key")
	require.NoError(t, err)
	assert.Equal(t, "1", string(other), "keys outside the namespace are untouched")
}
