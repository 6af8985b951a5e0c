// Package diskv stores settings as one file per key.
package diskv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"github.com/bnema/mytab/internal/domain/repository"
	"github.com/bnema/mytab/internal/logging"
)

const (
	filePerm  = 0o600
	dirPerm   = 0o750
	cacheSize = 1024 * 1024 // 1MB
)

type kvRepo struct {
	d *diskv.Diskv
}

// NewKeyValueRepository creates a key-value repository rooted at basePath.
// Keys map directly to file names in a flat directory.
func NewKeyValueRepository(basePath string) repository.KeyValueRepository {
	return &kvRepo{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: cacheSize,
		FilePerm:     filePerm,
		PathPerm:     dirPerm,
	})}
}

func flatTransform(string) []string { return []string{} }

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return val, nil
}

func (r *kvRepo) Set(ctx context.Context, key string, value []byte) error {
	logging.FromContext(ctx).Trace().Str("key", key).Int("bytes", len(value)).Msg("writing kv file")
	if err := r.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Delete(_ context.Context, key string) error {
	if !r.d.Has(key) {
		return nil
	}
	if err := r.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to erase %s: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range r.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
