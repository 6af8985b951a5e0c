package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/domain/repository"
)

// LazyKeyValueRepository defers opening the database until the first
// key-value operation.
type LazyKeyValueRepository struct {
	provider port.DatabaseProvider
	repo     repository.KeyValueRepository
	once     sync.Once
	initErr  error
}

// NewLazyKeyValueRepository creates a lazy-loading key-value repository.
func NewLazyKeyValueRepository(provider port.DatabaseProvider) repository.KeyValueRepository {
	return &LazyKeyValueRepository{provider: provider}
}

func (r *LazyKeyValueRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewKeyValueRepository(db)
	})
	return r.initErr
}

func (r *LazyKeyValueRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, key)
}

func (r *LazyKeyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, key, value)
}

func (r *LazyKeyValueRepository) Delete(ctx context.Context, key string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, key)
}

func (r *LazyKeyValueRepository) Keys(ctx context.Context) ([]string, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Keys(ctx)
}
