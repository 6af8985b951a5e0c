// Package memory provides an in-process key-value repository for ephemeral
// sessions and tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/bnema/mytab/internal/domain/repository"
)

// KeyValueRepository is a map guarded by a mutex.
type KeyValueRepository struct {
	mu   sync.RWMutex
	data map[string][]byte

	// Fail, when set, makes every operation return it.
	Fail error
}

var _ repository.KeyValueRepository = (*KeyValueRepository)(nil)

// ErrInjected is a convenience value for Fail.
var ErrInjected = errors.New("injected storage failure")

// NewKeyValueRepository creates an empty repository.
func NewKeyValueRepository() *KeyValueRepository {
	return &KeyValueRepository{data: make(map[string][]byte)}
}

func (r *KeyValueRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Fail != nil {
		return nil, r.Fail
	}
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r *KeyValueRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	r.data[key] = stored
	return nil
}

func (r *KeyValueRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	delete(r.data, key)
	return nil
}

func (r *KeyValueRepository) Keys(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Fail != nil {
		return nil, r.Fail
	}
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
