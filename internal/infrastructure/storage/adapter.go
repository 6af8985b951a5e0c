// Package storage maps settings fields onto a key-value backend as
// namespaced JSON values.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/bnema/mytab/internal/domain/repository"
	"github.com/bnema/mytab/internal/logging"
)

// DefaultKeyPrefix namespaces every key written by the adapter.
const DefaultKeyPrefix = "mytab_"

var errNotPointer = errors.New("destination must be a non-nil pointer")

// Adapter is a fault-tolerant JSON view over a KeyValueRepository.
type Adapter struct {
	repo   repository.KeyValueRepository
	prefix string
}

// NewAdapter creates an adapter. An empty prefix selects DefaultKeyPrefix.
func NewAdapter(repo repository.KeyValueRepository, prefix string) *Adapter {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Adapter{repo: repo, prefix: prefix}
}

// Prefix returns the key namespace.
func (a *Adapter) Prefix() string {
	return a.prefix
}

// Load decodes the value stored under key into dst. It returns false, leaving
// dst untouched, when the key is absent, empty, null or undecodable, or when
// the backend fails.
func (a *Adapter) Load(ctx context.Context, key string, dst any) bool {
	log := logging.FromContext(ctx)

	raw, err := a.repo.Get(ctx, a.prefix+key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to read setting, using default")
		return false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false
	}

	if err := decodeInto(raw, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to decode setting, using default")
		return false
	}
	return true
}

// Save encodes value and writes it under key. Failures are logged.
func (a *Adapter) Save(ctx context.Context, key string, value any) {
	log := logging.FromContext(ctx)

	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode setting")
		return
	}
	if err := a.repo.Set(ctx, a.prefix+key, raw); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save setting")
		return
	}
	log.Trace().Str("key", key).Int("bytes", len(raw)).Msg("setting saved")
}

// Keys lists the unprefixed keys stored in this namespace.
func (a *Adapter) Keys(ctx context.Context) ([]string, error) {
	all, err := a.repo.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	keys := make([]string, 0, len(all))
	for _, k := range all {
		if strings.HasPrefix(k, a.prefix) {
			keys = append(keys, strings.TrimPrefix(k, a.prefix))
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Dump returns the raw stored JSON for every key in this namespace.
func (a *Adapter) Dump(ctx context.Context) (map[string]json.RawMessage, error) {
	keys, err := a.Keys(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		raw, err := a.repo.Get(ctx, a.prefix+k)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", k, err)
		}
		if !json.Valid(raw) {
			// keep corrupt values visible as strings
			raw, _ = json.Marshal(string(raw))
		}
		out[k] = raw
	}
	return out, nil
}

// Reset deletes every key in this namespace.
func (a *Adapter) Reset(ctx context.Context) error {
	keys, err := a.Keys(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := a.repo.Delete(ctx, a.prefix+k); err != nil {
			return fmt.Errorf("failed to delete %s: %w", k, err)
		}
	}
	logging.FromContext(ctx).Info().Int("count", len(keys)).Msg("settings storage reset")
	return nil
}

// decodeInto unmarshals into a fresh value so a failed decode cannot leave
// dst half written.
func decodeInto(raw []byte, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errNotPointer
	}
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}
