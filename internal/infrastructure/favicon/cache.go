package favicon

import (
	"context"
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/infrastructure/cache"
	"github.com/bnema/mytab/internal/logging"
)

const (
	// memoryEntries and memoryBytes bound the in-memory tier.
	memoryEntries = 256
	memoryBytes   = 4 << 20
	// File permissions for favicon cache.
	diskCacheDirPerm  = 0o750
	diskCacheFilePerm = 0o600
)

// Cache provides two-tier favicon caching (LRU memory + diskv files).
type Cache struct {
	mem  port.Cache[string, []byte]
	disk *diskv.Diskv
}

// NewCache creates a new favicon cache.
// If diskDir is empty, only in-memory caching is used.
func NewCache(diskDir string) *Cache {
	mem := cache.NewLRU[string, []byte](memoryEntries).
		WithMaxWeight(memoryBytes, func(b []byte) int64 { return int64(len(b)) })
	c := &Cache{mem: mem}
	if diskDir != "" {
		c.disk = diskv.New(diskv.Options{
			BasePath:  diskDir,
			Transform: shardTransform,
			FilePerm:  diskCacheFilePerm,
			PathPerm:  diskCacheDirPerm,
		})
	}
	return c
}

// shardTransform spreads files over two-letter subdirectories.
func shardTransform(key string) []string {
	if len(key) < 2 {
		return []string{}
	}
	return []string{key[:2]}
}

// cacheKey builds a file-safe key for a host at a given size.
func cacheKey(host string, size int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(host) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	b.WriteByte('@')
	b.WriteString(strconv.Itoa(size))
	return b.String()
}

// Get checks memory first, then disk. Disk hits are promoted to memory.
func (c *Cache) Get(key string) ([]byte, bool) {
	if data, ok := c.mem.Get(key); ok {
		return data, true
	}
	if c.disk == nil {
		return nil, false
	}
	data, err := c.disk.Read(key)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	c.mem.Set(key, data)
	return data, true
}

// Set stores data in both tiers. Disk failures are logged and ignored.
func (c *Cache) Set(ctx context.Context, key string, data []byte) {
	c.mem.Set(key, data)
	if c.disk == nil {
		return
	}
	if err := c.disk.Write(key, data); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to write favicon to disk")
	}
}

// Len returns the number of icons held in memory.
func (c *Cache) Len() int {
	return c.mem.Len()
}

// Clear drops both tiers.
func (c *Cache) Clear() error {
	c.mem.Clear()
	if c.disk == nil {
		return nil
	}
	if err := c.disk.EraseAll(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
