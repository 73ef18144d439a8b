// Package thumbcache persists decoded thumbnail pixel buffers (RGBA from
// sai2's tile codec, BGRA from document's v1 thumbnail file) so
// re-extracting a thumbnail from the same volume skips decoding it again.
// Two-tier, grounded on the teacher's FS: an in-memory go-tinylfu front
// (matching internal/spinner's block cache) over a cockroachdb/pebble
// on-disk store (matching fs.go's db *pebble.DB metadata store).
package thumbcache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/pebble/v2"
	"github.com/dgryski/go-tinylfu"
)

const memCacheSize = 64

// Cache is a read-through cache keyed by the 64-bit identifiers produced
// by internal/fileid.
type Cache struct {
	db  *pebble.DB
	mem *tinylfu.T[uint64, []byte]
}

// Open opens (creating if necessary) a pebble store rooted at dir.
func Open(dir string) (*Cache, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("thumbcache: %w", err)
	}
	return &Cache{
		db: db,
		mem: tinylfu.New[uint64, []byte](memCacheSize, memCacheSize*10, hashKey,
			tinylfu.OnEvict(func(uint64, []byte) {})),
	}, nil
}

// Close closes the on-disk store. Safe to call on a nil *Cache.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns a cached pixel buffer for id, if present.
func (c *Cache) Get(id uint64) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	if v, ok := c.mem.Get(id); ok {
		return v, true
	}

	v, closer, err := c.db.Get(keyBytes(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			slog.Debug("thumbcacheMiss", "id", id)
		} else {
			// A corrupt or unreadable on-disk cache degrades to a miss;
			// the caller always has the uncached decode path available.
			slog.Debug("thumbcacheReadError", "id", id, "err", err)
		}
		return nil, false
	}
	defer closer.Close()

	out := append([]byte(nil), v...)
	c.mem.Add(id, out)
	return out, true
}

// Put stores a decoded pixel buffer under id.
func (c *Cache) Put(id uint64, rgba []byte) {
	if c == nil {
		return
	}
	c.mem.Add(id, rgba)
	_ = c.db.Set(keyBytes(id), rgba, pebble.NoSync)
}

func keyBytes(id uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], id)
	return b[:]
}

func hashKey(k uint64) uint64 { return k }
