// Package pagestore implements the encrypted paged volume at the bottom of
// a SAI v1 document: page-level decryption (table pages keyed by page
// index, data pages keyed by a per-page checksum stored in their table),
// page-checksum verification, and a pair of 1-slot caches.
package pagestore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"

	"github.com/ashgrove-labs/saivault/internal/mmapstore"
	"github.com/ashgrove-labs/saivault/internal/xzvolume"
	"github.com/ashgrove-labs/saivault/keytable"
)

var (
	// ErrInvalidSize is returned by Open when the volume's length is not a
	// nonzero multiple of PageSize.
	ErrInvalidSize = errors.New("pagestore: file size is not a nonzero multiple of 4096")
	// ErrChecksumMismatch is returned by Fetch when a decrypted data page's
	// checksum does not match the value recorded in its table entry.
	ErrChecksumMismatch = errors.New("pagestore: page checksum mismatch")
)

// Store owns a read-only volume and its two 1-slot page caches. It is not
// safe for concurrent use: callers share a Store only under their own
// synchronization, per the single-threaded model this format assumes.
type Store struct {
	r         io.ReaderAt
	closer    io.Closer
	pageCount uint32
	key       *[256]uint32

	tableCache *tinylfu.T[uint32, page]
	dataCache  *tinylfu.T[uint32, page]
}

// Option configures Open.
type Option func(*openConfig)

type openConfig struct {
	mmap bool
	xz   bool
	key  *[256]uint32
}

// WithMmap backs the store with a memory-mapped view of the file instead of
// os.File.ReadAt.
func WithMmap() Option {
	return func(c *openConfig) { c.mmap = true }
}

// WithXZ transparently decompresses an xz-compressed volume before opening
// it as a page store. Mutually exclusive with WithMmap, since the
// decompressed content must be spooled to a seekable temp file first;
// WithXZ takes priority if both are given.
func WithXZ() Option {
	return func(c *openConfig) { c.xz = true }
}

// WithKey overrides the key table used for page decryption. Defaults to
// keytable.User, the only table that applies to user-saved documents.
func WithKey(key *[256]uint32) Option {
	return func(c *openConfig) { c.key = key }
}

// Open validates and opens a SAI v1 volume at path.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := openConfig{key: &keytable.User}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		r      io.ReaderAt
		closer io.Closer
		size   int64
	)
	switch {
	case cfg.xz:
		rdr, c, err := xzvolume.Open(path)
		if err != nil {
			return nil, fmt.Errorf("pagestore: %w", err)
		}
		r, closer = rdr, c
		sz, err := sizeOf(r)
		if err != nil {
			closer.Close()
			return nil, fmt.Errorf("pagestore: %w", err)
		}
		size = sz
	case cfg.mmap:
		rdr, c, err := mmapstore.Open(path)
		if err != nil {
			return nil, fmt.Errorf("pagestore: %w", err)
		}
		r, closer = rdr, c
		sz, err := sizeOf(r)
		if err != nil {
			closer.Close()
			return nil, fmt.Errorf("pagestore: %w", err)
		}
		size = sz
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("pagestore: %w", err)
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("pagestore: %w", err)
		}
		r, closer, size = f, f, info.Size()
	}

	if size <= 0 || size%PageSize != 0 {
		closer.Close()
		return nil, ErrInvalidSize
	}

	s := &Store{
		r:         r,
		closer:    closer,
		pageCount: uint32(size / PageSize),
		key:       cfg.key,
		tableCache: tinylfu.New[uint32, page](1, 10, hashPageIndex,
			tinylfu.OnEvict(func(uint32, page) {})),
		dataCache: tinylfu.New[uint32, page](1, 10, hashPageIndex,
			tinylfu.OnEvict(func(uint32, page) {})),
	}
	return s, nil
}

// sizeOf asks a reader for its total extent via an optional Size() int64
// method (satisfied by *os.File through Stat handled separately, and by
// internal/mmapstore and internal/xzvolume's readers).
func sizeOf(r io.ReaderAt) (int64, error) {
	type sizer interface{ Size() int64 }
	if s, ok := r.(sizer); ok {
		return s.Size(), nil
	}
	return 0, fmt.Errorf("pagestore: reader %T does not report a size", r)
}

func hashPageIndex(k uint32) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], k)
	return xxhash.Sum64(b[:])
}

// PageCount returns the number of 4096-byte pages in the volume.
func (s *Store) PageCount() uint32 { return s.pageCount }

// Close releases the underlying file.
func (s *Store) Close() error { return s.closer.Close() }

// Fetch returns the decrypted bytes of page index, validating the result
// against its table entry's checksum for data pages.
func (s *Store) Fetch(index uint32) ([PageSize]byte, error) {
	if index >= s.pageCount {
		return [PageSize]byte{}, fmt.Errorf("pagestore: page %d out of range (have %d)", index, s.pageCount)
	}

	if isTableIndex(index) {
		p, err := s.fetchTable(index)
		if err != nil {
			return [PageSize]byte{}, err
		}
		return pageToBytes(p), nil
	}

	p, err := s.fetchData(index)
	if err != nil {
		return [PageSize]byte{}, err
	}
	return pageToBytes(p), nil
}

func (s *Store) fetchTable(index uint32) (page, error) {
	if p, ok := s.tableCache.Get(index); ok {
		return p, nil
	}

	raw, err := s.readRaw(index)
	if err != nil {
		return page{}, err
	}
	p := bytesToPage(raw)
	decryptTable(s.key, index, &p)
	s.tableCache.Add(index, p)
	return p, nil
}

func (s *Store) fetchData(index uint32) (page, error) {
	if p, ok := s.dataCache.Get(index); ok {
		return p, nil
	}

	tbl, err := s.fetchTable(nearestTable(index))
	if err != nil {
		return page{}, err
	}
	entry := tbl.entries()[index%tableSpan]

	raw, err := s.readRaw(index)
	if err != nil {
		return page{}, err
	}
	p := bytesToPage(raw)
	decryptData(s.key, entry.Checksum, &p)

	if got := checksum(&p); got != entry.Checksum {
		return page{}, fmt.Errorf("%w: page %d: got %#x, table says %#x", ErrChecksumMismatch, index, got, entry.Checksum)
	}

	s.dataCache.Add(index, p)
	return p, nil
}

// tableEntryFor returns a single decrypted table entry, so NextPageIndex
// does not have to re-derive page math. It fetches (and caches) the owning
// table page as a side effect.
func (s *Store) tableEntryFor(index uint32) (tableEntry, error) {
	tbl, err := s.fetchTable(nearestTable(index))
	if err != nil {
		return tableEntry{}, err
	}
	return tbl.entries()[index%tableSpan], nil
}

// NextPageIndex returns the chained next-page index recorded for page
// index in its owning table, used to walk file and directory-overflow
// chains.
func (s *Store) NextPageIndex(index uint32) (uint32, error) {
	e, err := s.tableEntryFor(index)
	if err != nil {
		return 0, err
	}
	return e.NextPageIndex, nil
}

func (s *Store) readRaw(index uint32) ([PageSize]byte, error) {
	var buf [PageSize]byte
	_, err := io.ReadFull(sectionAt(s.r, int64(index)*PageSize), buf[:])
	if err != nil {
		return buf, fmt.Errorf("pagestore: read page %d: %w", index, err)
	}
	return buf, nil
}

// sectionAt adapts an io.ReaderAt plus a fixed offset into an io.Reader
// suitable for io.ReadFull, without allocating an io.SectionReader per call.
func sectionAt(r io.ReaderAt, off int64) io.Reader {
	return &offsetReader{r: r, off: off}
}

type offsetReader struct {
	r   io.ReaderAt
	off int64
}

func (o *offsetReader) Read(p []byte) (int, error) {
	n, err := o.r.ReadAt(p, o.off)
	o.off += int64(n)
	return n, err
}

func bytesToPage(b [PageSize]byte) page {
	var p page
	for i := range p {
		p[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return p
}

func pageToBytes(p page) [PageSize]byte {
	var b [PageSize]byte
	for i, w := range p {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}
