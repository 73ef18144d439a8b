// Package volstream implements the byte-granular random-access view over
// an encrypted page store; cmd/decrypt reads a whole volume through it,
// while vfs and document fetch pages from pagestore directly.
// It is the thin io.Reader/io.Seeker shim spec.md calls the "stream view";
// its shape is grounded on internal/sectionreader's ReaderAt, generalized
// to a live cursor since the underlying volume, unlike a sub-range of an
// archive member, is the whole page-addressed extent.
package volstream

import (
	"fmt"
	"io"

	"github.com/ashgrove-labs/saivault/pagestore"
)

// Stream is a seekable, byte-granular reader over a *pagestore.Store. It
// shares the store's caches with every other Stream and FileEntry bound to
// the same store; callers must not use a Stream concurrently with others
// against the same store without external synchronization.
type Stream struct {
	store *pagestore.Store
	pos   int64
}

// New wraps store in a Stream positioned at offset 0.
func New(store *pagestore.Store) *Stream {
	return &Stream{store: store}
}

func (s *Stream) end() int64 {
	return int64(s.store.PageCount()) * pagestore.PageSize
}

// Tell returns the current absolute byte offset.
func (s *Stream) Tell() int64 { return s.pos }

// Seek implements io.Seeker. "End" is page_count * 4096, per §4.3.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = s.end()
	default:
		return 0, fmt.Errorf("volstream: invalid whence %d", whence)
	}
	newPos := base + offset
	if newPos < 0 {
		return 0, fmt.Errorf("volstream: negative resulting offset %d", newPos)
	}
	s.pos = newPos
	return s.pos, nil
}

// Read implements io.Reader, filling p as far as possible. It short-reads
// at end-of-volume, and also when a page fetch fails after some bytes were
// already copied; the fetch error is then returned by the next Read.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.pos >= s.end() {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) && s.pos < s.end() {
		pageIndex := uint32(s.pos / pagestore.PageSize)
		offsetInPage := int(s.pos % pagestore.PageSize)

		pg, err := s.store.Fetch(pageIndex)
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, fmt.Errorf("volstream: %w", err)
		}

		take := pagestore.PageSize - offsetInPage
		if remaining := len(p) - n; take > remaining {
			take = remaining
		}
		if remaining := s.end() - s.pos; int64(take) > remaining {
			take = int(remaining)
		}

		copy(p[n:n+take], pg[offsetInPage:offsetInPage+take])
		n += take
		s.pos += int64(take)
	}
	return n, nil
}
