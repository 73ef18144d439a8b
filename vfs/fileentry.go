package vfs

import (
	"time"

	"github.com/ashgrove-labs/saivault/internal/fileid"
	"github.com/ashgrove-labs/saivault/pagestore"
)

// FileEntry is a handle onto one file's content, bound to the Vfs (and
// therefore its page store's caches) it was created from. A FileEntry must
// not outlive its Vfs.
type FileEntry struct {
	vfs *Vfs
	fat FATEntry

	pos        int64
	curPage    uint32
	pageOffset int
}

func newFileEntry(v *Vfs, fat FATEntry) *FileEntry {
	return &FileEntry{vfs: v, fat: fat, curPage: fat.PageIndex}
}

func (f *FileEntry) Name() string         { return f.fat.Name }
func (f *FileEntry) Type() EntryType      { return f.fat.Type }
func (f *FileEntry) Size() uint32         { return f.fat.Size }
func (f *FileEntry) PageIndex() uint32    { return f.fat.PageIndex }
func (f *FileEntry) Tell() int64          { return f.pos }
func (f *FileEntry) Timestamp() time.Time { return filetimeToUnix(f.fat.Timestamp) }

// ID returns a stable identifier for this entry within its volume, for use
// as a cache key (see internal/thumbcache).
func (f *FileEntry) ID(volumePath string) uint64 {
	return fileid.ID(volumePath, f.fat.PageIndex, f.fat.Name)
}

// Seek repositions the read cursor, walking the page chain from the file's
// first page exactly as §4.4.3 describes.
func (f *FileEntry) Seek(newOffset int64) error {
	page := f.fat.PageIndex
	steps := newOffset / pagestore.PageSize
	for i := int64(0); i < steps; i++ {
		next, err := f.vfs.store.NextPageIndex(page)
		if err != nil {
			return err
		}
		page = next
	}
	f.curPage = page
	f.pageOffset = int(newOffset % pagestore.PageSize)
	f.pos = newOffset
	return nil
}

// Read implements io.Reader, stopping at the file's declared Size even if
// the underlying page chain carries more data.
func (f *FileEntry) Read(dest []byte) (int, error) {
	n := 0
	for n < len(dest) {
		remaining := int64(f.fat.Size) - f.pos
		if remaining <= 0 {
			break
		}

		pg, err := f.vfs.store.Fetch(f.curPage)
		if err != nil {
			return n, err
		}

		take := pagestore.PageSize - f.pageOffset
		if want := len(dest) - n; take > want {
			take = want
		}
		if int64(take) > remaining {
			take = int(remaining)
		}
		if take == 0 {
			break
		}

		copy(dest[n:n+take], pg[f.pageOffset:f.pageOffset+take])
		n += take
		f.pos += int64(take)
		f.pageOffset += take

		if f.pageOffset == pagestore.PageSize {
			next, err := f.vfs.store.NextPageIndex(f.curPage)
			if err != nil {
				return n, err
			}
			f.curPage = next
			f.pageOffset = 0
		}
	}
	return n, nil
}
