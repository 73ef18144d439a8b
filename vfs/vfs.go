// Package vfs implements the FAT-like directory tree laid over an
// encrypted page store: path resolution, directory iteration, and file
// handles. Grounded on the reference VirtualFileSystem::GetEntry and
// IterateFileSystem and on internal/resourcefork's table-plus-entries
// pattern for building an fs-shaped overlay from raw offsets.
package vfs

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ashgrove-labs/saivault/pagestore"
)

var (
	// ErrPathNotFound is returned when no FAT entry matches a requested path.
	ErrPathNotFound = errors.New("vfs: path not found")
	// ErrPathNotFolder is returned when an intermediate path component
	// names a file rather than a folder.
	ErrPathNotFolder = errors.New("vfs: path component is not a folder")
)

// Vfs is a read-only view of the FAT tree rooted at page 2 of a page store.
type Vfs struct {
	store *pagestore.Store
}

// Open opens the underlying volume and wraps it in a Vfs.
func Open(path string, opts ...pagestore.Option) (*Vfs, error) {
	store, err := pagestore.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return New(store), nil
}

// New wraps an already-open page store.
func New(store *pagestore.Store) *Vfs {
	return &Vfs{store: store}
}

// Close closes the underlying store.
func (v *Vfs) Close() error { return v.store.Close() }

// Store exposes the underlying page store, e.g. for volstream.New.
func (v *Vfs) Store() *pagestore.Store { return v.store }

// splitPath tokenizes a path on both '.' and '/', the legacy separator set
// described in §4.4.1, discarding empty tokens from repeated or leading/
// trailing separators.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '.' || r == '/'
	})
}

// readDirPage reads and decodes up to entriesPerDirPage FAT entries from
// page, without chasing overflow; stops decoding early is not attempted
// here, callers interpret the Flags==0 terminator themselves.
func (v *Vfs) readDirPage(page uint32) ([entriesPerDirPage]FATEntry, error) {
	var out [entriesPerDirPage]FATEntry
	raw, err := v.store.Fetch(page)
	if err != nil {
		return out, err
	}
	for i := range out {
		off := i * fatEntrySize
		out[i] = parseFATEntry(raw[off : off+fatEntrySize])
	}
	return out, nil
}

// findInDir scans a directory's page chain for name, per §4.4.1 steps 1-4.
func (v *Vfs) findInDir(dirPage uint32, name string) (FATEntry, bool, error) {
	page := dirPage
	for {
		entries, err := v.readDirPage(page)
		if err != nil {
			return FATEntry{}, false, err
		}

		terminated := false
		for _, e := range entries {
			if e.Flags == 0 {
				terminated = true
				break
			}
			if e.Name == name {
				return e, true, nil
			}
		}
		if terminated {
			return FATEntry{}, false, nil
		}

		next, err := v.store.NextPageIndex(page)
		if err != nil {
			return FATEntry{}, false, err
		}
		if next == 0 {
			return FATEntry{}, false, nil
		}
		slog.Debug("directoryOverflowChase", "from", page, "to", next, "name", name)
		page = next
	}
}

// GetEntry resolves path to a file handle, per §4.4.1.
func (v *Vfs) GetEntry(path string) (*FileEntry, error) {
	tokens := splitPath(path)
	if len(tokens) == 0 {
		return nil, ErrPathNotFound
	}

	dirPage := uint32(rootPageIndex)
	for i, tok := range tokens {
		entry, found, err := v.findInDir(dirPage, tok)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrPathNotFound
		}
		if i == len(tokens)-1 {
			return newFileEntry(v, entry), nil
		}
		if entry.Type != TypeFolder {
			return nil, ErrPathNotFolder
		}
		dirPage = entry.PageIndex
	}
	return nil, ErrPathNotFound
}

// Exists reports whether path resolves to a FAT entry.
func (v *Vfs) Exists(path string) bool {
	_, err := v.GetEntry(path)
	return err == nil
}

// Glob matches every path discovered by Iterate against pattern using
// doublestar semantics (supporting "**").
func (v *Vfs) Glob(pattern string) ([]string, error) {
	var matches []string
	var stack []string

	err := v.Iterate(Visitor{
		FolderBegin: func(e FATEntry) bool {
			stack = append(stack, e.Name)
			if ok, _ := doublestar.Match(pattern, strings.Join(stack, "/")); ok {
				matches = append(matches, strings.Join(stack, "/"))
			}
			return true
		},
		FolderEnd: func(e FATEntry) bool {
			stack = stack[:len(stack)-1]
			return true
		},
		File: func(e FATEntry) bool {
			p := strings.Join(append(append([]string{}, stack...), e.Name), "/")
			if ok, _ := doublestar.Match(pattern, p); ok {
				matches = append(matches, p)
			}
			return true
		},
	})
	return matches, err
}
