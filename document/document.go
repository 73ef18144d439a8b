// Package document layers the canvas-level helpers described in §4.4.3's
// "Canvas helper" and "Layer table helper" over a raw vfs.Vfs: reading the
// fixed-layout canvas/thumbnail files and walking the layer/sublayer
// tables. Grounded on vfs.FileEntry's io.Reader shape.
package document

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ashgrove-labs/saivault/internal/thumbcache"
	"github.com/ashgrove-labs/saivault/pagestore"
	"github.com/ashgrove-labs/saivault/vfs"
)

// ErrInvalidFormat covers a thumbnail magic mismatch.
var ErrInvalidFormat = errors.New("document: invalid format")

var thumbnailMagic = [4]byte{'B', 'M', '3', '2'}

// Document wraps a vfs.Vfs with the project-level reads a SAI v1 volume
// exposes through its well-known file names.
type Document struct {
	vfs  *vfs.Vfs
	path string
}

// Open opens path as a v1 volume and wraps it as a Document. path is kept
// for use as a cache key alongside internal/thumbcache.
func Open(path string, opts ...pagestore.Option) (*Document, error) {
	v, err := vfs.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{vfs: v, path: path}, nil
}

// New wraps an already-open Vfs. path is used only as a cache key.
func New(v *vfs.Vfs, path string) *Document {
	return &Document{vfs: v, path: path}
}

// Close closes the underlying volume.
func (d *Document) Close() error { return d.vfs.Close() }

// Vfs exposes the underlying virtual file system.
func (d *Document) Vfs() *vfs.Vfs { return d.vfs }

// CanvasInfo is the parsed contents of the volume's "canvas" file.
type CanvasInfo struct {
	// Alignment is preserved verbatim; its meaning is unknown and it is
	// never interpreted.
	Alignment     uint32
	Width, Height uint32
}

// CanvasSize reads the "canvas" file, per §4.4.3.
func (d *Document) CanvasSize() (CanvasInfo, error) {
	var buf [12]byte
	if err := readExactFile(d.vfs, "canvas", buf[:]); err != nil {
		return CanvasInfo{}, err
	}
	return CanvasInfo{
		Alignment: binary.LittleEndian.Uint32(buf[0:4]),
		Width:     binary.LittleEndian.Uint32(buf[4:8]),
		Height:    binary.LittleEndian.Uint32(buf[8:12]),
	}, nil
}

// Thumbnail reads the "thumbnail" file: a (width, height, "BM32" magic)
// header followed by width*height BGRA pixels, per §4.4.3. cache may be
// nil; when non-nil it is consulted first, keyed by the thumbnail file's
// FileEntry.ID, and populated on a cache miss. A cache that fails to open
// or read degrades silently to re-decoding from the volume.
func (d *Document) Thumbnail(cache *thumbcache.Cache) (pixels []byte, width, height int, err error) {
	entry, err := d.vfs.GetEntry("thumbnail")
	if err != nil {
		return nil, 0, 0, err
	}

	var cacheKey uint64
	if cache != nil {
		cacheKey = entry.ID(d.path)
		if cached, ok := cache.Get(cacheKey); ok {
			var hdr [12]byte
			if err := readExact(entry, hdr[:]); err == nil {
				w := int(binary.LittleEndian.Uint32(hdr[0:4]))
				h := int(binary.LittleEndian.Uint32(hdr[4:8]))
				return cached, w, h, nil
			}
		}
	}

	var hdr [12]byte
	if err := readExact(entry, hdr[:]); err != nil {
		return nil, 0, 0, err
	}
	w := binary.LittleEndian.Uint32(hdr[0:4])
	h := binary.LittleEndian.Uint32(hdr[4:8])
	if [4]byte{hdr[8], hdr[9], hdr[10], hdr[11]} != thumbnailMagic {
		return nil, 0, 0, fmt.Errorf("document: %w: bad thumbnail magic", ErrInvalidFormat)
	}

	pix := make([]byte, int(w)*int(h)*4)
	if err := readExact(entry, pix); err != nil {
		return nil, 0, 0, err
	}

	if cache != nil {
		cache.Put(cacheKey, pix)
	}
	return pix, int(w), int(h), nil
}

// LayerRef is one entry of a layer or sublayer table.
type LayerRef struct {
	ID   uint32
	Type uint16
}

// IterateLayerFiles reads "laytbl" and, for each entry, opens
// "/layers/<id:08x>", calling fn with the entry and its file handle. fn
// returning an error stops iteration and is returned to the caller.
func (d *Document) IterateLayerFiles(fn func(LayerRef, *vfs.FileEntry) error) error {
	return d.iterateLayerTable("laytbl", "/layers/%08x", fn)
}

// IterateSubLayerFiles is IterateLayerFiles over "subtbl" and
// "/sublayers/<id:08x>".
func (d *Document) IterateSubLayerFiles(fn func(LayerRef, *vfs.FileEntry) error) error {
	return d.iterateLayerTable("subtbl", "/sublayers/%08x", fn)
}

func (d *Document) iterateLayerTable(tableFile, pathFormat string, fn func(LayerRef, *vfs.FileEntry) error) error {
	entry, err := d.vfs.GetEntry(tableFile)
	if err != nil {
		return err
	}

	var countBuf [4]byte
	if err := readExact(entry, countBuf[:]); err != nil {
		return err
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	rec := make([]byte, 8)
	for i := uint32(0); i < count; i++ {
		if err := readExact(entry, rec); err != nil {
			return err
		}
		ref := LayerRef{
			ID:   binary.LittleEndian.Uint32(rec[0:4]),
			Type: binary.LittleEndian.Uint16(rec[4:6]),
		}

		layerEntry, err := d.vfs.GetEntry(fmt.Sprintf(pathFormat, ref.ID))
		if err != nil {
			return err
		}
		if err := fn(ref, layerEntry); err != nil {
			return err
		}
	}
	return nil
}

func readExactFile(v *vfs.Vfs, path string, dest []byte) error {
	entry, err := v.GetEntry(path)
	if err != nil {
		return err
	}
	return readExact(entry, dest)
}

// readExact fills dest entirely from entry, treating a short final read as
// io.ErrUnexpectedEOF rather than silently returning a partial buffer.
func readExact(entry *vfs.FileEntry, dest []byte) error {
	n := 0
	for n < len(dest) {
		read, err := entry.Read(dest[n:])
		if read == 0 && err == nil {
			return io.ErrUnexpectedEOF
		}
		n += read
		if err != nil {
			return err
		}
	}
	return nil
}
