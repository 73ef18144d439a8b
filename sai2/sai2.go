// Package sai2 reads the SAI v2 container: a 64-byte header, a table of
// typed blob descriptors, and (for the "intg" entry) a tile-compressed
// thumbnail. Unlike the v1 volume, a v2 file is read whole into memory and
// is never encrypted. Grounded on vfs's FAT-table-plus-entries shape,
// adapted from a page-chained tree to a flat in-memory table.
package sai2

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ashgrove-labs/saivault/internal/fileid"
	"github.com/ashgrove-labs/saivault/internal/thumbcache"
	"github.com/ashgrove-labs/saivault/internal/tilecodec"
)

const (
	headerSize     = 64
	tableEntrySize = 16
	identifier     = "SAI-CANVAS-TYPE0"
)

// ErrInvalidFormat covers a header or blob magic mismatch.
var ErrInvalidFormat = errors.New("sai2: invalid format")

var fourccThumbnail = [4]byte{'i', 'n', 't', 'g'}
var thumbnailBlobTag = [4]byte{'d', 'p', 'c', 'm'}

// Header is the file's fixed 64-byte preamble, per §4.5. UnknownA/B, flags
// and blending mode are preserved verbatim and never interpreted.
type Header struct {
	Width, Height       uint32
	PrintingResolution  uint32
	TableCount          uint32
	SelectedLayer       uint32
	UnknownA, UnknownB  uint64
	UnknownFlags        uint32
	UnknownBlendingMode uint32
	rawFlags            [4]byte
}

// HasAlpha reports whether flags[1] & 7 == 0, the thumbnail's alpha-channel
// presence signal.
func (h Header) HasAlpha() bool { return h.rawFlags[1]&7 == 0 }

// TableEntry is one 16-byte table row, per §4.5.
type TableEntry struct {
	Type        [4]byte
	LayerID     uint32
	BlobsOffset uint64
}

// Document is a parsed v2 container: header, table, and the raw file bytes
// the table entries' offsets index into.
type Document struct {
	Header Header
	Table  []TableEntry
	data   []byte
}

// Parse decodes a v2 document from its full file contents.
func Parse(data []byte) (*Document, error) {
	if len(data) < headerSize || string(data[:16]) != identifier {
		return nil, ErrInvalidFormat
	}

	var h Header
	copy(h.rawFlags[:], data[16:20])
	h.Width = binary.LittleEndian.Uint32(data[20:24])
	h.Height = binary.LittleEndian.Uint32(data[24:28])
	h.PrintingResolution = binary.LittleEndian.Uint32(data[28:32])
	h.TableCount = binary.LittleEndian.Uint32(data[32:36])
	h.SelectedLayer = binary.LittleEndian.Uint32(data[36:40])
	h.UnknownA = binary.LittleEndian.Uint64(data[40:48])
	h.UnknownB = binary.LittleEndian.Uint64(data[48:56])
	h.UnknownFlags = binary.LittleEndian.Uint32(data[56:60])
	h.UnknownBlendingMode = binary.LittleEndian.Uint32(data[60:64])

	table := make([]TableEntry, 0, h.TableCount)
	for i := uint32(0); i < h.TableCount; i++ {
		off := headerSize + int(i)*tableEntrySize
		if off+tableEntrySize > len(data) {
			return nil, ErrInvalidFormat
		}
		var e TableEntry
		copy(e.Type[:], data[off:off+4])
		e.LayerID = binary.LittleEndian.Uint32(data[off+4 : off+8])
		e.BlobsOffset = binary.LittleEndian.Uint64(data[off+8 : off+16])
		table = append(table, e)
	}

	return &Document{Header: h, Table: table, data: data}, nil
}

// blob returns entry i's slice of the file, bounded by the next entry's
// offset (or end-of-file for the last entry), per §4.5.
func (d *Document) blob(i int) ([]byte, error) {
	start := d.Table[i].BlobsOffset
	end := uint64(len(d.data))
	if i+1 < len(d.Table) {
		end = d.Table[i+1].BlobsOffset
	}
	if start > end || end > uint64(len(d.data)) {
		return nil, ErrInvalidFormat
	}
	return d.data[start:end], nil
}

// ExtractThumbnail locates the "intg" table entry and decodes its tile
// bitstream into RGBA pixels. cache may be nil; when non-nil, it is
// consulted and populated keyed by a hash of the header and table bytes,
// so re-extracting the same file's thumbnail skips the tile codec.
func (d *Document) ExtractThumbnail(cache *thumbcache.Cache) (pixels []byte, width, height int, err error) {
	idx := -1
	for i, e := range d.Table {
		if e.Type == fourccThumbnail {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, 0, 0, fmt.Errorf("sai2: %w: no thumbnail table entry", ErrInvalidFormat)
	}

	width, height = int(d.Header.Width), int(d.Header.Height)

	var cacheKey uint64
	if cache != nil {
		tableEnd := headerSize + len(d.Table)*tableEntrySize
		cacheKey = fileid.Bytes(d.data[:tableEnd])
		if cached, ok := cache.Get(cacheKey); ok {
			return cached, width, height, nil
		}
	}

	blob, err := d.blob(idx)
	if err != nil {
		return nil, 0, 0, err
	}
	if len(blob) < 4 || [4]byte{blob[0], blob[1], blob[2], blob[3]} != thumbnailBlobTag {
		return nil, 0, 0, fmt.Errorf("sai2: %w: bad thumbnail blob tag", ErrInvalidFormat)
	}
	if len(blob) < 8 {
		return nil, 0, 0, ErrInvalidFormat
	}
	// blob[4:8] is the declared decompressed size; the tile walk is
	// self-terminating so it is not otherwise consulted here.

	inputChannels := 4
	if !d.Header.HasAlpha() {
		inputChannels = 3
	}

	bgra, _, err := tilecodec.DecodeThumbnail(blob[8:], width, height, inputChannels)
	if err != nil {
		return nil, 0, 0, err
	}

	rgba := swapBR(bgra)

	if cache != nil {
		cache.Put(cacheKey, rgba)
	}
	return rgba, width, height, nil
}

// swapBR swaps the B and R channels of a BGRA buffer in place and returns
// it as RGBA, per §4.7's "Final pixel swizzle".
func swapBR(pix []byte) []byte {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
	return pix
}
