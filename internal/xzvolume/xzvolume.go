// Package xzvolume lets the page store transparently open an
// xz-compressed SAI volume. A page store needs random access, so the
// decompressed content is spooled to a temp file before being handed back.
package xzvolume

import (
	"fmt"
	"io"
	"os"

	"github.com/therootcompany/xz"
)

var magic = [6]byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// File is a seekable, random-access view of a (possibly xz-compressed)
// volume, implementing io.ReaderAt, io.Closer, and Size() for
// pagestore.Open.
type File struct {
	f       *os.File
	tmpPath string // non-empty when f is a spooled decompressed copy
}

// Open returns a File over path's decompressed content if it is
// xz-compressed, or over the raw file otherwise. Closing the File removes
// any spooled temp file.
func Open(path string) (*File, *File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xzvolume: %w", err)
	}

	var hdr [6]byte
	n, _ := io.ReadFull(f, hdr[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("xzvolume: %w", err)
	}

	if n < len(hdr) || hdr != magic {
		file := &File{f: f}
		return file, file, nil
	}

	zr, err := xz.NewReader(f, xz.DefaultDictMax)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("xzvolume: %w", err)
	}

	spool, err := os.CreateTemp("", "saivault-xz-*.tmp")
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("xzvolume: %w", err)
	}
	if _, err := io.Copy(spool, zr); err != nil {
		spool.Close()
		os.Remove(spool.Name())
		f.Close()
		return nil, nil, fmt.Errorf("xzvolume: decompress: %w", err)
	}
	f.Close()

	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		spool.Close()
		os.Remove(spool.Name())
		return nil, nil, fmt.Errorf("xzvolume: %w", err)
	}

	file := &File{f: spool, tmpPath: spool.Name()}
	return file, file, nil
}

// Size reports the decompressed (or original, if not xz) file length.
func (f *File) Size() int64 {
	info, err := f.f.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

// ReadAt implements io.ReaderAt over the (possibly spooled) file.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.f.ReadAt(p, off)
}

// Close releases the underlying file and removes any spooled temp file.
func (f *File) Close() error {
	err := f.f.Close()
	if f.tmpPath != "" {
		os.Remove(f.tmpPath)
	}
	return err
}
