// Command thumbnail extracts a document's thumbnail and writes it as a
// PNG. It accepts either a SAI v1 volume (optionally xz-compressed or
// opened through an mmap) or a standalone SAI v2 file, detected by the
// latter's header magic.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ashgrove-labs/saivault/document"
	"github.com/ashgrove-labs/saivault/internal/thumbcache"
	"github.com/ashgrove-labs/saivault/internal/volopen"
	"github.com/ashgrove-labs/saivault/pagestore"
	"github.com/ashgrove-labs/saivault/sai2"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	opts, args := volopen.Args(os.Args[1:])
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-mmap] <in.sai[.xz]> <out.png>\n", os.Args[0])
		os.Exit(1)
	}

	cache := openCache()
	defer cache.Close()

	if err := run(args[0], args[1], opts, cache); err != nil {
		slog.Error("thumbnailFailed", "in", args[0], "out", args[1], "err", err)
		os.Exit(1)
	}
}

// openCache opens the on-disk thumbnail cache under the user's cache
// directory. A failure to open it (e.g. no HOME in a sandboxed build)
// degrades to a nil *thumbcache.Cache, which Get/Put/Close treat as an
// always-miss no-op, so thumbnail extraction still works uncached.
func openCache() *thumbcache.Cache {
	dir, err := os.UserCacheDir()
	if err != nil {
		slog.Warn("thumbcacheDirUnavailable", "err", err)
		return nil
	}

	cache, err := thumbcache.Open(filepath.Join(dir, "saivault", "thumbnails"))
	if err != nil {
		slog.Warn("thumbcacheOpenFailed", "err", err)
		return nil
	}
	return cache
}

func run(inPath, outPath string, opts []pagestore.Option, cache *thumbcache.Cache) error {
	rgba, width, height, err := extract(inPath, opts, cache)
	if err != nil {
		return err
	}

	img := &image.RGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, img)
}

func extract(inPath string, opts []pagestore.Option, cache *thumbcache.Cache) (rgba []byte, width, height int, err error) {
	if isV2(inPath) {
		data, err := os.ReadFile(inPath)
		if err != nil {
			return nil, 0, 0, err
		}
		doc, err := sai2.Parse(data)
		if err != nil {
			return nil, 0, 0, err
		}
		return doc.ExtractThumbnail(cache)
	}

	doc, err := document.Open(inPath, opts...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer doc.Close()

	bgra, w, h, err := doc.Thumbnail(cache)
	if err != nil {
		return nil, 0, 0, err
	}
	return swapBR(bgra), w, h, nil
}

func isV2(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var magic [16]byte
	n, _ := f.Read(magic[:])
	return n == 16 && string(magic[:]) == "SAI-CANVAS-TYPE0"
}

func swapBR(pix []byte) []byte {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
	return pix
}
