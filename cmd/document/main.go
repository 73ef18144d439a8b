// Command document prints a summary of one or more SAI v1 volumes: canvas
// size and layer/sublayer table contents.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ashgrove-labs/saivault/document"
	"github.com/ashgrove-labs/saivault/internal/volopen"
	"github.com/ashgrove-labs/saivault/pagestore"
	"github.com/ashgrove-labs/saivault/vfs"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	opts, args := volopen.Args(os.Args[1:])
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-mmap] <in.sai[.xz]>...\n", os.Args[0])
		os.Exit(1)
	}

	status := 0
	for _, path := range args {
		if err := dump(path, opts); err != nil {
			slog.Error("documentFailed", "path", path, "err", err)
			status = 1
		}
	}
	os.Exit(status)
}

func dump(path string, opts []pagestore.Option) error {
	doc, err := document.Open(path, opts...)
	if err != nil {
		return err
	}
	defer doc.Close()

	fmt.Println(path)

	canvas, err := doc.CanvasSize()
	if err != nil {
		return err
	}
	fmt.Printf("  canvas: %dx%d (alignment=%d)\n", canvas.Width, canvas.Height, canvas.Alignment)

	err = doc.IterateLayerFiles(func(ref document.LayerRef, entry *vfs.FileEntry) error {
		fmt.Printf("  layer %08x: type=%d size=%d\n", ref.ID, ref.Type, entry.Size())
		return nil
	})
	if err != nil {
		return fmt.Errorf("laytbl: %w", err)
	}

	err = doc.IterateSubLayerFiles(func(ref document.LayerRef, entry *vfs.FileEntry) error {
		fmt.Printf("  sublayer %08x: type=%d size=%d\n", ref.ID, ref.Type, entry.Size())
		return nil
	})
	if err != nil {
		return fmt.Errorf("subtbl: %w", err)
	}

	return nil
}
