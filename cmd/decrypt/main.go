// Command decrypt writes the decrypted byte stream of a SAI v1 volume to a
// plain file, the same bytes the VFS and Document layers read pages out of.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ashgrove-labs/saivault/internal/volopen"
	"github.com/ashgrove-labs/saivault/pagestore"
	"github.com/ashgrove-labs/saivault/volstream"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	opts, args := volopen.Args(os.Args[1:])
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-mmap] <in.sai[.xz]> <out.bin>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(args[0], args[1], opts); err != nil {
		slog.Error("decryptFailed", "in", args[0], "out", args[1], "err", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, opts []pagestore.Option) error {
	store, err := pagestore.Open(inPath, opts...)
	if err != nil {
		return err
	}
	defer store.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, volstream.New(store))
	return err
}
