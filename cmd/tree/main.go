// Command tree prints the directory tree of one or more SAI v1 volumes.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

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
			slog.Error("treeFailed", "path", path, "err", err)
			status = 1
		}
	}
	os.Exit(status)
}

func dump(path string, opts []pagestore.Option) error {
	v, err := vfs.Open(path, opts...)
	if err != nil {
		return err
	}
	defer v.Close()

	fmt.Println(path)
	depth := 0
	return v.Iterate(vfs.Visitor{
		FolderBegin: func(e vfs.FATEntry) bool {
			fmt.Printf("%s%s/\n", strings.Repeat("  ", depth+1), e.Name)
			depth++
			return true
		},
		FolderEnd: func(e vfs.FATEntry) bool {
			depth--
			return true
		},
		File: func(e vfs.FATEntry) bool {
			fmt.Printf("%s%s (%d bytes)\n", strings.Repeat("  ", depth+1), e.Name, e.Size)
			return true
		},
	})
}
