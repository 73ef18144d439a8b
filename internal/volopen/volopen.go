// Package volopen centralizes the volume-opening convention shared by the
// cmd/* programs: a leading "-mmap" flag selects internal/mmapstore, and
// the input path is sniffed for the xz magic so a ".sai.xz" volume opens
// transparently through internal/xzvolume, matching pagestore.Open's own
// WithMmap/WithXZ options.
package volopen

import (
	"os"

	"github.com/ashgrove-labs/saivault/pagestore"
)

var xzMagic = [6]byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// Args splits a leading "-mmap" flag out of args, returning the
// pagestore.Options implied by that flag and by sniffing the first
// remaining argument for the xz magic, plus the remaining positional
// arguments.
func Args(args []string) (opts []pagestore.Option, rest []string) {
	rest = args
	if len(rest) > 0 && rest[0] == "-mmap" {
		opts = append(opts, pagestore.WithMmap())
		rest = rest[1:]
	}
	if len(rest) > 0 && isXZ(rest[0]) {
		opts = append(opts, pagestore.WithXZ())
	}
	return opts, rest
}

func isXZ(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var magic [6]byte
	n, _ := f.Read(magic[:])
	return n == len(magic) && magic == xzMagic
}
