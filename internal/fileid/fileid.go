// Package fileid computes stable 64-bit identifiers for volume entries,
// grounded on the teacher's xxhash-based fileid package used to key its
// metadata store.
package fileid

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID hashes (volumePath, pageIndex, name) into a stable identifier usable
// as a cache key across process runs, as long as the volume and its FAT
// layout do not change.
func ID(volumePath string, pageIndex uint32, name string) uint64 {
	var d xxhash.Digest
	d.Reset()
	d.WriteString(volumePath)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], pageIndex)
	d.Write(b[:])
	d.WriteString(name)
	return d.Sum64()
}

// Bytes hashes an arbitrary byte slice, used by sai2 to key cache entries
// off a volume's header+table bytes instead of a FAT path.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
