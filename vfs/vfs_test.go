package vfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ashgrove-labs/saivault/keytable"
	"github.com/ashgrove-labs/saivault/pagestore"
)

const wordsPerPage = pagestore.PageSize / 4

// buildVolume assembles a 6-page volume: page 0 is the table for pages
// 0..511, page 1 is unused, page 2 is the root directory containing a file
// "canvas" (page 3) and a folder "sub" (page 4) containing a file "leaf"
// (page 5).
func buildVolume(t *testing.T) string {
	t.Helper()

	var root [wordsPerPage]uint32
	writeFATEntry(root[:], 0, fatRecord{name: "canvas", typ: TypeFile, pageIndex: 3, size: 12})
	writeFATEntry(root[:], 1, fatRecord{name: "sub", typ: TypeFolder, pageIndex: 4, size: 0})

	var canvasData [wordsPerPage]uint32
	canvasData[0], canvasData[1], canvasData[2] = 0xAABBCCDD, 640, 480

	var subDir [wordsPerPage]uint32
	writeFATEntry(subDir[:], 0, fatRecord{name: "leaf", typ: TypeFile, pageIndex: 5, size: 5})

	leafData := bytesToWords([]byte("hello"))

	checksums := map[uint32]uint32{
		2: checksumWords(root[:]),
		3: checksumWords(canvasData[:]),
		4: checksumWords(subDir[:]),
		5: checksumWords(leafData[:]),
	}

	var table [wordsPerPage]uint32
	for idx, sum := range checksums {
		table[2*idx], table[2*idx+1] = sum, 0
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "vol.sai")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	writeWords(t, f, encryptTableWords(table))
	writeWords(t, f, [wordsPerPage]uint32{}) // page 1, unused
	writeWords(t, f, encryptDataWords(root, checksums[2]))
	writeWords(t, f, encryptDataWords(canvasData, checksums[3]))
	writeWords(t, f, encryptDataWords(subDir, checksums[4]))
	writeWords(t, f, encryptDataWords(leafData, checksums[5]))

	return path
}

type fatRecord struct {
	name      string
	typ       EntryType
	pageIndex uint32
	size      uint32
}

// writeFATEntry packs one 64-byte FAT record (16 words) into page at slot.
func writeFATEntry(page []uint32, slot int, r fatRecord) {
	buf := make([]byte, fatEntrySize)
	buf[0] = 1 // flags: nonzero marks the slot live
	copy(buf[4:36], r.name)
	buf[39] = byte(r.typ)
	putU32(buf[40:44], r.pageIndex)
	putU32(buf[44:48], r.size)

	for i := 0; i < fatEntrySize/4; i++ {
		page[slot*(fatEntrySize/4)+i] = getU32(buf[i*4 : i*4+4])
	}
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func getU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// bytesToWords packs content into a zero-padded full page and returns it
// as little-endian words.
func bytesToWords(content []byte) [wordsPerPage]uint32 {
	buf := make([]byte, wordsPerPage*4)
	copy(buf, content)
	var out [wordsPerPage]uint32
	for i := range out {
		out[i] = getU32(buf[i*4 : i*4+4])
	}
	return out
}

func checksumWords(w []uint32) uint32 {
	var sum uint32
	for _, v := range w {
		sum = ((sum << 1) | (sum >> 31)) ^ v
	}
	return sum | 1
}

func keySum(x uint32) uint32 {
	k := &keytable.User
	return k[x&0xFF] + k[(x>>8)&0xFF] + k[(x>>16)&0xFF] + k[(x>>24)&0xFF]
}

func encryptTableWords(plain [wordsPerPage]uint32) [wordsPerPage]uint32 {
	var out [wordsPerPage]uint32
	prev := uint32(0)
	for i := range plain {
		x := (plain[i] >> 16) | (plain[i] << 16)
		cipher := prev ^ x ^ keySum(prev)
		out[i] = cipher
		prev = cipher
	}
	return out
}

func encryptDataWords(plain [wordsPerPage]uint32, k uint32) [wordsPerPage]uint32 {
	var out [wordsPerPage]uint32
	vector := k
	for i := range plain {
		cipher := plain[i] + (vector ^ keySum(vector))
		out[i] = cipher
		vector = cipher
	}
	return out
}

func writeWords(t *testing.T, f *os.File, words [wordsPerPage]uint32) {
	t.Helper()
	var buf [pagestore.PageSize]byte
	for i, w := range words {
		putU32(buf[i*4:], w)
	}
	if _, err := f.Write(buf[:]); err != nil {
		t.Fatal(err)
	}
}

func TestGetEntryResolvesNestedPath(t *testing.T) {
	path := buildVolume(t)
	v, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer v.Close()

	entry, err := v.GetEntry("sub/leaf")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if entry.Name() != "leaf" || entry.Size() != 5 {
		t.Fatalf("got name=%q size=%d, want leaf/5", entry.Name(), entry.Size())
	}

	buf := make([]byte, 5)
	if _, err := entry.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "hello" {
		t.Fatalf("Read returned %q, want hello", buf)
	}
}

func TestGetEntryMissing(t *testing.T) {
	path := buildVolume(t)
	v, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer v.Close()

	if _, err := v.GetEntry("nope"); err != ErrPathNotFound {
		t.Fatalf("GetEntry(nope) error = %v, want ErrPathNotFound", err)
	}
	if v.Exists("nope") {
		t.Fatalf("Exists(nope) = true, want false")
	}
	if !v.Exists("sub/leaf") {
		t.Fatalf("Exists(sub/leaf) = false, want true")
	}
}

// TestIterateMatchesGetEntry exercises P5: every path produced by Iterate
// must independently resolve via GetEntry to the same entry.
func TestIterateMatchesGetEntry(t *testing.T) {
	path := buildVolume(t)
	v, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer v.Close()

	var stack []string
	var files []string
	var pages []uint32
	err = v.Iterate(Visitor{
		FolderBegin: func(e FATEntry) bool { stack = append(stack, e.Name); return true },
		FolderEnd:   func(e FATEntry) bool { stack = stack[:len(stack)-1]; return true },
		File: func(e FATEntry) bool {
			p := ""
			for _, s := range stack {
				p += s + "/"
			}
			p += e.Name
			files = append(files, p)
			pages = append(pages, e.PageIndex)
			return true
		},
	})
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Iterate found %d files, want 2: %v", len(files), files)
	}
	for i, p := range files {
		entry, err := v.GetEntry(p)
		if err != nil {
			t.Fatalf("GetEntry(%q) after Iterate: %v", p, err)
		}
		if entry.PageIndex() != pages[i] {
			t.Fatalf("GetEntry(%q).PageIndex() = %d, Iterate saw %d", p, entry.PageIndex(), pages[i])
		}
	}
}

func TestGlob(t *testing.T) {
	path := buildVolume(t)
	v, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer v.Close()

	matches, err := v.Glob("sub/*")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 1 || matches[0] != "sub/leaf" {
		t.Fatalf("Glob(sub/*) = %v, want [sub/leaf]", matches)
	}
}
