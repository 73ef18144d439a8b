package pagestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ashgrove-labs/saivault/keytable"
)

// buildVolume assembles a minimal two-page encrypted volume: page 0 is a
// table describing pages 0 and 1, page 1 is a data page. Returns the path
// to the written file and the plaintext of page 1 for comparison.
func buildVolume(t *testing.T, corrupt bool) (string, [PageSize]byte) {
	t.Helper()

	var plain1 page
	plain1[0] = 0xDEADBEEF
	for i := 1; i < len(plain1); i++ {
		plain1[i] = uint32(i) * 0x01010101
	}
	k := checksum(&plain1)

	var table page
	table[0], table[1] = 0xAAAAAAAA, 0 // entries[0]: table's own slot, unused by Fetch
	table[2], table[3] = k, 0          // entries[1]: page 1's checksum, no chain

	cipherTable := table
	encryptTable(&keytable.User, 0, &cipherTable)
	cipherData := plain1
	encryptData(&keytable.User, k, &cipherData)

	tableBytes := pageToBytes(cipherTable)
	dataBytes := pageToBytes(cipherData)
	if corrupt {
		dataBytes[0] ^= 0xFF
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "volume.sai")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := f.Write(tableBytes[:]); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(dataBytes[:]); err != nil {
		t.Fatal(err)
	}

	return path, pageToBytes(plain1)
}

func TestOpenAndFetch(t *testing.T) {
	path, want1 := buildVolume(t, false)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if s.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", s.PageCount())
	}

	got1, err := s.Fetch(1)
	if err != nil {
		t.Fatalf("Fetch(1): %v", err)
	}
	if got1 != want1 {
		t.Fatalf("Fetch(1) returned unexpected plaintext")
	}

	// fetching again exercises the 1-slot cache hit path
	got1again, err := s.Fetch(1)
	if err != nil {
		t.Fatalf("Fetch(1) second time: %v", err)
	}
	if got1again != want1 {
		t.Fatalf("cached Fetch(1) returned unexpected plaintext")
	}
}

func TestFetchChecksumMismatch(t *testing.T) {
	path, _ := buildVolume(t, true)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	_, err = s.Fetch(1)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("Fetch(1) error = %v, want ErrChecksumMismatch", err)
	}
}

func TestOpenInvalidSize(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.sai")
	if f, err := os.Create(empty); err != nil {
		t.Fatal(err)
	} else {
		f.Close()
	}
	if _, err := Open(empty); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Open(empty) error = %v, want ErrInvalidSize", err)
	}

	misaligned := filepath.Join(dir, "misaligned.sai")
	if err := os.WriteFile(misaligned, make([]byte, PageSize+1), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(misaligned); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Open(misaligned) error = %v, want ErrInvalidSize", err)
	}
}
