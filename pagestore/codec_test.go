package pagestore

import (
	"encoding/binary"
	"testing"

	"github.com/ashgrove-labs/saivault/keytable"
)

// encryptTable and encryptData are the inverse ciphers, built only for
// tests, so fixtures can be constructed without shipping real SAI
// documents as binary test data.

func encryptTable(key *[256]uint32, pageIndex uint32, p *page) {
	prev := nearestTable(pageIndex)
	for i := range p {
		x := (p[i] >> 16) | (p[i] << 16) // undo the rotate
		cipher := prev ^ x ^ keytable.KeySum(key, prev)
		p[i] = cipher
		prev = cipher
	}
}

func encryptData(key *[256]uint32, checksumKey uint32, p *page) {
	vector := checksumKey
	for i := range p {
		cipher := p[i] + (vector ^ keytable.KeySum(key, vector))
		p[i] = cipher
		vector = cipher
	}
}

func TestTableRoundTrip(t *testing.T) {
	var plain page
	for i := range plain {
		plain[i] = uint32(i)*2654435761 + 0x1234
	}

	cipher := plain
	encryptTable(&keytable.User, 0, &cipher)

	got := cipher
	decryptTable(&keytable.User, 0, &got)

	if got != plain {
		t.Fatalf("decryptTable did not invert encryptTable")
	}
}

func TestDataRoundTripAndChecksum(t *testing.T) {
	var plain page
	plain[0] = 0xDEADBEEF
	for i := 1; i < len(plain); i++ {
		plain[i] = uint32(i) * 0x01010101
	}
	k := checksum(&plain)

	cipher := plain
	encryptData(&keytable.User, k, &cipher)

	got := cipher
	decryptData(&keytable.User, k, &got)

	if got != plain {
		t.Fatalf("decryptData did not invert encryptData")
	}
	if checksum(&got) != k {
		t.Fatalf("checksum after round trip = %#x, want %#x", checksum(&got), k)
	}
}

func TestTableSelfCheck(t *testing.T) {
	// P2: tableChecksum is the plain checksum of the page with only word 0
	// (entries[0].Checksum) zeroed; every other word still counts.
	var plain page
	for i := range plain {
		plain[i] = uint32(i) + 7
	}
	want := tableChecksum(&plain)
	plain[0] = 0
	got := checksum(&plain)
	if got != want {
		t.Fatalf("checksum with word 0 zeroed = %#x, want %#x", got, want)
	}
}

func TestChecksumIsOdd(t *testing.T) {
	var p page
	for i := range p {
		p[i] = uint32(i) * 4 // an all-even input
	}
	if checksum(&p)&1 == 0 {
		t.Fatalf("checksum must always be odd")
	}
}

func TestBytesPageRoundTrip(t *testing.T) {
	var p page
	for i := range p {
		p[i] = uint32(i*4 + 1)
	}
	b := pageToBytes(p)
	got := bytesToPage(b)
	if got != p {
		t.Fatalf("bytesToPage(pageToBytes(p)) != p")
	}
	// spot-check little-endian packing of word 0
	if binary.LittleEndian.Uint32(b[:4]) != p[0] {
		t.Fatalf("page bytes are not little-endian")
	}
}
