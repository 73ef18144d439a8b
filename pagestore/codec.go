package pagestore

import (
	"github.com/ashgrove-labs/saivault/keytable"
)

const (
	// PageSize is the fixed size, in bytes, of every page in a volume.
	PageSize = 4096
	// tableSpan is the number of table entries per table page, and
	// therefore the number of pages (one table plus tableSpan-1 data
	// pages) that share a single table.
	tableSpan    = 512
	wordsPerPage = PageSize / 4
)

// page holds one decrypted 4096-byte page as 1024 little-endian u32 words.
type page [wordsPerPage]uint32

// nearestTable rounds a page index down to its table's own index.
func nearestTable(index uint32) uint32 {
	return index &^ (tableSpan - 1)
}

// isTableIndex reports whether index addresses a table page.
func isTableIndex(index uint32) bool {
	return index%tableSpan == 0
}

// tableEntry describes one data page: its expected decrypted checksum and
// the index of the next page in whatever chain it belongs to.
type tableEntry struct {
	Checksum      uint32
	NextPageIndex uint32
}

// entries decodes the 512 {checksum, next_page_index} pairs carried by a
// table page; entry 0 describes the table page itself.
func (p *page) entries() [tableSpan]tableEntry {
	var out [tableSpan]tableEntry
	for i := range out {
		out[i] = tableEntry{
			Checksum:      p[2*i],
			NextPageIndex: p[2*i+1],
		}
	}
	return out
}

// decryptTable reverses the table-page cipher in place, given the page's
// own index P.
func decryptTable(key *[256]uint32, pageIndex uint32, p *page) {
	prev := nearestTable(pageIndex) // always pageIndex itself; table indices are 512-aligned.
	for i := range p {
		cipher := p[i]
		x := prev ^ cipher ^ keytable.KeySum(key, prev)
		p[i] = (x << 16) | (x >> 16)
		prev = cipher
	}
}

// decryptData reverses the data-page cipher in place, given the checksum K
// recorded for this page in its table entry.
func decryptData(key *[256]uint32, checksumKey uint32, p *page) {
	vector := checksumKey
	for i := range p {
		cipher := p[i]
		p[i] = cipher - (vector ^ keytable.KeySum(key, vector))
		vector = cipher
	}
}

// checksum computes the rotate-xor page checksum. For a table page, word 0
// must be zeroed by the caller before calling checksum (see I3); for a data
// page the full decrypted content is used unmodified.
func checksum(p *page) uint32 {
	var sum uint32
	for _, w := range p {
		sum = ((sum << 1) | (sum >> 31)) ^ w
	}
	return sum | 1
}

// tableChecksum computes the checksum a table page must self-report,
// zeroing a scratch copy of word 0 first per I3.
func tableChecksum(p *page) uint32 {
	scratch := *p
	scratch[0] = 0
	return checksum(&scratch)
}
