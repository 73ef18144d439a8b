package vfs

import (
	"bytes"
	"encoding/binary"
	"time"
)

// EntryType is the on-disk type tag of a FAT entry.
type EntryType uint8

const (
	TypeFolder EntryType = 0x10
	TypeFile   EntryType = 0x80
)

const (
	fatEntrySize      = 64
	entriesPerDirPage = 64
	rootPageIndex     = 2
)

// FATEntry is a decoded 64-byte directory record.
type FATEntry struct {
	Flags     uint32
	Name      string
	Type      EntryType
	PageIndex uint32
	Size      uint32
	Timestamp uint64 // raw Windows FILETIME, 100ns ticks since 1601-01-01 UTC
}

// parseFATEntry decodes one 64-byte packed record per §3's FAT entry
// layout: flags(4) name(32) pad(3) type(1) page_index(4) size(4)
// timestamp(8) reserved(8).
func parseFATEntry(buf []byte) FATEntry {
	name := buf[4:36]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return FATEntry{
		Flags:     binary.LittleEndian.Uint32(buf[0:4]),
		Name:      string(name),
		Type:      EntryType(buf[39]),
		PageIndex: binary.LittleEndian.Uint32(buf[40:44]),
		Size:      binary.LittleEndian.Uint32(buf[44:48]),
		Timestamp: binary.LittleEndian.Uint64(buf[48:56]),
	}
}

// filetimeToUnix converts a Windows FILETIME (100ns ticks since
// 1601-01-01 UTC) into a Unix-epoch time.Time, per §4.4.3.
func filetimeToUnix(ft uint64) time.Time {
	const ticksPerSecond = 10_000_000
	const epochDelta = 11_644_473_600
	sec := int64(ft)/ticksPerSecond - epochDelta
	return time.Unix(sec, 0).UTC()
}
