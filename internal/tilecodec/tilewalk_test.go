package tilecodec

import "testing"

// TestDecodeThumbnailMultiTileBoundary walks a canvas one pixel wider than
// a single 256px tile, exercising the >256px tile-column boundary: the
// second tile's prevRow must start fresh (zeroed) independently of the
// first tile's, and its window must still satisfy a full 4-byte refill
// even though it decodes only a single pixel.
func TestDecodeThumbnailMultiTileBoundary(t *testing.T) {
	const width, height, inputChannels = TileSize + 1, 1, 1

	// Tile 0 (256 wide): one channel entirely covered by two zero-runs
	// (135 + 121 = 256 pixels), each exactly 16 bits so the whole tile
	// packs into 4 bytes.
	var tile0 bitWriter
	tile0.writeZeroRun(135)
	tile0.writeZeroRun(121)
	tile0Bytes := tile0.bytes
	if len(tile0Bytes) != 4 {
		t.Fatalf("tile0 packed to %d bytes, want 4", len(tile0Bytes))
	}

	// Tile 1 (1 wide): a single explicit delta of 1, padded to a full
	// word; the two padding bytes double as the (unchecked) end checksum.
	var tile1 bitWriter
	tile1.writeValue(1, 0) // mask=2, v=0 -> delta=1
	for len(tile1.bytes) < 4 {
		tile1.bytes = append(tile1.bytes, 0)
	}
	tile1Bytes := tile1.bytes

	data := make([]byte, 0, 2+len(tile0Bytes)+len(tile1Bytes))
	data = append(data, 0, 0) // tile-row begin checksum
	data = append(data, tile0Bytes...)
	data = append(data, tile1Bytes...)

	pixels, checksums, err := DecodeThumbnail(data, width, height, inputChannels)
	if err != nil {
		t.Fatalf("DecodeThumbnail: %v", err)
	}
	if len(checksums) != 1 || checksums[0].Begin != 0 {
		t.Fatalf("got checksums %v, want one entry with Begin=0", checksums)
	}

	if len(pixels) != width*height*Channels {
		t.Fatalf("got %d pixel bytes, want %d", len(pixels), width*height*Channels)
	}

	for x := 0; x < TileSize; x++ {
		got := pixels[x*Channels : x*Channels+Channels]
		want := []uint8{0, 0, 0, 0xFF}
		for c := range want {
			if got[c] != want[c] {
				t.Fatalf("pixel %d channel %d = %d, want %d", x, c, got[c], want[c])
			}
		}
	}

	last := pixels[TileSize*Channels : TileSize*Channels+Channels]
	want := []uint8{1, 0, 0, 0xFF}
	for c := range want {
		if last[c] != want[c] {
			t.Fatalf("boundary pixel channel %d = %d, want %d", c, last[c], want[c])
		}
	}
}

func TestDecodeThumbnailRejectsTruncatedChecksum(t *testing.T) {
	_, _, err := DecodeThumbnail([]byte{0}, 1, 1, 1)
	if err != ErrCodecError {
		t.Fatalf("got %v, want ErrCodecError", err)
	}
}
