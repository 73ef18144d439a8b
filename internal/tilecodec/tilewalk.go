package tilecodec

import "encoding/binary"

// TileSize is the fixed tile extent used by the SAI v2 thumbnail codec.
const TileSize = 256

// TileChecksums carries the opaque begin/end sync markers read around each
// tile row. Per §9's Open Questions, these are treated as opaque and never
// used to gate correctness.
type TileChecksums struct {
	Begin, End uint16
}

// DecodeThumbnail decodes a full width*height BGRA thumbnail from a
// tile-oriented delta-RLE bitstream, per the Tile walk description in
// §4.7. inputChannels is 3 or 4 depending on the v2 header's alpha flag;
// output is always 4 channels (BGRA), with alpha filled to 0xFF when only
// 3 input channels were supplied.
func DecodeThumbnail(data []byte, width, height, inputChannels int) ([]uint8, []TileChecksums, error) {
	tilesX := (width + TileSize - 1) / TileSize
	tilesY := (height + TileSize - 1) / TileSize

	out := make([]uint8, width*height*Channels)
	checksums := make([]TileChecksums, 0, tilesY)

	pos := 0
	readU16 := func() (uint16, error) {
		if pos+2 > len(data) {
			return 0, ErrCodecError
		}
		v := binary.LittleEndian.Uint16(data[pos:])
		pos += 2
		return v, nil
	}

	for ty := 0; ty < tilesY; ty++ {
		begin, err := readU16()
		if err != nil {
			return nil, nil, err
		}

		tileHeight := TileSize
		if remaining := height - ty*TileSize; remaining < tileHeight {
			tileHeight = remaining
		}

		for tx := 0; tx < tilesX; tx++ {
			tileWidth := TileSize
			if remaining := width - tx*TileSize; remaining < tileWidth {
				tileWidth = remaining
			}

			prevRow := make([]uint8, TileSize*Channels) // zero: no row above the tile's first row
			delta := make([]int16, TileSize*Channels)
			rowOut := make([]uint8, TileSize*Channels)

			for row := 0; row < tileHeight; row++ {
				// 3 bytes per pixel per channel is a generous average-case
				// bound, but bitSource.refill always pulls a full 4-byte
				// word regardless of how little a narrow edge tile truly
				// needs, so the window must never be trimmed below that.
				windowSize := 3 * inputChannels * tileWidth
				if windowSize < 4 {
					windowSize = 4
				}
				if remaining := len(data) - pos; windowSize > remaining {
					windowSize = remaining
				}
				if windowSize < 0 {
					return nil, nil, ErrCodecError
				}
				window := data[pos : pos+windowSize]

				consumed, err := DecodeRow(window, delta, tileWidth, Channels, inputChannels)
				if err != nil {
					return nil, nil, err
				}
				pos += consumed

				var state RowState
				state.Unpack(prevRow[:tileWidth*Channels], delta[:tileWidth*Channels], rowOut[:tileWidth*Channels], tileWidth)

				baseY := ty*TileSize + row
				baseX := tx * TileSize
				rowStart := (baseY*width + baseX) * Channels
				copy(out[rowStart:rowStart+tileWidth*Channels], rowOut[:tileWidth*Channels])
				copy(prevRow[:tileWidth*Channels], rowOut[:tileWidth*Channels])
			}
		}

		end, err := readU16()
		if err != nil {
			return nil, nil, err
		}
		checksums = append(checksums, TileChecksums{Begin: begin, End: end})
	}

	if inputChannels < Channels {
		for i := 0; i < width*height; i++ {
			out[i*Channels+3] = 0xFF
		}
	}

	return out, checksums, nil
}
