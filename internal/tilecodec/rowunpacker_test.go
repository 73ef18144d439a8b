package tilecodec

import "testing"

// TestUnpackZeroDeltaMatchesPrev is the P7 property: a row whose delta is
// zero throughout reproduces the previous row exactly, since a fresh
// RowState's Sum/Last dance is an identity when nothing ever perturbs it.
func TestUnpackZeroDeltaMatchesPrev(t *testing.T) {
	const pixelCount = 3
	prev := []uint8{
		10, 20, 30, 40,
		50, 60, 70, 80,
		90, 100, 110, 120,
	}
	delta := make([]int16, pixelCount*Channels)
	out := make([]uint8, pixelCount*Channels)

	var state RowState
	state.Unpack(prev, delta, out, pixelCount)

	for i, want := range prev {
		if out[i] != want {
			t.Fatalf("out[%d] = %d, want %d (prev passthrough broken)", i, out[i], want)
		}
	}
}

// TestUnpackAccumulatesAcrossPixels exercises the running Sum/Last state
// across more than one pixel of the same row: the second pixel's output
// depends on the first pixel's delta, not just its own prev+delta.
func TestUnpackAccumulatesAcrossPixels(t *testing.T) {
	const pixelCount = 2
	prev := []uint8{
		10, 0, 0, 0,
		20, 0, 0, 0,
	}
	delta := []int16{
		5, 0, 0, 0,
		-3, 0, 0, 0,
	}
	out := make([]uint8, pixelCount*Channels)

	var state RowState
	state.Unpack(prev, delta, out, pixelCount)

	want := []uint8{
		15, 0, 0, 0,
		22, 0, 0, 0,
	}
	for i, v := range want {
		if out[i] != v {
			t.Fatalf("out[%d] = %d, want %d (full: %v)", i, out[i], v, out)
		}
	}
}

func TestUnpackSaturatesAtByteRange(t *testing.T) {
	prev := []uint8{250, 0, 0, 0}
	delta := []int16{100, 0, 0, 0}
	out := make([]uint8, Channels)

	var state RowState
	state.Unpack(prev, delta, out, 1)

	if out[0] != 0xFF {
		t.Fatalf("got %d, want saturated 255", out[0])
	}
}
