// SPDX-License-Identifier: EPL-2.0

// Package peakstest holds waveform fixtures shared by tests. It encodes
// bytes by hand so it can be used from inside package peaks.
package peakstest

import (
	"encoding/binary"
	"math"
)

// Fixture metadata: ten pixels at 512 samples per pixel.
const (
	SampleRate = 48000
	Scale      = 512
	Length     = 10
)

// Per-channel min and max values of the fixture.
var (
	Min = [][]int{
		{0, -10, 0, -5, -5, 0, 0, 0, 0, -2},
		{0, -8, -2, -6, -6, 0, 0, 0, 0, -3},
	}
	Max = [][]int{
		{0, 10, 0, 7, 7, 0, 0, 0, 0, 2},
		{0, 8, 2, 3, 3, 0, 0, 0, 0, 3},
	}
)

// Interleave flattens per-channel min and max arrays into payload order.
func Interleave(mins, maxs [][]int) []int {
	if len(mins) == 0 {
		return nil
	}

	channels, length := len(mins), len(mins[0])
	out := make([]int, 0, length*channels*2)
	for i := range length {
		for c := range channels {
			out = append(out, mins[c][i], maxs[c][i])
		}
	}
	return out
}

// Data returns the interleaved payload values of the first channels of the
// fixture.
func Data(channels int) []int {
	return Interleave(Min[:channels], Max[:channels])
}

// Encode builds binary waveform data. data holds payload values in
// payload order; the pixel count is derived from it.
func Encode(version, bits, sampleRate int, scale float64, channels int, data []int) []byte {
	hsize := 24
	if version == 1 {
		hsize = 20
	}

	width := 2
	if bits == 8 {
		width = 1
	}

	b := make([]byte, hsize+len(data)*width)
	le := binary.LittleEndian

	le.PutUint32(b[0:], uint32(version))
	if bits == 8 {
		le.PutUint32(b[4:], 1)
	}
	le.PutUint32(b[8:], uint32(sampleRate))
	if version == 3 {
		le.PutUint32(b[12:], math.Float32bits(float32(scale)))
	} else {
		le.PutUint32(b[12:], uint32(int32(scale)))
	}
	le.PutUint32(b[16:], uint32(len(data)/(2*channels)))
	if version >= 2 {
		le.PutUint32(b[20:], uint32(channels))
	}

	for i, v := range data {
		if bits == 8 {
			b[hsize+i] = byte(int8(v))
			continue
		}
		le.PutUint16(b[hsize+i*2:], uint16(int16(v)))
	}
	return b
}

// Binary returns the fixture as binary data with the given version, bit
// depth and channel count (1 or 2).
func Binary(version, bits, channels int) []byte {
	return Encode(version, bits, SampleRate, Scale, channels, Data(channels))
}

// Square returns n samples alternating between +amp and -amp, starting
// positive.
func Square(n int, amp float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = amp
		} else {
			out[i] = -amp
		}
	}
	return out
}
