// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	headerSizeV1 = 20
	headerSizeV2 = 24

	// flag value stored at offset 4 for 8-bit data
	flag8Bit = 1
)

// Header holds the decoded fields of a binary waveform header.
//
// Scale is kept as float64 for every version. Versions 1 and 2 store it as
// an int32 on the wire, version 3 as an IEEE-754 float32.
type Header struct {
	Version    int
	BitDepth   int
	SampleRate int
	Scale      float64
	Channels   int
	Length     int
}

// Size returns the encoded header size in bytes.
func (h Header) Size() int {
	if h.Version == 1 {
		return headerSizeV1
	}
	return headerSizeV2
}

// BytesPerSample returns 1 for 8-bit data and 2 for 16-bit data.
func (h Header) BytesPerSample() int {
	return bytesPerSample(h.BitDepth)
}

// PayloadSize returns the number of sample bytes following the header.
func (h Header) PayloadSize() int {
	return h.Length * h.Channels * 2 * h.BytesPerSample()
}

// TotalSize returns the header plus payload size.
func (h Header) TotalSize() int {
	return h.Size() + h.PayloadSize()
}

func (h Header) rangeMin() int {
	if h.BitDepth == 8 {
		return math.MinInt8
	}
	return math.MinInt16
}

func (h Header) rangeMax() int {
	if h.BitDepth == 8 {
		return math.MaxInt8
	}
	return math.MaxInt16
}

func (h Header) validate() error {
	switch {
	case h.Version < 1 || h.Version > 3:
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	case h.BitDepth != 8 && h.BitDepth != 16:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidHeader, h.BitDepth)
	case h.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidHeader, h.SampleRate)
	case !(h.Scale > 0) || math.IsInf(h.Scale, 0):
		return fmt.Errorf("%w: scale %v", ErrInvalidHeader, h.Scale)
	case h.Version < 3 && !isIntegral(h.Scale):
		return fmt.Errorf("%w: version %d needs an integer scale, got %v", ErrInvalidHeader, h.Version, h.Scale)
	case h.Channels < 1:
		return fmt.Errorf("%w: channels %d", ErrInvalidHeader, h.Channels)
	case h.Version == 1 && h.Channels != 1:
		return fmt.Errorf("%w: version 1 holds a single channel, got %d", ErrInvalidHeader, h.Channels)
	case h.Length < 0 || uint64(h.Length) > math.MaxUint32:
		return fmt.Errorf("%w: length %d", ErrInvalidHeader, h.Length)
	case uint64(h.Length) > (math.MaxInt-headerSizeV2)/(uint64(h.Channels)*2*uint64(h.BytesPerSample())):
		// the payload size must fit in an int
		return fmt.Errorf("%w: %d pixels of %d channels is too large", ErrInvalidHeader, h.Length, h.Channels)
	}
	return nil
}

// DecodeHeader parses the header at the start of b.
func DecodeHeader(b []byte) (Header, error) {
	version, err := peekVersion(b)
	if err != nil {
		return Header{}, err
	}

	h := Header{Version: version, BitDepth: 16, Channels: 1}
	if len(b) < h.Size() {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrShortBuffer, h.Size(), len(b))
	}

	if binary.LittleEndian.Uint32(b[4:8]) != 0 {
		h.BitDepth = 8
	}
	h.SampleRate = int(int32(binary.LittleEndian.Uint32(b[8:12])))

	if version == 3 {
		h.Scale = float64(math.Float32frombits(binary.LittleEndian.Uint32(b[12:16])))
	} else {
		h.Scale = float64(int32(binary.LittleEndian.Uint32(b[12:16])))
	}

	h.Length = int(binary.LittleEndian.Uint32(b[16:20]))

	if version >= 2 {
		h.Channels = int(int32(binary.LittleEndian.Uint32(b[20:24])))
	}

	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// peekVersion reads and checks the version field only.
func peekVersion(b []byte) (int, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("%w: no version field", ErrShortBuffer)
	}

	version := int(int32(binary.LittleEndian.Uint32(b[0:4])))
	if version < 1 || version > 3 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	return version, nil
}

// put writes the header into dst, which must hold at least h.Size() bytes.
func (h Header) put(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:4], uint32(h.Version))

	var flag uint32
	if h.BitDepth == 8 {
		flag = flag8Bit
	}
	binary.LittleEndian.PutUint32(dst[4:8], flag)
	binary.LittleEndian.PutUint32(dst[8:12], uint32(int32(h.SampleRate)))

	if h.Version == 3 {
		binary.LittleEndian.PutUint32(dst[12:16], math.Float32bits(float32(h.Scale)))
	} else {
		binary.LittleEndian.PutUint32(dst[12:16], uint32(int32(h.Scale)))
	}

	binary.LittleEndian.PutUint32(dst[16:20], uint32(h.Length))

	if h.Version >= 2 {
		binary.LittleEndian.PutUint32(dst[20:24], uint32(int32(h.Channels)))
	}
}

// outputVersion picks the smallest version able to carry scale with an
// explicit channel count.
func outputVersion(scale float64) int {
	if isIntegral(scale) && scale <= math.MaxInt32 {
		return 2
	}
	return 3
}

func bytesPerSample(bitDepth int) int {
	if bitDepth == 8 {
		return 1
	}
	return 2
}
