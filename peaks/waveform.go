// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/wavepeaks/utils"
)

// Source is the read side shared by binary and structured waveform data.
// Resampling is written against it so either representation can be used
// directly.
type Source interface {
	// Header returns the waveform metadata.
	Header() Header
	// Sample returns the (min, max) pair of channel at pixel index.
	Sample(index, channel int) (min, max int)
}

// Waveform is an immutable waveform held in its binary form.
//
// A Waveform owns its bytes: New copies its input and Bytes returns a copy,
// so no two Waveforms ever share storage.
type Waveform struct {
	hdr  Header
	data []byte
}

var _ Source = (*Waveform)(nil)

// New decodes binary waveform data. The bytes are copied; anything after
// the declared payload is dropped.
func New(data []byte) (*Waveform, error) {
	hdr, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	total := hdr.TotalSize()
	if len(data) < total {
		return nil, fmt.Errorf("%w: need %d bytes for %d pixels, got %d",
			ErrShortBuffer, total, hdr.Length, len(data))
	}

	buf := make([]byte, total)
	copy(buf, data[:total])

	return &Waveform{hdr: hdr, data: buf}, nil
}

// newWaveform allocates a zeroed waveform for hdr. Only the operations in
// this package write into it, before handing it out.
func newWaveform(hdr Header) *Waveform {
	if hdr.Version == 3 {
		// keep the cached scale identical to what the wire form decodes to
		hdr.Scale = float64(float32(hdr.Scale))
	}

	buf := make([]byte, hdr.TotalSize())
	hdr.put(buf)

	return &Waveform{hdr: hdr, data: buf}
}

func (w *Waveform) Header() Header  { return w.hdr }
func (w *Waveform) Version() int    { return w.hdr.Version }
func (w *Waveform) BitDepth() int   { return w.hdr.BitDepth }
func (w *Waveform) SampleRate() int { return w.hdr.SampleRate }
func (w *Waveform) Scale() float64  { return w.hdr.Scale }
func (w *Waveform) Channels() int   { return w.hdr.Channels }
func (w *Waveform) Length() int     { return w.hdr.Length }

// Duration returns the approximate audio duration in seconds.
func (w *Waveform) Duration() float64 {
	return float64(w.hdr.Length) * w.hdr.Scale / float64(w.hdr.SampleRate)
}

// PixelsPerSecond returns how many pixels represent one second of audio.
func (w *Waveform) PixelsPerSecond() float64 {
	return float64(w.hdr.SampleRate) / w.hdr.Scale
}

// SecondsPerPixel returns the amount of audio, in seconds, covered by one pixel.
func (w *Waveform) SecondsPerPixel() float64 {
	return w.hdr.Scale / float64(w.hdr.SampleRate)
}

// AtTime returns the pixel index for time t (seconds), truncated toward
// negative infinity. It is the inverse of Time only up to that truncation.
func (w *Waveform) AtTime(t float64) int {
	return int(math.Floor(t * float64(w.hdr.SampleRate) / w.hdr.Scale))
}

// Time returns the time in seconds at which pixel index starts.
func (w *Waveform) Time(index int) float64 {
	return float64(index) * w.hdr.Scale / float64(w.hdr.SampleRate)
}

// Channel returns a view over one channel.
func (w *Waveform) Channel(index int) (Channel, error) {
	if index < 0 || index >= w.hdr.Channels {
		return Channel{}, fmt.Errorf("%w: %d (channels: %d)", ErrInvalidChannelIndex, index, w.hdr.Channels)
	}
	return Channel{w: w, index: index}, nil
}

// Sample returns the (min, max) pair of channel at pixel index.
// It panics when index or channel is out of range, like slice indexing.
func (w *Waveform) Sample(index, channel int) (int, int) {
	off := w.offset(index, channel)
	return w.at(off), w.at(off + 1)
}

// Bytes returns a copy of the binary form, header included.
func (w *Waveform) Bytes() []byte {
	out := make([]byte, len(w.data))
	copy(out, w.data)
	return out
}

// WriteTo writes the binary form to dst.
func (w *Waveform) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.data)
	if err != nil {
		return int64(n), fmt.Errorf("%w", err)
	}
	return int64(n), nil
}

// payload returns the sample bytes without the header.
func (w *Waveform) payload() []byte {
	return w.data[w.hdr.Size():]
}

// offset returns the value offset of the min value of channel at index.
func (w *Waveform) offset(index, channel int) int {
	if index < 0 || index >= w.hdr.Length {
		panic(fmt.Sprintf("peaks: pixel index %d out of range [0, %d)", index, w.hdr.Length))
	}
	if channel < 0 || channel >= w.hdr.Channels {
		panic(fmt.Sprintf("peaks: channel %d out of range [0, %d)", channel, w.hdr.Channels))
	}
	return (index*w.hdr.Channels + channel) * 2
}

func (w *Waveform) at(valueOffset int) int {
	pos := w.hdr.Size()
	if w.hdr.BitDepth == 8 {
		return int(int8(w.data[pos+valueOffset]))
	}

	pos += valueOffset * 2
	return int(int16(binary.LittleEndian.Uint16(w.data[pos : pos+2])))
}

// setAt saturates v to the bit depth range.
func (w *Waveform) setAt(valueOffset, v int) {
	v = utils.Clamp(v, w.hdr.rangeMin(), w.hdr.rangeMax())

	pos := w.hdr.Size()
	if w.hdr.BitDepth == 8 {
		w.data[pos+valueOffset] = byte(int8(v))
		return
	}

	pos += valueOffset * 2
	binary.LittleEndian.PutUint16(w.data[pos:pos+2], uint16(int16(v)))
}

// set stores the (min, max) pair of channel at pixel index.
func (w *Waveform) set(index, channel, min, max int) {
	off := w.offset(index, channel)
	w.setAt(off, min)
	w.setAt(off+1, max)
}
