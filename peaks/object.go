// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"encoding/json"
	"fmt"
	"math"
)

// Object is the structured form of waveform data, as exchanged in JSON:
//
//	{"version": 2, "channels": 1, "sample_rate": 48000,
//	 "samples_per_pixel": 512, "bits": 8, "length": 2,
//	 "data": [-10, 10, -5, 7]}
//
// Data is flat and follows the binary payload order: for each pixel, for
// each channel, min then max. Version and Channels default to 1 when zero.
type Object struct {
	Version         int     `json:"version,omitempty"`
	Channels        int     `json:"channels,omitempty"`
	SampleRate      int     `json:"sample_rate"`
	SamplesPerPixel float64 `json:"samples_per_pixel"`
	Bits            int     `json:"bits"`
	Length          int     `json:"length"`
	Data            []int   `json:"data"`
}

var _ Source = (*Object)(nil)

func (o *Object) version() int {
	if o.Version == 0 {
		return 1
	}
	return o.Version
}

func (o *Object) channels() int {
	if o.Channels == 0 {
		return 1
	}
	return o.Channels
}

// Header returns the metadata as declared by the object.
func (o *Object) Header() Header {
	return Header{
		Version:    o.version(),
		BitDepth:   o.Bits,
		SampleRate: o.SampleRate,
		Scale:      o.SamplesPerPixel,
		Channels:   o.channels(),
		Length:     o.Length,
	}
}

// Sample returns the (min, max) pair of channel at pixel index.
func (o *Object) Sample(index, channel int) (int, int) {
	off := (index*o.channels() + channel) * 2
	return o.Data[off], o.Data[off+1]
}

// binaryHeader is the header Binary encodes with: version 2, or version 3
// when the object asks for it or its scale is fractional.
func (o *Object) binaryHeader() Header {
	h := o.Header()
	h.Version = outputVersion(h.Scale)
	if o.Version == 3 {
		h.Version = 3
	}
	return h
}

// Validate checks the data length and header fields.
func (o *Object) Validate() error {
	h := o.binaryHeader()
	if err := h.validate(); err != nil {
		return err
	}

	if want := h.Length * 2 * h.Channels; len(o.Data) != want {
		return fmt.Errorf("%w: %d values for %d pixels and %d channels, want %d",
			ErrLengthMismatch, len(o.Data), h.Length, h.Channels, want)
	}

	lo, hi := h.rangeMin(), h.rangeMax()
	for i, v := range o.Data {
		if v < lo || v > hi {
			return fmt.Errorf("%w: data[%d] = %d", ErrSampleOutOfRange, i, v)
		}
	}
	return nil
}

// Waveform validates the object and encodes it into a new Waveform.
func (o *Object) Waveform() (*Waveform, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	w := newWaveform(o.binaryHeader())
	for i, v := range o.Data {
		w.setAt(i, v)
	}
	return w, nil
}

// Binary validates the object and returns its binary encoding.
func (o *Object) Binary() ([]byte, error) {
	w, err := o.Waveform()
	if err != nil {
		return nil, err
	}
	return w.data, nil
}

// Object exports the waveform in structured form. Versions 1 and 2 are
// reported as version 2, which is what Object.Binary writes back.
func (w *Waveform) Object() *Object {
	version := 2
	if w.hdr.Version == 3 {
		version = 3
	}

	n := w.hdr.Length * w.hdr.Channels * 2
	data := make([]int, n)
	for i := range n {
		data[i] = w.at(i)
	}

	return &Object{
		Version:         version,
		Channels:        w.hdr.Channels,
		SampleRate:      w.hdr.SampleRate,
		SamplesPerPixel: w.hdr.Scale,
		Bits:            w.hdr.BitDepth,
		Length:          w.hdr.Length,
		Data:            data,
	}
}

// MarshalJSON encodes the waveform in its structured form.
func (w *Waveform) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(w.Object())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return b, nil
}

// UnmarshalJSON replaces w with the waveform described by the JSON object.
func (w *Waveform) UnmarshalJSON(b []byte) error {
	var o Object
	if err := json.Unmarshal(b, &o); err != nil {
		return fmt.Errorf("%w", err)
	}

	decoded, err := o.Waveform()
	if err != nil {
		return err
	}
	*w = *decoded
	return nil
}

// MarshalBinary returns a copy of the binary form.
func (w *Waveform) MarshalBinary() ([]byte, error) {
	return w.Bytes(), nil
}

// UnmarshalBinary replaces w with the decoded binary waveform.
func (w *Waveform) UnmarshalBinary(b []byte) error {
	decoded, err := New(b)
	if err != nil {
		return err
	}
	*w = *decoded
	return nil
}

// isIntegral reports whether f has no fractional part.
func isIntegral(f float64) bool {
	return f == math.Trunc(f)
}
