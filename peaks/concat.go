// SPDX-License-Identifier: EPL-2.0

package peaks

import "fmt"

// Concat joins waveforms end to end. All inputs must share the first
// one's channel count, sample rate, bit depth and scale. The output keeps
// the first input's version.
func Concat(ws ...*Waveform) (*Waveform, error) {
	if len(ws) == 0 {
		return nil, ErrEmptyInput
	}

	for i, w := range ws {
		if w == nil {
			return nil, fmt.Errorf("%w: waveform %d is nil", ErrEmptyInput, i)
		}
	}

	hdr := ws[0].hdr
	hdr.Length = 0

	for i, w := range ws {
		h := w.hdr
		switch {
		case h.Channels != hdr.Channels:
			return nil, fmt.Errorf("%w: waveform %d has %d channels, want %d", ErrIncompatibleWaveforms, i, h.Channels, hdr.Channels)
		case h.SampleRate != hdr.SampleRate:
			return nil, fmt.Errorf("%w: waveform %d has sample rate %d, want %d", ErrIncompatibleWaveforms, i, h.SampleRate, hdr.SampleRate)
		case h.BitDepth != hdr.BitDepth:
			return nil, fmt.Errorf("%w: waveform %d has %d bits, want %d", ErrIncompatibleWaveforms, i, h.BitDepth, hdr.BitDepth)
		case h.Scale != hdr.Scale:
			return nil, fmt.Errorf("%w: waveform %d has scale %v, want %v", ErrIncompatibleWaveforms, i, h.Scale, hdr.Scale)
		}
		hdr.Length += h.Length
	}

	if err := hdr.validate(); err != nil {
		return nil, err
	}

	out := newWaveform(hdr)
	off := hdr.Size()
	for _, w := range ws {
		off += copy(out.data[off:], w.payload())
	}
	return out, nil
}
