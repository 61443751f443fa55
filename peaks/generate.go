// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"
	"math"

	"github.com/ik5/wavepeaks/utils"
)

const (
	// DefaultScale is the number of input samples per output pixel.
	DefaultScale = 512
	// DefaultBitDepth is the output sample width.
	DefaultBitDepth = 8
	// DefaultAmplitudeScale leaves input amplitudes unchanged.
	DefaultAmplitudeScale = 1.0
)

// Options controls peak generation. Zero values select the defaults.
type Options struct {
	// Scale is the number of input samples summarized by each pixel.
	Scale int
	// AmplitudeScale multiplies every sample before quantization.
	AmplitudeScale float64
	// BitDepth is 8 or 16.
	BitDepth int
	// SplitChannels keeps one output channel per input channel instead of
	// mixing all inputs down to one.
	SplitChannels bool
}

// WithDefaults fills zero fields with their package defaults.
func (o Options) WithDefaults() Options {
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.AmplitudeScale == 0 {
		o.AmplitudeScale = DefaultAmplitudeScale
	}
	if o.BitDepth == 0 {
		o.BitDepth = DefaultBitDepth
	}
	return o
}

// Request is one generation job: decoded audio plus the options to reduce
// it with.
type Request struct {
	Options

	SampleRate int
	// Length is the number of samples per channel to read. Zero means the
	// length of the first channel.
	Length int
	// Channels holds one array per input channel, values nominally in [-1, 1].
	Channels [][]float32
}

func (r Request) validate() error {
	switch {
	case r.Scale < 1:
		return fmt.Errorf("%w: scale %d", ErrInvalidGenerateOptions, r.Scale)
	case !(r.AmplitudeScale > 0) || math.IsInf(r.AmplitudeScale, 0):
		return fmt.Errorf("%w: amplitude scale %v", ErrInvalidGenerateOptions, r.AmplitudeScale)
	case r.BitDepth != 8 && r.BitDepth != 16:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidGenerateOptions, r.BitDepth)
	case r.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidGenerateOptions, r.SampleRate)
	case len(r.Channels) == 0:
		return fmt.Errorf("%w: no channels", ErrInvalidGenerateOptions)
	case r.Length < 0:
		return fmt.Errorf("%w: length %d", ErrInvalidGenerateOptions, r.Length)
	}

	for i, ch := range r.Channels {
		if len(ch) < r.Length {
			return fmt.Errorf("%w: channel %d has %d samples, want %d",
				ErrInvalidGenerateOptions, i, len(ch), r.Length)
		}
	}
	return nil
}

// Generate reduces raw audio samples to peak data. Every scale input
// samples produce one pixel per output channel; a trailing partial window
// produces one more. The result is always version 2.
func Generate(req Request) (*Waveform, error) {
	return generate(req)
}

func generate(req Request) (*Waveform, error) {
	req.Options = req.Options.WithDefaults()
	if req.Length == 0 && len(req.Channels) > 0 {
		req.Length = len(req.Channels[0])
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	outChannels := 1
	if req.SplitChannels {
		outChannels = len(req.Channels)
	}

	hdr := Header{
		Version:    2,
		BitDepth:   req.BitDepth,
		SampleRate: req.SampleRate,
		Scale:      float64(req.Scale),
		Channels:   outChannels,
		Length:     (req.Length + req.Scale - 1) / req.Scale,
	}
	if err := hdr.validate(); err != nil {
		return nil, err
	}

	w := newWaveform(hdr)
	lo, hi := hdr.rangeMin(), hdr.rangeMax()

	mins := make([]int, outChannels)
	maxs := make([]int, outChannels)
	reset := func() {
		for c := range outChannels {
			mins[c] = math.MaxInt
			maxs[c] = math.MinInt
		}
	}
	add := func(c, v int) {
		mins[c] = min(mins[c], v)
		maxs[c] = max(maxs[c], v)
	}
	flush := func(pixel int) {
		for c := range outChannels {
			w.set(pixel, c, mins[c], maxs[c])
		}
	}

	reset()
	count, pixel := 0, 0

	for i := range req.Length {
		if req.SplitChannels {
			for c, ch := range req.Channels {
				add(c, utils.ScaleSample(float64(ch[i]), 1, req.AmplitudeScale, lo, hi))
			}
		} else {
			var sum float64
			for _, ch := range req.Channels {
				sum += float64(ch[i])
			}
			add(0, utils.ScaleSample(sum, len(req.Channels), req.AmplitudeScale, lo, hi))
		}

		count++
		if count == req.Scale {
			flush(pixel)
			pixel++
			count = 0
			reset()
		}
	}

	if count > 0 {
		flush(pixel)
	}

	return w, nil
}
