// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"
	"math"
)

// BatchSize is the number of destination pixels Next processes.
const BatchSize = 1000

// ResampleOptions selects the output of a Resampler.
//
// With only Scale set the whole source is re-binned to that many audio
// samples per pixel. With Width set the window [StartTime, EndTime) is
// mapped onto exactly Width pixels; Scale, if also set, is only recorded in
// the output header. A zero EndTime means the end of the source.
type ResampleOptions struct {
	Scale     float64
	Width     int
	StartTime float64
	EndTime   float64
}

func (o ResampleOptions) validate() error {
	switch {
	case o.Width < 0:
		return fmt.Errorf("%w: width %d", ErrInvalidResampleOptions, o.Width)
	case o.Scale < 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0):
		return fmt.Errorf("%w: scale %v", ErrInvalidResampleOptions, o.Scale)
	case o.Scale == 0 && o.Width == 0:
		return fmt.Errorf("%w: scale or width is required", ErrInvalidResampleOptions)
	case o.StartTime < 0 || math.IsNaN(o.StartTime) || math.IsInf(o.StartTime, 0):
		return fmt.Errorf("%w: start time %v", ErrInvalidResampleOptions, o.StartTime)
	case math.IsNaN(o.EndTime) || math.IsInf(o.EndTime, 0):
		return fmt.Errorf("%w: end time %v", ErrInvalidResampleOptions, o.EndTime)
	case o.EndTime != 0 && o.EndTime <= o.StartTime:
		return fmt.Errorf("%w: end time %v not after start time %v", ErrInvalidResampleOptions, o.EndTime, o.StartTime)
	case o.Width == 0 && (o.StartTime != 0 || o.EndTime != 0):
		return fmt.Errorf("%w: start and end times need a width", ErrInvalidResampleOptions)
	}
	return nil
}

// Resampler builds a coarser waveform from a Source in resumable steps.
// A Resampler is not safe for concurrent use; dropping one half way has no
// effect on its source.
type Resampler struct {
	src  Source
	in   Header
	out  *Waveform
	step func(n int) bool
	done bool

	// scale mode
	scale       float64
	inputIndex  int
	outputIndex int
	min, max    []int

	// window mode
	pixel      int
	winStart   float64
	winSamples float64
}

type validator interface {
	Validate() error
}

// NewResampler prepares a resampler over src. Nothing is computed until
// Step or Next is called.
func NewResampler(src Source, opts ResampleOptions) (*Resampler, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if v, ok := src.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	r := &Resampler{src: src, in: src.Header()}
	if opts.Width > 0 {
		if err := r.initWindow(opts); err != nil {
			return nil, err
		}
		return r, nil
	}

	if err := r.initScale(opts.Scale); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resampler) initScale(scale float64) error {
	if scale < r.in.Scale {
		return fmt.Errorf("%w: %v < %v", ErrUpsampleNotAllowed, scale, r.in.Scale)
	}

	hdr := r.in
	hdr.Version = outputVersion(scale)
	hdr.Scale = scale
	hdr.Length = int(math.Ceil(float64(r.in.Length) * r.in.Scale / scale))
	if err := hdr.validate(); err != nil {
		return err
	}

	r.out = newWaveform(hdr)
	r.scale = scale
	r.step = r.stepScale

	r.min = make([]int, r.in.Channels)
	r.max = make([]int, r.in.Channels)
	return nil
}

func (r *Resampler) initWindow(opts ResampleOptions) error {
	rate := float64(r.in.SampleRate)

	r.winStart = opts.StartTime * rate
	if opts.EndTime != 0 {
		r.winSamples = (opts.EndTime - opts.StartTime) * rate
	} else {
		r.winSamples = float64(r.in.Length)*r.in.Scale - r.winStart
	}
	if !(r.winSamples > 0) {
		return fmt.Errorf("%w: start time %v is past the end of the source", ErrInvalidResampleOptions, opts.StartTime)
	}

	hdr := r.in
	hdr.Version = 3
	hdr.Length = opts.Width
	hdr.Scale = opts.Scale
	if hdr.Scale == 0 {
		hdr.Scale = r.winSamples / float64(opts.Width)
	}
	if err := hdr.validate(); err != nil {
		return err
	}

	r.out = newWaveform(hdr)
	r.step = r.stepWindow
	return nil
}

// Step processes up to n destination pixels and reports whether the output
// is complete.
func (r *Resampler) Step(n int) bool {
	if !r.done {
		r.done = r.step(n)
	}
	return r.done
}

// Next runs one batch of BatchSize pixels.
func (r *Resampler) Next() bool {
	return r.Step(BatchSize)
}

// Done reports whether the output is complete.
func (r *Resampler) Done() bool {
	return r.done
}

// Waveform returns the output, or nil while steps remain.
func (r *Resampler) Waveform() *Waveform {
	if !r.done {
		return nil
	}
	return r.out
}

// sampleAt returns the first audio sample covered by output pixel p.
func (r *Resampler) sampleAt(p int) float64 {
	return math.Floor(float64(p) * r.scale)
}

// sourceIndex returns the source pixel holding the first sample of output pixel p.
func (r *Resampler) sourceIndex(p int) int {
	return int(math.Floor(r.sampleAt(p) / r.in.Scale))
}

// stepScale gives output pixel p the source pixels from the cursor up to
// sourceIndex(p+1), and at least one. The last pixel takes whatever is
// left, so every source pixel lands in exactly one output pixel.
func (r *Resampler) stepScale(n int) bool {
	length := r.in.Length
	width := r.out.hdr.Length

	for count := 0; r.outputIndex < width && count < n; count++ {
		p := r.outputIndex

		start := min(r.inputIndex, length-1)
		end := length
		if p < width-1 {
			end = min(max(r.sourceIndex(p+1), start+1), length)
		}

		r.reset()
		for i := start; i < end; i++ {
			r.absorb(i)
		}
		r.flush(p)

		r.inputIndex = end
		r.outputIndex++
	}

	return r.outputIndex >= width
}

func (r *Resampler) reset() {
	lo, hi := r.in.rangeMin(), r.in.rangeMax()
	for c := range r.min {
		r.min[c] = hi
		r.max[c] = lo
	}
}

func (r *Resampler) absorb(index int) {
	for c := range r.min {
		lo, hi := r.src.Sample(index, c)
		r.min[c] = min(r.min[c], lo)
		r.max[c] = max(r.max[c], hi)
	}
}

func (r *Resampler) flush(p int) {
	if p < 0 || p >= r.out.hdr.Length {
		return
	}
	for c := range r.min {
		r.out.set(p, c, r.min[c], r.max[c])
	}
}

// window returns the source pixel range [start, end) for output pixel p.
// It always holds at least one pixel.
func (r *Resampler) window(p int) (int, int) {
	width := float64(r.out.hdr.Length)

	start := int(math.Floor((r.winStart + r.winSamples*float64(p)/width) / r.in.Scale))
	end := int(math.Floor((r.winStart + r.winSamples*float64(p+1)/width) / r.in.Scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

func (r *Resampler) stepWindow(n int) bool {
	length := r.in.Length
	width := r.out.hdr.Length

	for count := 0; r.pixel < width && count < n; count++ {
		start, end := r.window(r.pixel)

		for c := range r.in.Channels {
			lo, hi := math.MaxInt, math.MinInt
			for i := start; i < min(end, length); i++ {
				smin, smax := r.src.Sample(i, c)
				lo = min(lo, smin)
				hi = max(hi, smax)
			}
			if end > length {
				// pixels past the end of the source read as silence
				lo = min(lo, 0)
				hi = max(hi, 0)
			}
			r.out.set(r.pixel, c, lo, hi)
		}

		r.pixel++
	}

	return r.pixel >= width
}

// Resample runs a Resampler over src to completion.
func Resample(src Source, opts ResampleOptions) (*Waveform, error) {
	r, err := NewResampler(src, opts)
	if err != nil {
		return nil, err
	}

	for !r.Next() {
	}
	return r.Waveform(), nil
}

// Resample returns a coarser copy of w.
func (w *Waveform) Resample(opts ResampleOptions) (*Waveform, error) {
	return Resample(w, opts)
}
