// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio from a function of (frame, channel).
// It implements the audio.Source interface without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	read       int
	bufSize    int
	closed     bool

	// Err, when set, is returned by ReadSamples once FailAt frames are read.
	Err    error
	FailAt int

	wave func(frame, channel int) float32
}

// NewMockSource creates a source of frames frames per channel.
func NewMockSource(sampleRate, channels, frames int, wave func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		bufSize:    4096,
		wave:       wave,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource generates the same value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewSineSource generates a sine wave of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewSquareSource alternates between +amp and -amp every frame, starting
// positive.
func NewSquareSource(sampleRate, channels, frames int, amp float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		if frame%2 == 0 {
			return amp
		}
		return -amp
	})
}

// NewChannelSource gives every channel its own constant value, handy for
// checking deinterleaving.
func NewChannelSource(sampleRate, frames int, values ...float32) *MockSource {
	return NewMockSource(sampleRate, len(values), frames, func(_, channel int) float32 {
		return values[channel]
	})
}

// WithBufSize sets the value reported by BufSize.
func (m *MockSource) WithBufSize(n int) *MockSource {
	m.bufSize = n
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return m.bufSize }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.read = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.Err != nil && m.read >= m.FailAt {
		return 0, m.Err
	}
	if m.read >= m.frames {
		return 0, io.EOF
	}

	todo := min(len(dst)/m.channels, m.frames-m.read)
	if m.Err != nil {
		todo = min(todo, m.FailAt-m.read)
	}

	for f := range todo {
		for c := range m.channels {
			dst[f*m.channels+c] = m.wave(m.read+f, c)
		}
	}
	m.read += todo

	if m.read >= m.frames {
		return todo * m.channels, io.EOF
	}
	return todo * m.channels, nil
}
