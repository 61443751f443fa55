// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/ik5/wavepeaks/internal/peakstest"
)

func constant(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestGenerate_SquareWave(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bits    int
		wantMin int
		wantMax int
	}{
		{name: "8 bit", bits: 8, wantMin: -64, wantMax: 63},
		{name: "16 bit", bits: 16, wantMin: -16384, wantMax: 16383},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := Generate(Request{
				Options:    Options{Scale: 512, AmplitudeScale: 1.0, BitDepth: tt.bits},
				SampleRate: 48000,
				Channels:   [][]float32{peakstest.Square(88200, 0.5)},
			})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			want := Header{Version: 2, BitDepth: tt.bits, SampleRate: 48000, Scale: 512, Channels: 1, Length: 173}
			if w.Header() != want {
				t.Errorf("Header() = %+v, want %+v", w.Header(), want)
			}

			for _, i := range []int{0, 1, 86, 172} {
				if lo, hi := w.Sample(i, 0); lo != tt.wantMin || hi != tt.wantMax {
					t.Errorf("Sample(%d) = (%d, %d), want (%d, %d)", i, lo, hi, tt.wantMin, tt.wantMax)
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	req := Request{
		SampleRate: 44100,
		Channels:   [][]float32{peakstest.Square(5000, 0.3), constant(5000, -0.1)},
	}

	a, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two runs over the same input differ")
	}
}

func TestGenerate_Clamp(t *testing.T) {
	t.Parallel()

	w, err := Generate(Request{
		Options:    Options{Scale: 4, AmplitudeScale: 2.0},
		SampleRate: 8000,
		Channels:   [][]float32{peakstest.Square(8, 1)},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i := range w.Length() {
		if lo, hi := w.Sample(i, 0); lo != -128 || hi != 127 {
			t.Errorf("Sample(%d) = (%d, %d), want (-128, 127)", i, lo, hi)
		}
	}
}

func TestGenerate_Channels(t *testing.T) {
	t.Parallel()

	channels := [][]float32{constant(8, 0.5), constant(8, -0.5)}

	mixed, err := Generate(Request{Options: Options{Scale: 4}, SampleRate: 8000, Channels: channels})
	if err != nil {
		t.Fatalf("Generate(mixed) error = %v", err)
	}
	if mixed.Channels() != 1 {
		t.Fatalf("mixed Channels() = %d, want 1", mixed.Channels())
	}
	assertChannel(t, mixed, 0, []int{0, 0}, []int{0, 0})

	split, err := Generate(Request{Options: Options{Scale: 4, SplitChannels: true}, SampleRate: 8000, Channels: channels})
	if err != nil {
		t.Fatalf("Generate(split) error = %v", err)
	}
	if split.Channels() != 2 {
		t.Fatalf("split Channels() = %d, want 2", split.Channels())
	}
	assertChannel(t, split, 0, []int{63, 63}, []int{63, 63})
	assertChannel(t, split, 1, []int{-64, -64}, []int{-64, -64})
}

func TestGenerate_Windows(t *testing.T) {
	t.Parallel()

	ramp := []float32{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

	tests := []struct {
		name    string
		length  int
		scale   int
		wantMin []int
		wantMax []int
	}{
		{name: "partial last window", scale: 4, wantMin: []int{0, 50, 101}, wantMax: []int{38, 88, 114}},
		{name: "exact windows", scale: 5, wantMin: []int{0, 63}, wantMax: []int{50, 114}},
		{name: "one window", scale: 512, wantMin: []int{0}, wantMax: []int{114}},
		{name: "explicit length", length: 5, scale: 4, wantMin: []int{0, 50}, wantMax: []int{38, 50}},
		{name: "sample per pixel", length: 3, scale: 1, wantMin: []int{0, 12, 25}, wantMax: []int{0, 12, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := Generate(Request{
				Options:    Options{Scale: tt.scale},
				SampleRate: 8000,
				Length:     tt.length,
				Channels:   [][]float32{ramp},
			})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			assertChannel(t, w, 0, tt.wantMin, tt.wantMax)
		})
	}
}

func TestGenerate_Defaults(t *testing.T) {
	t.Parallel()

	w, err := Generate(Request{SampleRate: 22050, Channels: [][]float32{make([]float32, 1025)}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := Header{Version: 2, BitDepth: DefaultBitDepth, SampleRate: 22050, Scale: DefaultScale, Channels: 1, Length: 3}
	if w.Header() != want {
		t.Errorf("Header() = %+v, want %+v", w.Header(), want)
	}
}

func TestGenerate_Empty(t *testing.T) {
	t.Parallel()

	w, err := Generate(Request{SampleRate: 8000, Channels: [][]float32{{}, {}}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if w.Length() != 0 || len(w.Bytes()) != 24 {
		t.Errorf("Generate(empty) = %d pixels, %d bytes", w.Length(), len(w.Bytes()))
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	t.Parallel()

	one := [][]float32{make([]float32, 10)}

	tests := []struct {
		name string
		req  Request
	}{
		{name: "negative scale", req: Request{Options: Options{Scale: -1}, SampleRate: 8000, Channels: one}},
		{name: "negative amplitude", req: Request{Options: Options{AmplitudeScale: -1}, SampleRate: 8000, Channels: one}},
		{name: "24 bit", req: Request{Options: Options{BitDepth: 24}, SampleRate: 8000, Channels: one}},
		{name: "no sample rate", req: Request{Channels: one}},
		{name: "no channels", req: Request{SampleRate: 8000}},
		{name: "negative length", req: Request{SampleRate: 8000, Length: -1, Channels: one}},
		{name: "short channel", req: Request{SampleRate: 8000, Channels: [][]float32{make([]float32, 10), make([]float32, 9)}}},
		{name: "length past channel end", req: Request{SampleRate: 8000, Length: 11, Channels: one}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Generate(tt.req); !errors.Is(err, ErrInvalidGenerateOptions) {
				t.Errorf("Generate() error = %v, want ErrInvalidGenerateOptions", err)
			}
		})
	}
}

func TestGenerate_ThenResample(t *testing.T) {
	t.Parallel()

	w, err := Generate(Request{
		Options:    Options{Scale: 256, SplitChannels: true, BitDepth: 16},
		SampleRate: 48000,
		Channels:   [][]float32{peakstest.Square(4096, 0.25), constant(4096, 0.75)},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	direct, err := Generate(Request{
		Options:    Options{Scale: 1024, SplitChannels: true, BitDepth: 16},
		SampleRate: 48000,
		Channels:   [][]float32{peakstest.Square(4096, 0.25), constant(4096, 0.75)},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	coarse, err := w.Resample(ResampleOptions{Scale: 1024})
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	for c := range 2 {
		a, _ := coarse.Channel(c)
		b, _ := direct.Channel(c)
		if !slices.Equal(a.MinArray(), b.MinArray()) || !slices.Equal(a.MaxArray(), b.MaxArray()) {
			t.Errorf("channel %d: resampled %v/%v, generated %v/%v",
				c, a.MinArray(), a.MaxArray(), b.MinArray(), b.MaxArray())
		}
	}
}
