// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavepeaks/audio"
)

const (
	defaultBufSize = 4096

	formatPCM = 1
)

type wavSource struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	bitDepth   int
	// divisor mapping integer samples onto [-1, 1)
	scale float32
	buf   *goaudio.IntBuffer
	eof   bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return defaultBufSize }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		if s.bitDepth == 8 {
			// 8-bit WAV samples are unsigned
			v -= 128
		}
		dst[i] = float32(v) / s.scale
	}
	return n, nil
}

// Decoder reads PCM WAV files with 8, 16, 24 or 32 bits per sample.
type Decoder struct{}

// Decode parses the RIFF header of r and positions it at the sample data.
// Readers that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrNoPCMData
	}

	format := dec.Format()
	return &wavSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
		scale:      float32(goaudio.IntMaxSignedValue(bitDepth) + 1),
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, defaultBufSize),
			SourceBitDepth: bitDepth,
		},
	}, nil
}
