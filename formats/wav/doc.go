// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files and writes 16-bit PCM WAV files.
//
// Decoding is built on github.com/go-audio/wav and accepts integer PCM at
// 8, 16, 24 or 32 bits per sample with any channel count and sample rate.
// Samples are returned interleaved and normalized to [-1.0, 1.0):
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, wav.ErrNotWavFile), ...
//	}
//
// 8-bit WAV data is unsigned and is centered before scaling. Readers that
// do not implement io.Seeker are read into memory before parsing.
//
// # Writing
//
// WriteWAV16 emits a canonical 44 byte header followed by interleaved
// samples:
//
//	err := wav.WriteWAV16(file, 44100, 2, samples)
//
// # Errors
//
//   - ErrNotWavFile: missing RIFF/WAVE structure or fmt chunk
//   - ErrUnsupportedFormat: compressed or floating point data, or a sample
//     slice that does not hold whole frames
//   - ErrUnsupportedBitDepth: bit depth other than 8, 16, 24 or 32
//   - ErrNoPCMData: no data chunk after the header
package wav
