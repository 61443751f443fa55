// SPDX-License-Identifier: EPL-2.0

// Package wavepeaks generates and stores audio waveform peak data.
//
// Peak data summarizes audio for drawing: every pixel holds the minimum and
// maximum sample of a fixed number of input samples. The peaks subpackage
// defines the data format and its operations; this package connects it to
// the audio decoders in formats/ and to the caches in store/.
//
// # Quick Start
//
//	file, _ := os.Open("track.mp3")
//	wf, err := wavepeaks.FromReader("mp3", file, peaks.Options{Scale: 256})
//	if err != nil {
//	    // handle error
//	}
//
//	out, _ := os.Create("track.dat")
//	err = wavepeaks.Save(out, wf, wavepeaks.FormatBinary)
//
// Load reads either binary (.dat) or JSON waveform files.
//
// # Supported Formats
//
// DefaultRegistry knows these keys:
//   - wav, wave: PCM WAV at 8, 16, 24 or 32 bits
//   - mp3
//   - ogg, oga: Ogg Vorbis
//   - aiff, aif
//
// # Generator
//
// Generator adds caching and background generation on top of FromReader:
//
//	w := peaks.NewWorker(0)
//	defer w.Close()
//
//	g := wavepeaks.NewGenerator(
//	    wavepeaks.WithCache(store.NewMemory()),
//	    wavepeaks.WithWorker(w),
//	)
//	wf, cached, err := g.Generate(ctx, "wav", data, peaks.Options{})
package wavepeaks
