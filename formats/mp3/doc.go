// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams using github.com/hajimehoshi/go-mp3.
//
//	source, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // ...
//	}
//
// The decoder always reports two channels; mono files are duplicated onto
// both. Samples are float32 in [-1.0, 1.0).
//
// Feeding the source to audio.ReadChannels yields the per-channel arrays
// that peak generation consumes:
//
//	channels, err := audio.ReadChannels(source, 0)
//	data, err := peaks.Generate(peaks.Request{
//	    SampleRate: source.SampleRate(),
//	    Channels:   channels,
//	})
package mp3
