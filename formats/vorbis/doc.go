// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams using
// github.com/jfreymuth/oggvorbis.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	if errors.Is(err, vorbis.ErrNotVorbisFile) {
//	    // ...
//	}
//
// The source keeps the stream's own channel count and sample rate.
// Decoded values are passed through unscaled; Vorbis output can overshoot
// [-1.0, 1.0] slightly and peak generation clamps it.
package vorbis
