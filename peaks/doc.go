// SPDX-License-Identifier: EPL-2.0

// Package peaks encodes, generates and resamples audio waveform peak data.
//
// Peak data reduces an audio signal to one (min, max) pair per channel for
// every pixel, where a pixel covers Scale audio samples. It is held in a
// small little-endian binary layout:
//
//	offset  size  field
//	0       4     version (1, 2 or 3)
//	4       4     flags, nonzero for 8-bit samples
//	8       4     sample rate
//	12      4     scale (int32, or float32 for version 3)
//	16      4     length in pixels
//	20      4     channels (version 2 and 3 only)
//
// followed by the payload: for each pixel, for each channel, min then max as
// int8 or int16.
//
// Generate builds peak data from decoded samples, Resample turns it into a
// coarser or windowed copy, and Concat joins several waveforms. Create
// accepts either the binary form or the structured form (Object), which is
// what the JSON encoding of a Waveform uses.
//
// A Waveform never changes after it is returned and is safe to share
// between goroutines.
package peaks
