// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files using github.com/go-audio/aiff.
//
//	source, err := aiff.Decoder{}.Decode(file)
//
// Samples at 8, 16, 24 or 32 bits are normalized to [-1.0, 1.0) by the
// largest magnitude of their bit depth. Readers without io.Seeker are
// buffered in memory since the underlying decoder seeks between chunks.
//
// # Errors
//
//   - ErrNotAiffFile: the FORM/AIFF structure or COMM chunk is missing
//   - ErrUnsupportedBitDepth: any other sample size
//   - ErrUnsupportedAiffLayout: the header declares no channels
package aiff
