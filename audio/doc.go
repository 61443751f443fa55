// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoded audio stream consumed by peak
// generation.
//
// # Source Interface
//
// Every format decoder returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples fills dst with interleaved float32 samples in [-1.0, 1.0] and
// returns io.EOF at the end of the stream.
//
// # Reading Channels
//
// Peak generation works on one array per channel. ReadChannels drains a
// source and deinterleaves it:
//
//	channels, err := audio.ReadChannels(src, 0)
//	// channels[0] is the left channel, channels[1] the right, ...
//
// A buffer size of zero uses the source's own BufSize. The buffer must hold
// a whole number of frames, otherwise ErrInvalidDstSize is returned. A read
// that ends mid-frame is completed by the next one; a partial frame left at
// the end of the stream is dropped.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode("wav", file)
//
// Keys are case insensitive. Decode returns ErrUnknownFormat for keys with
// no decoder.
package audio
