// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads ReadChannels tolerates in a row.
const maxEmptyReads = 100

// ReadChannels drains src and splits its interleaved samples into one
// slice per channel. bufSize is the read buffer length in samples; zero
// uses src.BufSize(). It must be a multiple of the channel count.
//
// The source is read to the end but not closed.
func ReadChannels(src Source, bufSize int) ([][]float32, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoChannels, channels)
	}

	if bufSize == 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 || bufSize%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrInvalidDstSize, bufSize, channels)
	}

	out := make([][]float32, channels)
	buf := make([]float32, bufSize)
	empty, rem := 0, 0

	for {
		n, err := src.ReadSamples(buf[rem:])

		// an incomplete frame is carried into the next read and dropped at
		// the end of the stream
		total := rem + n
		whole := total - total%channels
		for i := 0; i < whole; i += channels {
			for c := range channels {
				out[c] = append(out[c], buf[i+c])
			}
		}
		rem = copy(buf, buf[whole:total])

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}

	for c := range out {
		if out[c] == nil {
			out[c] = []float32{}
		}
	}
	return out, nil
}
