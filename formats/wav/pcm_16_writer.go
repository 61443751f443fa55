// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes interleaved 16-bit PCM samples as a canonical 44-byte
// header WAV file. len(samples) must be a multiple of channels.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrUnsupportedFormat, len(samples), channels)
	}

	const bitsPerSample = 16

	blockAlign := channels * bitsPerSample / 8
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, 44)
	le := binary.LittleEndian

	copy(header[0:4], "RIFF")
	le.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	le.PutUint32(header[16:20], 16)
	le.PutUint16(header[20:22], formatPCM)
	le.PutUint16(header[22:24], uint16(channels))
	le.PutUint32(header[24:28], uint32(sampleRate))
	le.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	le.PutUint16(header[32:34], uint16(blockAlign))
	le.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	le.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192
	buf := make([]byte, 0, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		buf = buf[:0]
		for _, s := range samples[i:min(i+chunkSize, len(samples))] {
			buf = le.AppendUint16(buf, uint16(s))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
