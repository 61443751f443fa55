// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/ik5/wavepeaks/peaks"
)

var ErrNotFound = errors.New("waveform not cached")

// Store holds encoded waveform data by key.
type Store interface {
	// Get returns ErrNotFound when key has no value.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Key derives a cache key from the raw audio bytes and the options that
// shape the generated peaks. Options are normalized first, so zero values
// and their defaults share a key.
func Key(input []byte, opts peaks.Options) string {
	opts = opts.WithDefaults()

	h := xxhash.New()
	_, _ = h.Write(input)

	var buf [8]byte
	for _, v := range []uint64{
		uint64(opts.Scale),
		math.Float64bits(opts.AmplitudeScale),
		uint64(opts.BitDepth),
		boolBits(opts.SplitChannels),
	} {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	return strconv.FormatUint(h.Sum64(), 16)
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
