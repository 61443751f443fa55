// SPDX-License-Identifier: EPL-2.0

// Package store caches encoded waveform data.
//
// Keys come from Key, which hashes the source audio together with the
// generation options using xxhash:
//
//	key := store.Key(audioBytes, opts)
//	data, err := cache.Get(ctx, key)
//	if errors.Is(err, store.ErrNotFound) {
//	    // generate, then cache.Put(ctx, key, wf.Bytes())
//	}
//
// Memory keeps values in process. Redis stores them under a prefixed key
// with an expiry, using github.com/go-redis/redis/v8.
package store
