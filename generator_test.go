// SPDX-License-Identifier: EPL-2.0

package wavepeaks

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ik5/wavepeaks/audio"
	"github.com/ik5/wavepeaks/internal/peakstest"
	"github.com/ik5/wavepeaks/peaks"
	"github.com/ik5/wavepeaks/store"
)

// brokenStore fails every call.
type brokenStore struct{ err error }

func (b brokenStore) Get(context.Context, string) ([]byte, error) { return nil, b.err }
func (b brokenStore) Put(context.Context, string, []byte) error   { return b.err }

func TestGenerator_Cache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := wavBytes(t, 16000, peakstest.Square(4096, 0.5))
	cache := store.NewMemory()
	g := NewGenerator(WithCache(cache))

	first, cached, err := g.Generate(ctx, "wav", input, peaks.Options{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cached {
		t.Error("first Generate() reported a cache hit")
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", cache.Len())
	}

	second, cached, err := g.Generate(ctx, "wav", input, peaks.Options{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !cached {
		t.Error("second Generate() missed the cache")
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("cached waveform differs from generated one")
	}

	// other options are a different entry
	if _, cached, _ := g.Generate(ctx, "wav", input, peaks.Options{BitDepth: 16}); cached {
		t.Error("Generate() with other options hit the cache")
	}
	if cache.Len() != 2 {
		t.Errorf("cache holds %d entries, want 2", cache.Len())
	}
}

func TestGenerator_CorruptCacheEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := wavBytes(t, 16000, peakstest.Square(1024, 0.5))
	cache := store.NewMemory()

	if err := cache.Put(ctx, store.Key(input, peaks.Options{}), []byte("junk")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	wf, cached, err := NewGenerator(WithCache(cache)).Generate(ctx, "wav", input, peaks.Options{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cached {
		t.Error("Generate() used a corrupt cache entry")
	}

	stored, _ := cache.Get(ctx, store.Key(input, peaks.Options{}))
	if !bytes.Equal(stored, wf.Bytes()) {
		t.Error("corrupt cache entry was not replaced")
	}
}

func TestGenerator_CacheError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	g := NewGenerator(WithCache(brokenStore{err: storeErr}))

	input := wavBytes(t, 16000, peakstest.Square(1024, 0.5))
	if _, _, err := g.Generate(context.Background(), "wav", input, peaks.Options{}); !errors.Is(err, storeErr) {
		t.Errorf("Generate() error = %v, want %v", err, storeErr)
	}
}

func TestGenerator_Worker(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := wavBytes(t, 44100, peakstest.Square(10000, 0.75), peakstest.Square(10000, 0.25))
	opts := peaks.Options{Scale: 256, SplitChannels: true}

	inline, _, err := NewGenerator().Generate(ctx, "wav", input, opts)
	if err != nil {
		t.Fatalf("inline Generate() error = %v", err)
	}

	w := peaks.NewWorker(2)
	defer w.Close()

	background, _, err := NewGenerator(WithWorker(w)).Generate(ctx, "wav", input, opts)
	if err != nil {
		t.Fatalf("worker Generate() error = %v", err)
	}
	if !bytes.Equal(inline.Bytes(), background.Bytes()) {
		t.Error("worker output differs from inline output")
	}

	// validation errors come back through the result channel
	if _, _, err := NewGenerator(WithWorker(w)).Generate(ctx, "wav", input, peaks.Options{Scale: -1}); !errors.Is(err, peaks.ErrInvalidGenerateOptions) {
		t.Errorf("Generate() error = %v, want ErrInvalidGenerateOptions", err)
	}
}

func TestGenerator_ClosedWorker(t *testing.T) {
	t.Parallel()

	w := peaks.NewWorker(1)
	w.Close()

	input := wavBytes(t, 8000, peakstest.Square(100, 0.5))
	if _, _, err := NewGenerator(WithWorker(w)).Generate(context.Background(), "wav", input, peaks.Options{}); !errors.Is(err, ErrWorkerClosed) {
		t.Errorf("Generate() error = %v, want ErrWorkerClosed", err)
	}
}

func TestGenerator_Registry(t *testing.T) {
	t.Parallel()

	input := wavBytes(t, 8000, peakstest.Square(100, 0.5))
	g := NewGenerator(WithRegistry(audio.NewRegistry()))

	if _, _, err := g.Generate(context.Background(), "wav", input, peaks.Options{}); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("Generate() error = %v, want ErrUnknownFormat", err)
	}
}
