// SPDX-License-Identifier: EPL-2.0

package wavepeaks

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ik5/wavepeaks/audio"
	"github.com/ik5/wavepeaks/peaks"
	"github.com/ik5/wavepeaks/store"
)

// Generator turns encoded audio into waveform data, optionally through a
// cache and a background worker.
type Generator struct {
	registry *audio.Registry
	cache    store.Store
	worker   *peaks.Worker
}

type GeneratorOption func(*Generator)

// WithRegistry replaces the default decoder registry.
func WithRegistry(r *audio.Registry) GeneratorOption {
	return func(g *Generator) { g.registry = r }
}

// WithCache stores generated data keyed by store.Key and serves repeated
// inputs from it.
func WithCache(s store.Store) GeneratorOption {
	return func(g *Generator) { g.cache = s }
}

// WithWorker runs generation on w instead of the calling goroutine. The
// caller still owns w and must close it.
func WithWorker(w *peaks.Worker) GeneratorOption {
	return func(g *Generator) { g.worker = w }
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate decodes input as format and returns its peaks. The second
// result reports whether the data came from the cache.
func (g *Generator) Generate(ctx context.Context, format string, input []byte, opts peaks.Options) (*peaks.Waveform, bool, error) {
	var key string
	if g.cache != nil {
		key = store.Key(input, opts)

		data, err := g.cache.Get(ctx, key)
		switch {
		case err == nil:
			// entries that no longer parse are regenerated
			if wf, err := peaks.New(data); err == nil {
				return wf, true, nil
			}
		case !errors.Is(err, store.ErrNotFound):
			return nil, false, fmt.Errorf("%w", err)
		}
	}

	src, err := g.registry.Decode(format, bytes.NewReader(input))
	if err != nil {
		return nil, false, err
	}
	defer src.Close()

	req, err := request(src, opts)
	if err != nil {
		return nil, false, err
	}

	wf, err := g.run(ctx, req)
	if err != nil {
		return nil, false, err
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, key, wf.Bytes()); err != nil {
			return nil, false, fmt.Errorf("%w", err)
		}
	}
	return wf, false, nil
}

func (g *Generator) run(ctx context.Context, req peaks.Request) (*peaks.Waveform, error) {
	if g.worker == nil {
		return peaks.Generate(req)
	}

	select {
	case res, ok := <-g.worker.Submit(req):
		if !ok {
			return nil, ErrWorkerClosed
		}
		if res.Err != nil {
			return nil, fmt.Errorf("job %s: %w", res.ID, res.Err)
		}
		return peaks.New(res.Data)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w", ctx.Err())
	}
}
