package templates

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"benefit-engine/internal/forms"
)

// Registry caches template bytes loaded from a Source. Failed loads are not
// cached and are retried on the next request.
type Registry struct {
	source Source
	logger *zap.Logger
	cache  sync.Map // forms.Template -> []byte
}

func NewRegistry(source Source, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{source: source, logger: logger}
}

// Load implements Source.
func (r *Registry) Load(ctx context.Context, t forms.Template) ([]byte, error) {
	if data, ok := r.cache.Load(t); ok {
		return data.([]byte), nil
	}

	data, err := r.source.Load(ctx, t)
	if err != nil {
		return nil, err
	}
	r.cache.Store(t, data)
	return data, nil
}

// Prefetch loads the given templates concurrently and warms the cache. It
// returns the first error encountered.
func (r *Registry) Prefetch(ctx context.Context, ts []forms.Template) error {
	var toFetch []forms.Template
	for _, t := range ts {
		if _, ok := r.cache.Load(t); !ok {
			toFetch = append(toFetch, t)
		}
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, t := range toFetch {
		wg.Add(1)
		go func(t forms.Template) {
			defer wg.Done()
			data, err := r.Load(ctx, t)
			if err != nil {
				r.logger.Warn("template prefetch failed", zap.String("template", string(t)), zap.Error(err))
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			r.logger.Debug("template cached", zap.String("template", string(t)), zap.Int("bytes", len(data)))
		}(t)
	}
	wg.Wait()

	return firstErr
}
