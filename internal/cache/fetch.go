package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rshade/carbonwise/internal/logging"
)

// Fetch returns the cached value for params when a fresh entry exists, and
// otherwise calls compute and stores its result. The boolean reports a hit.
// Cache failures are logged and never fail the call; a disabled or nil store
// always computes.
func Fetch[T any](
	ctx context.Context,
	store *FileStore,
	params KeyParams,
	compute func(context.Context) (T, error),
) (T, bool, error) {
	logger := logging.FromContext(ctx).With().
		Str("component", "cache").
		Str("operation", params.Operation).
		Logger()

	if store == nil || !store.IsEnabled() {
		v, err := compute(ctx)
		return v, false, err
	}

	key, err := GenerateKey(params)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot derive cache key, computing")
		v, computeErr := compute(ctx)
		return v, false, computeErr
	}

	if entry, getErr := store.Get(key); getErr == nil {
		var cached T
		if decodeErr := json.Unmarshal(entry.Data, &cached); decodeErr == nil {
			logger.Debug().Str("key", key[:12]).Dur("age", entry.Age()).Msg("cache hit")
			return cached, true, nil
		}
		logger.Warn().Str("key", key[:12]).Msg("discarding undecodable cache entry")
	} else if !errors.Is(getErr, ErrCacheNotFound) && !errors.Is(getErr, ErrCacheExpired) {
		logger.Warn().Err(getErr).Msg("cache read failed")
	}

	v, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot encode result, not caching")
		return v, false, nil
	}
	if setErr := store.Set(key, params.Operation, data); setErr != nil {
		logger.Warn().Err(setErr).Msg("cache write failed")
	}
	logger.Debug().Str("key", key[:12]).Msg("cache miss, stored")
	return v, false, nil
}
