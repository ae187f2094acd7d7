// Package hoardfx provides an fx module for a ready-to-use byte cache.
package hoardfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hoardcache/hoard"
	"github.com/hoardcache/hoard/internal/stats"
	"github.com/hoardcache/hoard/internal/stats/logger"
)

// Module provides a *hoard.Cache[string, []byte] with logger-backed stats.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("hoard",
	fx.Provide(
		newStatsCollector,
		newCache,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("hoard.stats"))
}

// Params holds dependencies for creating the cache.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided cache.
type Result struct {
	fx.Out

	Cache *hoard.Cache[string, []byte]
}

func newCache(p Params) (Result, error) {
	cache, err := hoard.New(
		hoard.WithCapacity[string, []byte](hoard.DefaultCapacity),
		hoard.WithStats[string, []byte](p.Collector),
		hoard.WithLogger[string, []byte](p.Logger.Named("hoard")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			p.Logger.Debug("purging cache", zap.Int("entries", cache.Len()))
			cache.Purge()
			return nil
		},
	})

	return Result{Cache: cache}, nil
}
