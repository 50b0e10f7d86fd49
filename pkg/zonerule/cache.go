package zonerule

import (
	"log/slog"
	"time"

	"github.com/maypok86/otter/v2"
)

// CachingProvider wraps another Provider with an in-memory otter cache
// keyed by zone name. time.LoadLocation re-reads tzdata files on every
// call, so long-lived callers resolving the same handful of zones go
// through here. Zone rules are immutable for the process lifetime, so
// entries never expire; misses are not cached because an invalid name
// stays invalid and the wrapped provider's error is cheap to reproduce.
type CachingProvider struct {
	next   Provider
	cache  otter.Cache[string, *time.Location]
	logger *slog.Logger
}

// NewCachingProvider wraps next with a cache of up to maxZones resolved
// rule sets. A nil logger disables debug logging.
func NewCachingProvider(next Provider, maxZones int, logger *slog.Logger) *CachingProvider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cache := otter.Must(&otter.Options[string, *time.Location]{
		MaximumSize:     maxZones,
		InitialCapacity: 16,
	})
	return &CachingProvider{
		next:   next,
		cache:  *cache,
		logger: logger,
	}
}

// Resolve returns the cached rule set for name, consulting the wrapped
// provider on a miss.
func (p *CachingProvider) Resolve(name string) (*time.Location, error) {
	if loc, ok := p.cache.GetIfPresent(name); ok {
		return loc, nil
	}
	loc, err := p.next.Resolve(name)
	if err != nil {
		p.logger.Debug("zone resolution failed", "zone", name, "error", err)
		return nil, err
	}
	p.cache.Set(name, loc)
	p.logger.Debug("zone cached", "zone", name, "entries", p.cache.EstimatedSize())
	return loc, nil
}

var _ Provider = (*CachingProvider)(nil)
