package crawl

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"kbingest"
)

var _ kbingest.DomainLimiter = (*SiteLimiter)(nil)

// SiteLimiter provides per-canonical-site rate limiting using token
// buckets. It replaces the fixed sleeps of a naive crawler: each site gets
// its own limiter with a burst of 1, so requests to one site are spaced
// out while requests to different sites don't block each other.
type SiteLimiter struct {
	mu       sync.Mutex
	limiters map[kbingest.CanonicalSite]*rate.Limiter
	rps      float64
}

// NewSiteLimiter creates a SiteLimiter with the specified requests per
// second limit per site.
func NewSiteLimiter(rps float64) *SiteLimiter {
	return &SiteLimiter{
		limiters: make(map[kbingest.CanonicalSite]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the site.
// Returns an error if the context is canceled before the wait completes.
func (l *SiteLimiter) Wait(ctx context.Context, site kbingest.CanonicalSite) error {
	l.mu.Lock()
	limiter, ok := l.limiters[site]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[site] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
