package mock

import (
	"context"

	"kbingest"
)

var _ kbingest.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of kbingest.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, url string) bool
}

func (p *RobotsPolicy) Allowed(ctx context.Context, url string) bool {
	return p.AllowedFn(ctx, url)
}

var _ kbingest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of kbingest.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, site kbingest.CanonicalSite) error
}

func (l *DomainLimiter) Wait(ctx context.Context, site kbingest.CanonicalSite) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, site)
}
