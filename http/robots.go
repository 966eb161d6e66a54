package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/temoto/robotstxt"

	"kbingest"
)

// Ensure RobotsPolicy implements kbingest.RobotsPolicy at compile time.
var _ kbingest.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy checks robots.txt before a URL is fetched.
// Robots files are fetched once per host and cached for the lifetime of
// the policy. A missing or unreachable robots.txt is permissive.
type RobotsPolicy struct {
	client    *http.Client
	userAgent string

	mu    sync.Mutex
	cache map[string]*robotstxt.Group
}

// NewRobotsPolicy creates a RobotsPolicy using the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewRobotsPolicy(client *http.Client) *RobotsPolicy {
	if client == nil {
		client = http.DefaultClient
	}
	return &RobotsPolicy{
		client:    client,
		userAgent: browserHeaders["User-Agent"],
		cache:     make(map[string]*robotstxt.Group),
	}
}

// Allowed reports whether robots.txt permits fetching the URL.
// Unparseable URLs are allowed; the fetcher will produce a better error.
func (p *RobotsPolicy) Allowed(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return true
	}

	group := p.groupFor(ctx, u)
	if group == nil {
		return true
	}
	return group.Test(u.Path)
}

// groupFor returns the cached robots group for the URL's host, fetching
// robots.txt on first use.
func (p *RobotsPolicy) groupFor(ctx context.Context, u *url.URL) *robotstxt.Group {
	p.mu.Lock()
	defer p.mu.Unlock()

	if group, ok := p.cache[u.Host]; ok {
		return group
	}

	group := p.fetchGroup(ctx, u)
	p.cache[u.Host] = group
	return group
}

func (p *RobotsPolicy) fetchGroup(ctx context.Context, u *url.URL) *robotstxt.Group {
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	robots, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil
	}
	return robots.FindGroup(p.userAgent)
}
