package crawl

import (
	"strings"
	"sync"

	"kbingest"
	"kbingest/bloom"
)

// Frontier is an in-memory FIFO crawl queue with Bloom filter
// deduplication. Push is an atomic test-and-insert against the visited
// set, so a URL can be enqueued at most once per run even when two pages
// link to it. The frontier is scoped to a single run: create a fresh one
// per crawl so concurrent runs cannot cross-contaminate.
//
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []kbingest.CrawlTarget
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds a target to the back of the queue.
// Returns false if the URL has already been enqueued or processed this
// run. URL fragments are stripped first - URLs differing only by fragment
// are duplicates.
func (f *Frontier) Push(target kbingest.CrawlTarget) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(target.URL)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	target.URL = url
	f.queue = append(f.queue, target)
	return true
}

// Pop removes and returns the target at the head of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (kbingest.CrawlTarget, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return kbingest.CrawlTarget{}, false
	}
	target := f.queue[0]
	f.queue = f.queue[1:]
	return target, true
}

// Len returns the number of targets waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been enqueued or processed this run.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
