package media

import (
	"context"
	"slices"
	"sync"
)

type addressDeleter interface {
	DeleteByAddress(ctx context.Context, address string) CleanupResult
}

// PendingUploads tracks images uploaded during a create flow that has not
// been saved yet, so they can be discarded if the flow is abandoned.
type PendingUploads struct {
	mu    sync.Mutex
	addrs []string
}

// Track records an address. Duplicates and blanks are ignored.
func (p *PendingUploads) Track(addr string) {
	if addr == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !slices.Contains(p.addrs, addr) {
		p.addrs = append(p.addrs, addr)
	}
}

// Forget stops tracking addr, typically because it was saved on an entity.
func (p *PendingUploads) Forget(addr string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addrs = slices.DeleteFunc(p.addrs, func(a string) bool { return a == addr })
}

// Addresses returns a copy of the tracked addresses in insertion order.
func (p *PendingUploads) Addresses() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.addrs)
}

// Discard deletes every tracked address best-effort and clears the list.
func (p *PendingUploads) Discard(ctx context.Context, d addressDeleter) []CleanupResult {
	p.mu.Lock()
	addrs := p.addrs
	p.addrs = nil
	p.mu.Unlock()

	results := make([]CleanupResult, 0, len(addrs))
	for _, a := range addrs {
		results = append(results, d.DeleteByAddress(ctx, a))
	}
	return results
}
