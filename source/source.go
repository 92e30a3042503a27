package source

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/flapboard/flapboard/resolve"
)

var (
	// ErrDuplicateSource is returned by Register when the identifier is
	// already bound to a provider.
	ErrDuplicateSource = errors.New("source: duplicate source identifier")
	// ErrUnknownSource is returned by Lookup for an unregistered identifier.
	ErrUnknownSource = errors.New("source: unknown source identifier")
)

// Provider is one named data upstream.
type Provider interface {
	// ID is the identifier templates use as the first path segment.
	ID() string
	// Fetch returns the provider's current field map. Implementations must
	// honor ctx cancellation on any blocking work.
	Fetch(ctx context.Context) (map[string]any, error)
}

// Registry holds the providers available to a board.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register binds p under its identifier.
// Returns ErrDuplicateSource if the identifier is already taken.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := p.ID()
	if _, ok := r.providers[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSource, id)
	}
	r.providers[id] = p
	return nil
}

// Lookup returns the provider bound to id, or ErrUnknownSource.
func (r *Registry) Lookup(id string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, id)
	}
	return p, nil
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Context fetches every registered provider and assembles the results into
// a rendering context keyed by identifier. Fetching continues past
// failures: a failed provider contributes no fields (its references render
// as placeholders), and the returned error joins every failure, each
// wrapped with its identifier. The context is always usable, error or not.
func (r *Registry) Context(ctx context.Context) (resolve.Context, error) {
	r.mu.RLock()
	providers := make([]Provider, 0, len(r.providers))
	for _, p := range r.providers {
		providers = append(providers, p)
	}
	r.mu.RUnlock()

	out := make(resolve.Context, len(providers))
	var errs []error
	for _, p := range providers {
		fields, err := p.Fetch(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("source %q: %w", p.ID(), err))
			continue
		}
		out[p.ID()] = fields
	}
	return out, errors.Join(errs...)
}

// Static is a Provider backed by a fixed field map.
type Static struct {
	id     string
	fields map[string]any
}

// NewStatic returns a provider that always serves fields under id.
func NewStatic(id string, fields map[string]any) *Static {
	return &Static{id: id, fields: fields}
}

// ID implements Provider.
func (s *Static) ID() string { return s.id }

// Fetch implements Provider. It never fails and ignores ctx.
func (s *Static) Fetch(context.Context) (map[string]any, error) {
	return s.fields, nil
}
