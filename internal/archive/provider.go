package archive

import (
	"context"
	"sync"
)

type Provider interface {
	Store(ctx context.Context) (Store, error)
	Close(ctx context.Context) error
}

type OpenFunc func(ctx context.Context) (Store, error)

// LazyProvider opens the store on first use. A failed open is not cached,
// so the next call tries again.
type LazyProvider struct {
	open OpenFunc

	mu    sync.Mutex
	store Store
}

func NewLazyProvider(open OpenFunc) *LazyProvider {
	return &LazyProvider{
		open: open,
	}
}

func (p *LazyProvider) Store(ctx context.Context) (Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil {
		return p.store, nil
	}

	store, err := p.open(ctx)
	if err != nil {
		return nil, err
	}

	p.store = store

	return store, nil
}

func (p *LazyProvider) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store == nil {
		return nil
	}

	err := p.store.Close(ctx)
	p.store = nil

	return err
}

type staticProvider struct {
	store Store
}

func NewStaticProvider(store Store) Provider {
	return staticProvider{store}
}

func (p staticProvider) Store(ctx context.Context) (Store, error) {
	return p.store, nil
}

func (p staticProvider) Close(ctx context.Context) error {
	return p.store.Close(ctx)
}
