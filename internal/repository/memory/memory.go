// Package memory holds an in-process product store. It backs local runs and
// tests, and doubles as the reference implementation of the repository contract.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dkovalenko/product-catalog-service/internal/model"
	"github.com/dkovalenko/product-catalog-service/internal/repository"
)

// ProductRepository is a mutex-guarded slice of products. The concrete type
// is exported because it also serves as the readiness Pinger when no
// database is configured.
type ProductRepository struct {
	mu    sync.RWMutex
	items []model.Product
}

// NewProductRepository builds a store preloaded with seed products in the
// given order. Seed order defines the catalog's natural order.
func NewProductRepository(seed []model.Product) *ProductRepository {
	return &ProductRepository{items: slices.Clone(seed)}
}

// List hands out a copy so callers paginate over an immutable snapshot.
func (r *ProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *ProductRepository) Create(_ context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Name == p.Name {
			return model.Product{}, repository.ErrAlreadyExists
		}
	}
	r.items = append(r.items, p)
	return p, nil
}

// Ping always succeeds; the process owning the store is the store.
func (r *ProductRepository) Ping(_ context.Context) error { return nil }

var _ repository.ProductRepository = (*ProductRepository)(nil)
var _ repository.Pinger = (*ProductRepository)(nil)
