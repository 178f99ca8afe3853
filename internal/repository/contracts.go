package repository

import (
	"context"

	"github.com/dkovalenko/product-catalog-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProductRepository declares persistence operations for catalog products.
// List returns the full collection in insertion order; pagination happens in
// a higher layer over that snapshot, so concurrent readers never coordinate.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
}
