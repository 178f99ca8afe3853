package postgres

import (
	"context"

	"github.com/dkovalenko/product-catalog-service/internal/model"
	"github.com/dkovalenko/product-catalog-service/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct{ pool *pgxpool.Pool }

// NewProductRepository wires a Postgres-backed product store over the shared pool.
func NewProductRepository(pool *pgxpool.Pool) repository.ProductRepository {
	return &productRepository{pool: pool}
}

// List returns the whole catalog in insertion order (id ascending).
// Sorting and windowing happen in memory in the pagination layer, so the
// query stays a single ordered scan.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, price FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Product, 0, 16)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.Name, &p.Price); err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

func (r *productRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, price) VALUES ($1, $2)
		 RETURNING name, price`,
		p.Name, p.Price,
	)
	var out model.Product
	if err := row.Scan(&out.Name, &out.Price); err != nil {
		return model.Product{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.ProductRepository = (*productRepository)(nil)
