package service

import (
	"context"
	"strings"
	"time"

	"github.com/dkovalenko/product-catalog-service/internal/model"
	"github.com/dkovalenko/product-catalog-service/internal/pagination"
	"github.com/dkovalenko/product-catalog-service/internal/repository"
	"github.com/rs/zerolog"
)

// productService holds catalog use-case logic: validation + orchestration,
// no transport / storage details.
type productService struct {
	repo repository.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	l := logger.With().Str("module", "service").Str("component", "product").Logger()
	return &productService{repo: repo, log: l}
}

// ListProducts validates the window, snapshots the catalog and builds the
// page envelope. The whole path is a pure read: no shared state is touched,
// so concurrent requests need no coordination.
func (s *productService) ListProducts(ctx context.Context, req pagination.Request) (pagination.Page[model.Product], error) {
	req = normalizeListRequest(req)
	if err := newInvalidInput(validateListRequest(req)); err != nil {
		s.log.Debug().Int("page", req.Number).Int("size", req.Size).Msg("list request validation failed")
		return pagination.Page[model.Product]{}, err
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list products failed")
		return pagination.Page[model.Product]{}, err
	}

	page, err := pagination.Paginate(items, req, productSortFields)
	if err != nil {
		// Validation above should have caught anything the builder rejects.
		s.log.Error().Err(err).Msg("pagination rejected a validated request")
		return pagination.Page[model.Product]{}, err
	}
	return page, nil
}

func (s *productService) CreateProduct(ctx context.Context, name string, price float64) (model.Product, error) {
	start := time.Now()
	name = strings.TrimSpace(name)

	ferrs := validateProductName(name)
	if price < 0 {
		ferrs = append(ferrs, FieldError{Field: "price", Message: "must be >= 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("product validation failed")
		return model.Product{}, err
	}

	out, err := s.repo.Create(ctx, model.Product{Name: name, Price: price})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("name", name).Msg("create product failed")
		return model.Product{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("name", out.Name).Msg("product created")
	return out, nil
}
