package catalog

import (
	"context"
	"fmt"
	"io"
	"log"

	"shopsmart/internal/catalog"
	"shopsmart/internal/domain"
)

type productLister interface {
	List(ctx context.Context) ([]domain.Product, error)
}

// Service answers catalog queries over a product set fixed at construction.
type Service struct {
	products []domain.Product
	byID     map[string]domain.Product
}

func New(products []domain.Product) *Service {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Service{products: products, byID: byID}
}

// Load reads the catalog from repo, falling back to the built-in catalog when
// repo is nil or holds no products.
func Load(ctx context.Context, repo productLister, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if repo == nil {
		logger.Printf("catalog: no database configured, using built-in catalog")
		return New(catalog.Builtin()), nil
	}
	products, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(products) == 0 {
		logger.Printf("catalog: database catalog is empty, using built-in catalog")
		return New(catalog.Builtin()), nil
	}
	logger.Printf("catalog: loaded %d products from database", len(products))
	return New(products), nil
}

func (s *Service) List(query, category string) []domain.Product {
	return catalog.Filter(s.products, query, category)
}

func (s *Service) Groups(query, category string) []catalog.Group {
	return catalog.GroupBy(s.List(query, category))
}

func (s *Service) Categories() []string {
	return catalog.Categories(s.products)
}

func (s *Service) Get(id string) (domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}
