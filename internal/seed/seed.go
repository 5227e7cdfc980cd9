package seed

import (
	"context"
	"fmt"

	"shopsmart/internal/catalog"
	"shopsmart/internal/domain"
)

type productWriter interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// Apply writes the built-in catalog in declaration order. It is idempotent:
// rows are keyed by category and name, so reruns keep existing ids.
func Apply(ctx context.Context, repo productWriter) (int, error) {
	products := catalog.Builtin()
	for i, p := range products {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return i, fmt.Errorf("upsert product %s/%s: %w", p.Category, p.Name, err)
		}
	}
	return len(products), nil
}
