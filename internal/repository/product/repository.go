package product

import (
	"context"

	"shopsmart/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
