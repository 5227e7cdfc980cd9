package product

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"shopsmart/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id::text, name, icon, COALESCE(description, ''), category
FROM catalog_products
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Icon, &p.Description, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

// Upsert inserts p or updates the row with the same category and name. The
// stored ID wins over p.ID on update, so identities stay stable across
// re-imports.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO catalog_products (id, name, icon, description, category)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, NULLIF($4, ''), $5)
ON CONFLICT (category, name) DO UPDATE SET
    icon = EXCLUDED.icon,
    description = EXCLUDED.description
RETURNING id::text
`
	res := p
	err := r.pool.QueryRow(ctx, q, p.ID, p.Name, p.Icon, p.Description, p.Category).Scan(&res.ID)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%s category=%s error=%v", p.Name, p.Category, err)
		return nil, fmt.Errorf("upsert product %s/%s: %w", p.Category, p.Name, err)
	}
	res.Custom = false
	r.logger.Printf("product repo: upserted name=%s category=%s id=%s", res.Name, res.Category, res.ID)
	return &res, nil
}
