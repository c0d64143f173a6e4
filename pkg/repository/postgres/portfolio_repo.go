package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/store"
)

// PortfolioRepository stores the portfolio singleton; the unique index
// portfolio_singleton rejects a second row.
type PortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

func (r *PortfolioRepository) Get(ctx context.Context) (*profile.Portfolio, error) {
	p, err := queryDoc[profile.Portfolio](ctx, r.pool, `SELECT doc FROM portfolio ORDER BY seq LIMIT 1`)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PortfolioRepository) Create(ctx context.Context, p profile.Portfolio) (profile.Portfolio, error) {
	id := uuid.New()
	ts := now()
	p.ID = id.String()
	p.CreatedAt, p.UpdatedAt = ts, ts
	if err := insertDocs(ctx, r.pool, "portfolio", true, []docRow{{id: id, doc: p, createdAt: ts, updatedAt: ts}}); err != nil {
		return profile.Portfolio{}, err
	}
	return p, nil
}
