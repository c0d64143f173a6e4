package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/contact"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, m contact.Message) (contact.Message, error) {
	id := uuid.New()
	m.ID = id.String()
	m.CreatedAt = now()
	if err := insertDocs(ctx, r.pool, "contact", false, []docRow{{id: id, doc: m, createdAt: m.CreatedAt}}); err != nil {
		return contact.Message{}, err
	}
	return m, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]contact.Message, error) {
	return queryDocs[contact.Message](ctx, r.pool, `SELECT doc FROM contact ORDER BY created_at DESC, seq`)
}
