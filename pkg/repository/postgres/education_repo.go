package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
)

type EducationRepository struct {
	pool *pgxpool.Pool
}

func NewEducationRepository(pool *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{pool: pool}
}

func (r *EducationRepository) Create(ctx context.Context, e education.Education) (education.Education, error) {
	out, err := r.CreateMany(ctx, []education.Education{e})
	if err != nil {
		return education.Education{}, err
	}
	return out[0], nil
}

func (r *EducationRepository) CreateMany(ctx context.Context, items []education.Education) ([]education.Education, error) {
	ts := now()
	out := make([]education.Education, len(items))
	rows := make([]docRow, len(items))
	for i, e := range items {
		id := uuid.New()
		e.ID = id.String()
		e.CreatedAt = ts
		out[i] = e
		rows[i] = docRow{id: id, doc: e, createdAt: ts}
	}
	if err := insertDocs(ctx, r.pool, "education", false, rows); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EducationRepository) List(ctx context.Context) ([]education.Education, error) {
	return queryDocs[education.Education](ctx, r.pool, `
SELECT doc FROM education
ORDER BY COALESCE((doc->>'order')::int, 0) DESC, seq
`)
}
