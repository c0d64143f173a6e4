package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/store"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	out, err := r.CreateMany(ctx, []project.Project{p})
	if err != nil {
		return project.Project{}, err
	}
	return out[0], nil
}

func (r *ProjectRepository) CreateMany(ctx context.Context, projects []project.Project) ([]project.Project, error) {
	ts := now()
	out := make([]project.Project, len(projects))
	rows := make([]docRow, len(projects))
	for i, p := range projects {
		id := uuid.New()
		p.ID = id.String()
		p.CreatedAt, p.UpdatedAt = ts, ts
		out[i] = p
		rows[i] = docRow{id: id, doc: p, createdAt: ts, updatedAt: ts}
	}
	if err := insertDocs(ctx, r.pool, "projects", true, rows); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepository) ListActive(ctx context.Context) ([]project.Project, error) {
	return queryDocs[project.Project](ctx, r.pool, `
SELECT doc FROM projects
WHERE (doc->>'isActive')::boolean
ORDER BY created_at DESC, seq
`)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return project.Project{}, store.ErrInvalidID
	}
	return queryDoc[project.Project](ctx, r.pool, `SELECT doc FROM projects WHERE id = $1`, uid)
}
