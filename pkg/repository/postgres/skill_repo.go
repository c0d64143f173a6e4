package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
)

type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

func (r *SkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	out, err := r.CreateMany(ctx, []skill.Skill{s})
	if err != nil {
		return skill.Skill{}, err
	}
	return out[0], nil
}

func (r *SkillRepository) CreateMany(ctx context.Context, skills []skill.Skill) ([]skill.Skill, error) {
	ts := now()
	out := make([]skill.Skill, len(skills))
	rows := make([]docRow, len(skills))
	for i, s := range skills {
		id := uuid.New()
		s.ID = id.String()
		s.CreatedAt = ts
		out[i] = s
		rows[i] = docRow{id: id, doc: s, createdAt: ts}
	}
	if err := insertDocs(ctx, r.pool, "skills", false, rows); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	return queryDocs[skill.Skill](ctx, r.pool, `SELECT doc FROM skills ORDER BY seq`)
}
