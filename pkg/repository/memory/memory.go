// Package memory keeps every collection in process memory. It backs the
// "memory" store driver for local runs and the handler tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/contact"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/store"
)

// collection is an append-only list of documents.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

func (c *collection[T]) add(items ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, items...)
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Len reports how many documents are stored.
func (c *collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// now is replaceable so tests can control creation order.
var now = func() time.Time { return time.Now().UTC() }

func newID() string { return uuid.NewString() }

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

// PortfolioRepository implements profile.Repository.
type PortfolioRepository struct {
	mu  sync.Mutex
	doc *profile.Portfolio
}

func NewPortfolioRepository() *PortfolioRepository { return &PortfolioRepository{} }

func (r *PortfolioRepository) Get(_ context.Context) (*profile.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		return nil, nil
	}
	p := *r.doc
	p.PersonalInfo.Interests = slices.Clone(p.PersonalInfo.Interests)
	return &p, nil
}

func (r *PortfolioRepository) Create(_ context.Context, p profile.Portfolio) (profile.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc != nil {
		return profile.Portfolio{}, store.ErrAlreadyExists
	}
	ts := now()
	p.ID = newID()
	p.CreatedAt, p.UpdatedAt = ts, ts
	stored := p
	r.doc = &stored
	return p, nil
}

// Len reports 1 when the portfolio exists.
func (r *PortfolioRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		return 0
	}
	return 1
}

// SkillRepository implements skill.Repository.
type SkillRepository struct{ collection[skill.Skill] }

func NewSkillRepository() *SkillRepository { return &SkillRepository{} }

func (r *SkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	out, err := r.CreateMany(ctx, []skill.Skill{s})
	if err != nil {
		return skill.Skill{}, err
	}
	return out[0], nil
}

func (r *SkillRepository) CreateMany(_ context.Context, skills []skill.Skill) ([]skill.Skill, error) {
	ts := now()
	out := make([]skill.Skill, len(skills))
	for i, s := range skills {
		s.ID = newID()
		s.CreatedAt = ts
		out[i] = s
	}
	r.add(out...)
	return out, nil
}

func (r *SkillRepository) List(_ context.Context) ([]skill.Skill, error) {
	return r.all(), nil
}

// ProjectRepository implements project.Repository.
type ProjectRepository struct{ collection[project.Project] }

func NewProjectRepository() *ProjectRepository { return &ProjectRepository{} }

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	out, err := r.CreateMany(ctx, []project.Project{p})
	if err != nil {
		return project.Project{}, err
	}
	return out[0], nil
}

func (r *ProjectRepository) CreateMany(_ context.Context, projects []project.Project) ([]project.Project, error) {
	ts := now()
	out := make([]project.Project, len(projects))
	for i, p := range projects {
		p.ID = newID()
		p.CreatedAt, p.UpdatedAt = ts, ts
		out[i] = p
	}
	r.add(out...)
	return out, nil
}

func (r *ProjectRepository) ListActive(_ context.Context) ([]project.Project, error) {
	res := []project.Project{}
	for _, p := range r.all() {
		if p.IsActive {
			res = append(res, p)
		}
	}
	return res, nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id string) (project.Project, error) {
	if err := parseID(id); err != nil {
		return project.Project{}, err
	}
	for _, p := range r.all() {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, store.ErrNotFound
}

// EducationRepository implements education.Repository.
type EducationRepository struct{ collection[education.Education] }

func NewEducationRepository() *EducationRepository { return &EducationRepository{} }

func (r *EducationRepository) Create(ctx context.Context, e education.Education) (education.Education, error) {
	out, err := r.CreateMany(ctx, []education.Education{e})
	if err != nil {
		return education.Education{}, err
	}
	return out[0], nil
}

func (r *EducationRepository) CreateMany(_ context.Context, items []education.Education) ([]education.Education, error) {
	ts := now()
	out := make([]education.Education, len(items))
	for i, e := range items {
		e.ID = newID()
		e.CreatedAt = ts
		out[i] = e
	}
	r.add(out...)
	return out, nil
}

func (r *EducationRepository) List(_ context.Context) ([]education.Education, error) {
	return r.all(), nil
}

// ContactRepository implements contact.Repository.
type ContactRepository struct{ collection[contact.Message] }

func NewContactRepository() *ContactRepository { return &ContactRepository{} }

func (r *ContactRepository) Create(_ context.Context, m contact.Message) (contact.Message, error) {
	m.ID = newID()
	m.CreatedAt = now()
	r.add(m)
	return m, nil
}

func (r *ContactRepository) List(_ context.Context) ([]contact.Message, error) {
	return r.all(), nil
}
