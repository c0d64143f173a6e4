package project

import (
	"context"
	"sort"
)

// UseCase covers the projects section.
type UseCase interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, p Project) (Project, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

// List returns active projects, newest first.
func (s *service) List(ctx context.Context) ([]Project, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Project, 0, len(items))
	for _, p := range items {
		if p.IsActive {
			res = append(res, normalize(p))
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *service) Get(ctx context.Context, id string) (Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Project{}, err
	}
	return normalize(p), nil
}

func (s *service) Create(ctx context.Context, p Project) (Project, error) {
	p.IsActive = true
	return s.repo.Create(ctx, normalize(p))
}

// normalize replaces nil lists so they encode as [] rather than null.
func normalize(p Project) Project {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Responsibilities == nil {
		p.Responsibilities = []string{}
	}
	return p
}
