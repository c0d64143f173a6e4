package skill

import (
	"context"
	"strings"
)

// UseCase covers the skills section.
type UseCase interface {
	Grouped(ctx context.Context) (Groups, error)
	Create(ctx context.Context, s Skill) (Skill, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Grouped(ctx context.Context) (Groups, error) {
	skills, err := s.repo.List(ctx)
	if err != nil {
		return Groups{}, err
	}
	return Group(skills), nil
}

func (s *service) Create(ctx context.Context, sk Skill) (Skill, error) {
	sk.Category = strings.TrimSpace(sk.Category)
	sk.Name = strings.TrimSpace(sk.Name)
	sk.Level = ClampLevel(sk.Level)
	return s.repo.Create(ctx, sk)
}
