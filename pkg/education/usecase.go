package education

import (
	"context"
	"sort"
)

type UseCase interface {
	List(ctx context.Context) ([]Education, error)
	Create(ctx context.Context, e Education) (Education, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

// List returns entries sorted by Order, highest first.
func (s *service) List(ctx context.Context) ([]Education, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Education{}
	}
	SortByOrder(items)
	return items, nil
}

func (s *service) Create(ctx context.Context, e Education) (Education, error) {
	return s.repo.Create(ctx, e)
}

// SortByOrder sorts in place by Order descending, keeping the relative order of ties.
func SortByOrder(items []Education) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order > items[j].Order })
}
