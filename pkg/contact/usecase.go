package contact

import (
	"context"
	"sort"
)

type UseCase interface {
	Submit(ctx context.Context, m Message) (Message, error)
	List(ctx context.Context) ([]Message, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

// Submit stores a new message; the status always starts as StatusNew.
func (s *service) Submit(ctx context.Context, m Message) (Message, error) {
	m.Status = StatusNew
	return s.repo.Create(ctx, m)
}

// List returns messages newest first.
func (s *service) List(ctx context.Context) ([]Message, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Message{}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}
