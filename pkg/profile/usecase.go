package profile

import "context"

// UseCase exposes the read side of the portfolio singleton.
type UseCase interface {
	Get(ctx context.Context) (*Portfolio, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Get(ctx context.Context) (*Portfolio, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil && p.PersonalInfo.Interests == nil {
		p.PersonalInfo.Interests = []string{}
	}
	return p, nil
}
