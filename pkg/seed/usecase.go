package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/store"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/validate"
)

// Result reports what a seed run wrote. AlreadySeeded means nothing was written.
type Result struct {
	AlreadySeeded bool `json:"-"`
	Portfolio     int  `json:"portfolio"`
	Skills        int  `json:"skills"`
	Projects      int  `json:"projects"`
	Education     int  `json:"education"`
}

// UseCase populates an empty store with the demo dataset.
type UseCase interface {
	Run(ctx context.Context) (Result, error)
}

// Repositories are the collections written by a seed.
type Repositories struct {
	Portfolio profile.Repository
	Skills    skill.Repository
	Projects  project.Repository
	Education education.Repository
}

type service struct {
	repos Repositories
	data  Dataset
	log   *zap.Logger
}

func NewService(repos Repositories, data Dataset, log *zap.Logger) UseCase {
	return &service{repos: repos, data: data, log: log}
}

// Run is gated on the portfolio singleton: when a portfolio exists, or the
// store rejects a second one, nothing else is written. Batches after the
// portfolio are not rolled back if a later one fails.
func (s *service) Run(ctx context.Context) (Result, error) {
	existing, err := s.repos.Portfolio.Get(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("check portfolio: %w", err)
	}
	if existing != nil {
		s.log.Info("seed skipped, portfolio already present", zap.String("portfolio_id", existing.ID))
		return Result{AlreadySeeded: true}, nil
	}
	if err := validate.Struct(s.data.Portfolio); err != nil {
		return Result{}, fmt.Errorf("invalid seed portfolio: %w", err)
	}

	p, err := s.repos.Portfolio.Create(ctx, s.data.Portfolio)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			s.log.Info("seed skipped, portfolio created concurrently")
			return Result{AlreadySeeded: true}, nil
		}
		return Result{}, fmt.Errorf("insert portfolio: %w", err)
	}
	res := Result{Portfolio: 1}

	skills := make([]skill.Skill, len(s.data.Skills))
	for i, sk := range s.data.Skills {
		sk.Level = skill.ClampLevel(sk.Level)
		skills[i] = sk
	}
	created, err := s.repos.Skills.CreateMany(ctx, skills)
	if err != nil {
		return Result{}, fmt.Errorf("insert skills: %w", err)
	}
	res.Skills = len(created)

	projects := make([]project.Project, len(s.data.Projects))
	for i, pr := range s.data.Projects {
		pr.IsActive = true
		if pr.Responsibilities == nil {
			pr.Responsibilities = []string{}
		}
		projects[i] = pr
	}
	createdProjects, err := s.repos.Projects.CreateMany(ctx, projects)
	if err != nil {
		return Result{}, fmt.Errorf("insert projects: %w", err)
	}
	res.Projects = len(createdProjects)

	createdEdu, err := s.repos.Education.CreateMany(ctx, s.data.Education)
	if err != nil {
		return Result{}, fmt.Errorf("insert education: %w", err)
	}
	res.Education = len(createdEdu)

	s.log.Info("database seeded",
		zap.String("portfolio_id", p.ID),
		zap.Int("skills", res.Skills),
		zap.Int("projects", res.Projects),
		zap.Int("education", res.Education))
	return res, nil
}
