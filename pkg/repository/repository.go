// Package repository opens the configured document store and exposes its
// collections as the domain repository ports.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/config"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/contact"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/health"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/health/checkers"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/repository/memory"
	mongorepo "github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/repository/mongodb"
	pgrepo "github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/repository/postgres"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/storage/mongodb"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/storage/postgres"
)

// Set bundles the repositories of one store connection.
type Set struct {
	Portfolio profile.Repository
	Skills    skill.Repository
	Projects  project.Repository
	Education education.Repository
	Contact   contact.Repository
	// Checkers report store reachability for the readiness probe.
	Checkers []health.Checker

	close func(ctx context.Context) error
}

// Close releases the underlying connection. It is safe to call on a memory set.
func (s *Set) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store selected by cfg.StoreDriver and prepares its schema.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (*Set, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on shutdown")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg config.Config, log *zap.Logger) (*Set, error) {
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.StoreMaxConns)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool, log); err != nil {
		pool.Close()
		return nil, err
	}
	return &Set{
		Portfolio: pgrepo.NewPortfolioRepository(pool),
		Skills:    pgrepo.NewSkillRepository(pool),
		Projects:  pgrepo.NewProjectRepository(pool),
		Education: pgrepo.NewEducationRepository(pool),
		Contact:   pgrepo.NewContactRepository(pool),
		Checkers:  []health.Checker{checkers.NewPostgresChecker(pool)},
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}

func openMongo(ctx context.Context, cfg config.Config) (*Set, error) {
	client, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.StoreMaxConns)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.DBName)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &Set{
		Portfolio: mongorepo.NewPortfolioRepository(db),
		Skills:    mongorepo.NewSkillRepository(db),
		Projects:  mongorepo.NewProjectRepository(db),
		Education: mongorepo.NewEducationRepository(db),
		Contact:   mongorepo.NewContactRepository(db),
		Checkers:  []health.Checker{checkers.NewMongoChecker(client)},
		close:     client.Disconnect,
	}, nil
}

// NewMemory returns a set backed by fresh in-memory collections.
func NewMemory() *Set {
	return &Set{
		Portfolio: memory.NewPortfolioRepository(),
		Skills:    memory.NewSkillRepository(),
		Projects:  memory.NewProjectRepository(),
		Education: memory.NewEducationRepository(),
		Contact:   memory.NewContactRepository(),
	}
}
