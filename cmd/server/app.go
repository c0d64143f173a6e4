package main

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apphttp "github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/handlers"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/contact"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/health"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/repository"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/seed"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
)

// newApp wires use cases and handlers over the repositories in set.
func newApp(set *repository.Set, log *zap.Logger) *fiber.App {
	app := apphttp.NewApp(log)
	apphttp.Register(app, apphttp.Handlers{
		Health:    handlers.NewHealthHandler(health.NewService(set.Checkers...), version),
		Portfolio: handlers.NewPortfolioHandler(profile.NewService(set.Portfolio), log),
		Skills:    handlers.NewSkillsHandler(skill.NewService(set.Skills), log),
		Projects:  handlers.NewProjectsHandler(project.NewService(set.Projects), log),
		Education: handlers.NewEducationHandler(education.NewService(set.Education), log),
		Contact:   handlers.NewContactHandler(contact.NewService(set.Contact), log),
		Seed:      handlers.NewSeedHandler(seed.NewService(seedRepositories(set), seed.DefaultDataset(), log), log),
	})
	return app
}

func seedRepositories(set *repository.Set) seed.Repositories {
	return seed.Repositories{
		Portfolio: set.Portfolio,
		Skills:    set.Skills,
		Projects:  set.Projects,
		Education: set.Education,
	}
}
