package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/seed"
)

type SeedHandler struct {
	uc  seed.UseCase
	log *zap.Logger
}

func NewSeedHandler(uc seed.UseCase, log *zap.Logger) *SeedHandler {
	return &SeedHandler{uc: uc, log: log}
}

// Run seeds the demo dataset once.
// @Summary Seed demo data
// @Description Writes the demo portfolio, skills, projects and education unless a portfolio already exists.
// @Tags    seed
// @Produce json
// @Success 200 {object} presenter.Envelope[seed.Result]
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /seed-data [post]
func (h *SeedHandler) Run(c *fiber.Ctx) error {
	res, err := h.uc.Run(c.Context())
	if err != nil {
		return internalError(c, h.log, "Failed to seed database", err)
	}
	if res.AlreadySeeded {
		return presenter.Empty(c, "Database already seeded")
	}
	return presenter.OK(c, res, "Database seeded successfully")
}
