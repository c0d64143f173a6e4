package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
)

type PortfolioHandler struct {
	uc  profile.UseCase
	log *zap.Logger
}

func NewPortfolioHandler(uc profile.UseCase, log *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{uc: uc, log: log}
}

// Get returns the portfolio singleton.
// @Summary Portfolio
// @Description Returns the owner's personal info. data is null until the store is seeded.
// @Tags    portfolio
// @Produce json
// @Success 200 {object} presenter.Envelope[profile.Portfolio]
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /portfolio [get]
func (h *PortfolioHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.Context())
	if err != nil {
		return internalError(c, h.log, "Failed to retrieve portfolio", err)
	}
	if p == nil {
		return presenter.Empty(c, "No portfolio data found")
	}
	return presenter.OK(c, *p, "Portfolio retrieved successfully")
}
