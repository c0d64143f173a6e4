package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/health"
)

// HealthHandler serves the API root plus liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	version string
}

func NewHealthHandler(svc health.ReadinessUseCase, version string) *HealthHandler {
	return &HealthHandler{svc: svc, version: version}
}

type apiInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type probeStatus struct {
	Status string `json:"status"`
}

// Root identifies the API.
// @Summary API info
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.Envelope[apiInfo]
// @Router  / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return presenter.OK(c, apiInfo{Name: "Space Portfolio API", Version: h.version}, "Space Portfolio API is running")
}

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.Envelope[probeStatus]
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.OK(c, probeStatus{Status: "ok"}, "Service is alive")
}

// Ready: readiness check with store ping.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.Envelope[probeStatus]
// @Failure 503 {object} presenter.Envelope[any]
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.Error(c, fiber.StatusServiceUnavailable, "Store is not ready", err.Error())
	}
	return presenter.OK(c, probeStatus{Status: "ready"}, "Service is ready")
}
