package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/store"
)

type ProjectsHandler struct {
	uc  project.UseCase
	log *zap.Logger
}

func NewProjectsHandler(uc project.UseCase, log *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{uc: uc, log: log}
}

type createProjectRequest struct {
	Title            string   `json:"title" validate:"required,notblank"`
	Description      string   `json:"description" validate:"required,notblank"`
	Duration         string   `json:"duration" validate:"required,notblank"`
	Technologies     []string `json:"technologies" validate:"required"`
	Features         []string `json:"features" validate:"required"`
	Responsibilities []string `json:"responsibilities"`
	LiveDemo         string   `json:"liveDemo" validate:"required,notblank"`
	GitHub           string   `json:"github" validate:"required,notblank"`
	Image            string   `json:"image" validate:"required,notblank"`
}

// List returns active projects, newest first.
// @Summary Active projects
// @Tags    projects
// @Produce json
// @Success 200 {object} presenter.Envelope[[]project.Project]
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /projects [get]
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, h.log, "Failed to retrieve projects", err)
	}
	return presenter.OK(c, items, "Projects retrieved successfully")
}

// Get returns one project by id.
// @Summary Project by id
// @Tags    projects
// @Produce json
// @Param   id path string true "project id"
// @Success 200 {object} presenter.Envelope[project.Project]
// @Failure 404 {object} presenter.Envelope[any]
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /projects/{id} [get]
func (h *ProjectsHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	p, err := h.uc.Get(c.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return presenter.Error(c, fiber.StatusNotFound, "Project not found", "invalid project id: "+id)
	case errors.Is(err, store.ErrNotFound):
		return presenter.Error(c, fiber.StatusNotFound, "Project not found", "no project with id "+id)
	case err != nil:
		return internalError(c, h.log, "Failed to retrieve project", err)
	}
	return presenter.OK(c, p, "Project retrieved successfully")
}

// Create adds a project; it is always created active.
// @Summary Create project
// @Tags    projects
// @Accept  json
// @Produce json
// @Param   input body createProjectRequest true "project"
// @Success 200 {object} presenter.Envelope[project.Project]
// @Failure 422 {object} presenter.ValidationResponse
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /projects [post]
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	var req createProjectRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	p, err := h.uc.Create(c.Context(), project.Project{
		Title:            req.Title,
		Description:      req.Description,
		Duration:         req.Duration,
		Technologies:     req.Technologies,
		Features:         req.Features,
		Responsibilities: req.Responsibilities,
		LiveDemo:         req.LiveDemo,
		GitHub:           req.GitHub,
		Image:            req.Image,
	})
	if err != nil {
		return internalError(c, h.log, "Failed to create project", err)
	}
	return presenter.OK(c, p, "Project created successfully")
}
