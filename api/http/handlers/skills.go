package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
)

type SkillsHandler struct {
	uc  skill.UseCase
	log *zap.Logger
}

func NewSkillsHandler(uc skill.UseCase, log *zap.Logger) *SkillsHandler {
	return &SkillsHandler{uc: uc, log: log}
}

type createSkillRequest struct {
	Category     string `json:"category" validate:"required,notblank"`
	Name         string `json:"name" validate:"required,notblank"`
	Level        *int   `json:"level" validate:"required,min=0,max=100"`
	CategoryType string `json:"categoryType" validate:"required,notblank"`
}

// List returns skills grouped into programming, frameworks, tools and soft.
// @Summary Skills grouped by category
// @Tags    skills
// @Produce json
// @Success 200 {object} presenter.Envelope[skill.Groups]
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /skills [get]
func (h *SkillsHandler) List(c *fiber.Ctx) error {
	groups, err := h.uc.Grouped(c.Context())
	if err != nil {
		return internalError(c, h.log, "Failed to retrieve skills", err)
	}
	return presenter.OK(c, groups, "Skills retrieved successfully")
}

// Create adds a skill.
// @Summary Create skill
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   input body createSkillRequest true "skill; level must be within 0..100"
// @Success 200 {object} presenter.Envelope[skill.Skill]
// @Failure 422 {object} presenter.ValidationResponse
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /skills [post]
func (h *SkillsHandler) Create(c *fiber.Ctx) error {
	var req createSkillRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	s, err := h.uc.Create(c.Context(), skill.Skill{
		Category:     req.Category,
		Name:         req.Name,
		Level:        *req.Level,
		CategoryType: req.CategoryType,
	})
	if err != nil {
		return internalError(c, h.log, "Failed to create skill", err)
	}
	return presenter.OK(c, s, "Skill created successfully")
}
