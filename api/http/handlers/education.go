package handlers

import (
	"encoding/json"
	"reflect"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
)

type EducationHandler struct {
	uc  education.UseCase
	log *zap.Logger
}

func NewEducationHandler(uc education.UseCase, log *zap.Logger) *EducationHandler {
	return &EducationHandler{uc: uc, log: log}
}

type createEducationRequest struct {
	Degree      string `json:"degree" validate:"required,notblank"`
	Institution string `json:"institution" validate:"required,notblank"`
	Board       string `json:"board" validate:"required,notblank"`
	Stream      string `json:"stream" validate:"required,notblank"`
	Performance string `json:"performance" validate:"required,notblank"`
	Year        string `json:"year" validate:"required,notblank"`
	Description string `json:"description"`
	Order       order  `json:"order"`
}

// order defaults to 0 when absent; an explicit null is a type error. The
// decoder fills in the field name of a returned UnmarshalTypeError.
type order int

func (o *order) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeFor[int]()}
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*o = order(n)
	return nil
}

// List returns the education timeline, highest order first.
// @Summary Education records
// @Tags    education
// @Produce json
// @Success 200 {object} presenter.Envelope[[]education.Education]
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /education [get]
func (h *EducationHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, h.log, "Failed to retrieve education", err)
	}
	return presenter.OK(c, items, "Education retrieved successfully")
}

// Create adds an education record; order defaults to 0.
// @Summary Create education record
// @Tags    education
// @Accept  json
// @Produce json
// @Param   input body createEducationRequest true "education record"
// @Success 200 {object} presenter.Envelope[education.Education]
// @Failure 422 {object} presenter.ValidationResponse
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /education [post]
func (h *EducationHandler) Create(c *fiber.Ctx) error {
	var req createEducationRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	e := education.Education{
		Degree:      req.Degree,
		Institution: req.Institution,
		Board:       req.Board,
		Stream:      req.Stream,
		Performance: req.Performance,
		Year:        req.Year,
		Description: req.Description,
		Order:       int(req.Order),
	}
	created, err := h.uc.Create(c.Context(), e)
	if err != nil {
		return internalError(c, h.log, "Failed to create education record", err)
	}
	return presenter.OK(c, created, "Education record created successfully")
}
