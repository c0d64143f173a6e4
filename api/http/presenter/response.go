package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/validate"
)

// Envelope wraps every API response. Data and Error encode as null when unset.
type Envelope[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Message string  `json:"message"`
	Error   *string `json:"error"`
}

// ValidationResponse is the 422 body: the failure envelope plus one entry per violated constraint.
type ValidationResponse struct {
	Envelope[struct{}]
	Detail []validate.FieldError `json:"detail"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// OK answers 200 with data as payload.
func OK[T any](c *fiber.Ctx, data T, message string) error {
	return JSON(c, fiber.StatusOK, Envelope[T]{Success: true, Data: &data, Message: message})
}

// Empty answers 200 with a null payload.
func Empty(c *fiber.Ctx, message string) error {
	return JSON(c, fiber.StatusOK, Envelope[struct{}]{Success: true, Message: message})
}

// Error answers status with a failure envelope carrying errText.
func Error(c *fiber.Ctx, status int, message, errText string) error {
	return JSON(c, status, Envelope[struct{}]{Message: message, Error: &errText})
}

// Validation answers 422 listing every field error.
func Validation(c *fiber.Ctx, errs validate.Errors) error {
	text := errs.Error()
	return JSON(c, fiber.StatusUnprocessableEntity, ValidationResponse{
		Envelope: Envelope[struct{}]{Message: "Validation failed", Error: &text},
		Detail:   errs,
	})
}
