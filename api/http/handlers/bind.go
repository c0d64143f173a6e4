package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/validate"
)

// bind decodes the JSON body into out and checks its validate tags. A false
// return means a 422 response has already been written (or failed to write,
// in which case err is set).
func bind(c *fiber.Ctx, out any) (ok bool, err error) {
	if perr := c.BodyParser(out); perr != nil {
		return false, presenter.Validation(c, bodyErrors(perr))
	}
	if verr := validate.Struct(out); verr != nil {
		var errs validate.Errors
		if errors.As(verr, &errs) {
			return false, presenter.Validation(c, errs)
		}
		return false, verr
	}
	return true, nil
}

// bodyErrors turns a decoding failure into field errors.
func bodyErrors(err error) validate.Errors {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return validate.Errors{{
			Field:      field,
			Constraint: "type",
			Message:    fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}}
	case errors.As(err, &syntaxErr):
		return validate.Errors{{
			Field:      "body",
			Constraint: "json",
			Message:    fmt.Sprintf("invalid JSON at offset %d: %v", syntaxErr.Offset, syntaxErr),
		}}
	case errors.Is(err, fiber.ErrUnprocessableEntity):
		return validate.Errors{{Field: "body", Constraint: "json", Message: "request body must be JSON (Content-Type: application/json)"}}
	default:
		return validate.Errors{{Field: "body", Constraint: "json", Message: err.Error()}}
	}
}

// internalError logs err and answers 500 with its text.
func internalError(c *fiber.Ctx, log *zap.Logger, message string, err error) error {
	log.Error(message,
		zap.Error(err),
		zap.String("method", utils.CopyString(c.Method())),
		zap.String("path", utils.CopyString(c.Path())))
	return presenter.Error(c, fiber.StatusInternalServerError, message, err.Error())
}
