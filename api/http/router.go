package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/handlers"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/middleware"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Health    *handlers.HealthHandler
	Portfolio *handlers.PortfolioHandler
	Skills    *handlers.SkillsHandler
	Projects  *handlers.ProjectsHandler
	Education *handlers.EducationHandler
	Contact   *handlers.ContactHandler
	Seed      *handlers.SeedHandler
}

// NewApp builds the Fiber app with the shared middleware stack. Every error
// that escapes a handler, including unknown routes and panics, is rendered as
// a failure envelope.
func NewApp(log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Space Portfolio API",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})
	app.Use(
		requestid.New(),
		middleware.RequestLogger(log),
		recover.New(),
		cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
		}),
	)
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers) {
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/", h.Health.Root)
	api.Get("/health", h.Health.Health)
	api.Get("/ready", h.Health.Ready)

	api.Get("/portfolio", h.Portfolio.Get)

	api.Get("/skills", h.Skills.List)
	api.Post("/skills", h.Skills.Create)

	api.Get("/projects", h.Projects.List)
	api.Post("/projects", h.Projects.Create)
	api.Get("/projects/:id", h.Projects.Get)

	api.Get("/education", h.Education.List)
	api.Post("/education", h.Education.Create)

	api.Post("/contact", h.Contact.Create)
	api.Get("/contact", h.Contact.List)

	api.Post("/seed-data", h.Seed.Run)
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		message := utils.StatusMessage(code)
		if code == fiber.StatusNotFound {
			message = "Route not found"
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error",
				zap.Error(err),
				zap.String("method", utils.CopyString(c.Method())),
				zap.String("path", utils.CopyString(c.Path())))
		}
		return presenter.Error(c, code, message, err.Error())
	}
}
