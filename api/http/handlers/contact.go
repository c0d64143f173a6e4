package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/presenter"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/contact"
)

type ContactHandler struct {
	uc  contact.UseCase
	log *zap.Logger
}

func NewContactHandler(uc contact.UseCase, log *zap.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, log: log}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,notblank"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,notblank"`
	Message string `json:"message" validate:"required,notblank"`
}

// Create stores a contact-form message.
// @Summary Submit contact message
// @Tags    contact
// @Accept  json
// @Produce json
// @Param   input body contactRequest true "message"
// @Success 200 {object} presenter.Envelope[contact.Message]
// @Failure 422 {object} presenter.ValidationResponse
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /contact [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req contactRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	m, err := h.uc.Submit(c.Context(), contact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return internalError(c, h.log, "Failed to send message", err)
	}
	return presenter.OK(c, m, "Message sent successfully")
}

// List returns all messages, newest first.
// @Summary Contact messages
// @Tags    contact
// @Produce json
// @Success 200 {object} presenter.Envelope[[]contact.Message]
// @Failure 500 {object} presenter.Envelope[any]
// @Router  /contact [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, h.log, "Failed to retrieve contact messages", err)
	}
	return presenter.OK(c, items, "Contact messages retrieved successfully")
}
