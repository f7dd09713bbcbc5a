package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/auth"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/service"
)

var validate = validator.New()

// Handler bundles the entity services behind the HTTP surface.
type Handler struct {
	users        *service.UserService
	projects     *service.ProjectService
	reviews      *service.ReviewService
	applications *service.ApplicationService
	contacts     *service.ContactService
	tokens       *auth.Manager
	log          *zap.Logger
}

func NewHandler(
	users *service.UserService,
	projects *service.ProjectService,
	reviews *service.ReviewService,
	applications *service.ApplicationService,
	contacts *service.ContactService,
	tokens *auth.Manager,
	log *zap.Logger,
) *Handler {
	return &Handler{
		users:        users,
		projects:     projects,
		reviews:      reviews,
		applications: applications,
		contacts:     contacts,
		tokens:       tokens,
		log:          log,
	}
}

// parseBody decodes and validates a request body.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return errors.New("invalid body")
	}
	if err := validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return fmt.Errorf("%s failed validation (%s)", fe.Field(), fe.Tag())
		}
		return errors.New("invalid body")
	}
	return nil
}

// fail maps service/repository errors to HTTP status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, repository.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid identifier"})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "already exists"})
	}
	h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
