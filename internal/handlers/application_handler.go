package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/service"
)

type createApplicationReq struct {
	ProjectID     string `json:"projectId" validate:"required"`
	HackerID      string `json:"hackerId" validate:"required"`
	Proposal      string `json:"proposal" validate:"required"`
	EstimatedTime string `json:"estimatedTime"`
	PriceQuote    string `json:"priceQuote"`
}

type updateApplicationStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

func (h *Handler) CreateApplication(c *fiber.Ctx) error {
	var req createApplicationReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	app, err := h.applications.Create(c.Context(), service.CreateApplicationInput{
		ProjectID:     req.ProjectID,
		HackerID:      req.HackerID,
		Proposal:      req.Proposal,
		EstimatedTime: req.EstimatedTime,
		PriceQuote:    req.PriceQuote,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *Handler) ListProjectApplications(c *fiber.Ctx) error {
	apps, err := h.applications.ListByProject(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(apps)
}

func (h *Handler) ListHackerApplications(c *fiber.Ctx) error {
	apps, err := h.applications.ListByHacker(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(apps)
}

func (h *Handler) UpdateApplicationStatus(c *fiber.Ctx) error {
	var req updateApplicationStatusReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	app, err := h.applications.UpdateStatus(c.Context(), c.Params("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(app)
}
