package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/service"
)

type createContactReq struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Subject     string `json:"subject"`
	Message     string `json:"message" validate:"required"`
	InquiryType string `json:"inquiryType"`
}

func (h *Handler) CreateContactMessage(c *fiber.Ctx) error {
	var req createContactReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	msg, err := h.contacts.Create(c.Context(), service.CreateContactInput{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		InquiryType: req.InquiryType,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (h *Handler) ListContactMessages(c *fiber.Ctx) error {
	msgs, err := h.contacts.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(msgs)
}

func (h *Handler) MarkContactMessageRead(c *fiber.Ctx) error {
	msg, err := h.contacts.MarkRead(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(msg)
}
