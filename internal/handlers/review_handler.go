package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/service"
)

type createReviewReq struct {
	ProjectID string `json:"projectId" validate:"required"`
	ClientID  string `json:"clientId" validate:"required"`
	HackerID  string `json:"hackerId" validate:"required"`
	Rating    int    `json:"rating" validate:"required"`
	Comment   string `json:"comment"`
}

type featureReviewReq struct {
	Featured bool `json:"featured"`
}

func (h *Handler) CreateReview(c *fiber.Ctx) error {
	var req createReviewReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	rev, err := h.reviews.Create(c.Context(), service.CreateReviewInput{
		ProjectID: req.ProjectID,
		ClientID:  req.ClientID,
		HackerID:  req.HackerID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rev)
}

func (h *Handler) ListHackerReviews(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListByHacker(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(reviews)
}

func (h *Handler) ListTestimonials(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListTestimonials(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(reviews)
}

func (h *Handler) FeatureReview(c *fiber.Ctx) error {
	var req featureReviewReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	rev, err := h.reviews.SetFeatured(c.Context(), c.Params("id"), req.Featured)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rev)
}
