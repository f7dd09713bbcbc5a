package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
)

// updatable user fields, request key → document key.
var userPatchFields = map[string]string{
	"fullName":     "full_name",
	"company":      "company",
	"title":        "title",
	"bio":          "bio",
	"location":     "location",
	"profileImage": "profile_image",
	"isVerified":   "is_verified",
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context(), models.UserType(c.Query("type")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(users)
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	u, err := h.users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(u)
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	patch := bson.M{}
	for key, doc := range userPatchFields {
		if v, ok := body[key]; ok {
			patch[doc] = v
		}
	}
	u, err := h.users.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(u)
}
