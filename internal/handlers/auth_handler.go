package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
)

type registerReq struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	UserType string `json:"userType" validate:"omitempty,oneof=client hacker"`
	FullName string `json:"fullName" validate:"required"`
	Company  string `json:"company"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account. Passwords are hashed here so the storage
// layer persists documents as given.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return h.fail(c, err)
	}

	u, err := h.users.Create(c.Context(), &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		UserType: models.UserType(req.UserType),
		FullName: req.FullName,
		Company:  req.Company,
		Title:    req.Title,
		Bio:      req.Bio,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "username or email already taken"})
		}
		return h.fail(c, err)
	}

	token, err := h.tokens.Generate(u.ID.Hex(), u.UserType)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": u, "token": token})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	u, err := h.users.GetByUsername(c.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}
		return h.fail(c, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := h.tokens.Generate(u.ID.Hex(), u.UserType)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"user": u, "token": token})
}
