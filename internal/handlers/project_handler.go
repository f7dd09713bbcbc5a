package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/service"
)

type createProjectReq struct {
	ClientID          string   `json:"clientId" validate:"required"`
	Title             string   `json:"title" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	Requirements      string   `json:"requirements" validate:"required"`
	AdditionalDetails string   `json:"additionalDetails"`
	Budget            string   `json:"budget"`
	Timeframe         string   `json:"timeframe"`
	Skills            []string `json:"skills"`
}

type deleteProjectsReq struct {
	IDs []string `json:"ids" validate:"required"`
}

type addSkillReq struct {
	Skill string `json:"skill" validate:"required"`
}

var projectPatchFields = map[string]string{
	"title":             "title",
	"description":       "description",
	"requirements":      "requirements",
	"additionalDetails": "additional_details",
	"budget":            "budget",
	"timeframe":         "timeframe",
	"status":            "status",
	"skills":            "skills",
}

func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var req createProjectReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	p, err := h.projects.Create(c.Context(), service.CreateProjectInput{
		ClientID:          req.ClientID,
		Title:             req.Title,
		Description:       req.Description,
		Requirements:      req.Requirements,
		AdditionalDetails: req.AdditionalDetails,
		Budget:            req.Budget,
		Timeframe:         req.Timeframe,
		Skills:            req.Skills,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) ListProjects(c *fiber.Ctx) error {
	views, err := h.projects.List(c.Context(), models.ProjectStatus(c.Query("status")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(views)
}

func (h *Handler) GetProject(c *fiber.Ctx) error {
	p, err := h.projects.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) ListClientProjects(c *fiber.Ctx) error {
	projects, err := h.projects.ListByClient(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(projects)
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	patch := bson.M{}
	for key, doc := range projectPatchFields {
		if v, ok := body[key]; ok {
			patch[doc] = v
		}
	}
	p, err := h.projects.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	p, err := h.projects.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// DeleteProjects bulk-deletes by ID set and reports the number removed.
func (h *Handler) DeleteProjects(c *fiber.Ctx) error {
	var req deleteProjectsReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	count, err := h.projects.DeleteMany(c.Context(), req.IDs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": count})
}

func (h *Handler) GetProjectSkills(c *fiber.Ctx) error {
	skills, err := h.projects.GetSkills(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(skills)
}

func (h *Handler) AddProjectSkill(c *fiber.Ctx) error {
	var req addSkillReq
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	p, err := h.projects.AddSkill(c.Context(), c.Params("id"), req.Skill)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}
