package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/handlers"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/middleware"
)

// Register wires the HTTP surface onto the fiber app.
func Register(app *fiber.App, h *handlers.Handler, jwtProtected fiber.Handler, limiter *middleware.RateLimiter) {
	api := app.Group("/api")

	authGroup := api.Group("/auth", limiter.ByIP())
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)

	api.Get("/users", h.ListUsers)
	api.Get("/users/:id", h.GetUser)
	api.Patch("/users/:id", jwtProtected, h.UpdateUser)

	api.Get("/projects", h.ListProjects)
	api.Post("/projects", jwtProtected, h.CreateProject)
	api.Post("/projects/delete-batch", jwtProtected, middleware.AdminOnly(), h.DeleteProjects)
	api.Get("/projects/:id", h.GetProject)
	api.Patch("/projects/:id", jwtProtected, h.UpdateProject)
	api.Delete("/projects/:id", jwtProtected, h.DeleteProject)
	api.Get("/projects/:id/skills", h.GetProjectSkills)
	api.Post("/projects/:id/skills", jwtProtected, h.AddProjectSkill)
	api.Get("/projects/:id/applications", jwtProtected, h.ListProjectApplications)
	api.Get("/clients/:id/projects", h.ListClientProjects)

	api.Get("/testimonials", h.ListTestimonials)
	api.Post("/reviews", jwtProtected, h.CreateReview)
	api.Patch("/reviews/:id/feature", jwtProtected, middleware.AdminOnly(), h.FeatureReview)
	api.Get("/hackers/:id/reviews", h.ListHackerReviews)
	api.Get("/hackers/:id/applications", jwtProtected, h.ListHackerApplications)

	api.Post("/applications", jwtProtected, h.CreateApplication)
	api.Patch("/applications/:id/status", jwtProtected, h.UpdateApplicationStatus)

	api.Post("/contact", limiter.ByIP(), h.CreateContactMessage)
	api.Get("/contact", jwtProtected, middleware.AdminOnly(), h.ListContactMessages)
	api.Patch("/contact/:id/read", jwtProtected, middleware.AdminOnly(), h.MarkContactMessageRead)
}
