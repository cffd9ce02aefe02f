package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kordlan/harmonia_backend/internal/api/http/handler"
)

func (r *Router) registerProfileRoutes(api fiber.Router, h *handler.ProfileHandler) {
	profiles := api.Group("/profiles")
	profiles.Get("/me", h.GetMe)
	profiles.Patch("/me/:field", h.UpdateMyField)
	profiles.Get("/:id", h.GetByID)
}
