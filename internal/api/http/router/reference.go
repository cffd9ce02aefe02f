package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kordlan/harmonia_backend/internal/api/http/handler"
)

func (r *Router) registerReferenceRoutes(api fiber.Router, h *handler.ReferenceHandler) {
	api.Get("/reference", h.Get)
}
