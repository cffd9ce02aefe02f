package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kordlan/harmonia_backend/internal/api/http/handler"
)

func (r *Router) registerSearchRoutes(api fiber.Router, h *handler.SearchHandler) {
	// limiter first: route handlers run in registration order
	api.Get("/search", r.searchLimiter(), h.Search)
}
