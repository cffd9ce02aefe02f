package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kordlan/harmonia_backend/internal/service/reference"
)

type ReferenceHandler struct {
	svc reference.Service
}

func NewReferenceHandler(svc reference.Service) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

// GET /api/v1/reference
func (h *ReferenceHandler) Get(c fiber.Ctx) error {
	ref := h.svc.Reference(c.Context())
	return c.JSON(fiber.Map{
		"genres":      ref.Genres,
		"instruments": ref.Instruments,
		"source":      ref.Source,
	})
}
