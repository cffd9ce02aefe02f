package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kordlan/harmonia_backend/internal/service/search"
	"github.com/kordlan/harmonia_backend/pkg/constants"
	"github.com/kordlan/harmonia_backend/pkg/sanitize"
)

type SearchHandler struct {
	svc         search.Service
	maxQueryLen int
}

func NewSearchHandler(svc search.Service, maxQueryLen int) *SearchHandler {
	return &SearchHandler{svc: svc, maxQueryLen: maxQueryLen}
}

// GET /api/v1/search
func (h *SearchHandler) Search(c fiber.Ctx) error {
	sortBy := c.Query("sortBy")
	if !search.ValidSort(sortBy) {
		return badRequest(c, "sortBy must be one of name_asc, name_desc, education_desc, random")
	}

	f := search.Filters{
		Genre:      h.param(c, "genre", search.Wildcard),
		Instrument: h.param(c, "instrument", search.Wildcard),
		Category:   h.param(c, "category", search.Wildcard),
		NameSearch: h.param(c, "nameSearch", ""),
		SortBy:     sortBy,

		RequesterEmail:     c.Get(constants.HeaderRequesterEmail),
		IncludeCurrentUser: c.Query("includeCurrentUser") == "true",
	}

	profiles := h.svc.Search(c.Context(), f)
	return c.JSON(fiber.Map{"profiles": profiles})
}

// param reads one free-text query parameter through the sanitizer.
func (h *SearchHandler) param(c fiber.Ctx, name, def string) string {
	v := sanitize.Query(c.Query(name, def), h.maxQueryLen)
	if v == "" {
		return def
	}
	return v
}
