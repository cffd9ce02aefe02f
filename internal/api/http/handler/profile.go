package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/kordlan/harmonia_backend/internal/service/profile"
	"github.com/kordlan/harmonia_backend/pkg/constants"
)

type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GET /api/v1/profiles/me
//
// Creates the empty profile skeleton on first access.
func (h *ProfileHandler) GetMe(c fiber.Ctx) error {
	email := c.Get(constants.HeaderRequesterEmail)

	p, err := h.svc.GetOrCreate(c.Context(), email)
	if err != nil {
		if errors.Is(err, profile.ErrEmailRequired) {
			return badRequest(c, "requester email is required")
		}
		return internalError(c)
	}
	return ok(c, p)
}

// PATCH /api/v1/profiles/me/:field
//
// Full-field replace: the request body is the new raw JSON value for
// the named field.
func (h *ProfileHandler) UpdateMyField(c fiber.Ctx) error {
	email := c.Get(constants.HeaderRequesterEmail)

	p, err := h.svc.GetOrCreate(c.Context(), email)
	if err != nil {
		if errors.Is(err, profile.ErrEmailRequired) {
			return badRequest(c, "requester email is required")
		}
		return internalError(c)
	}

	field := c.Params("field")
	value := json.RawMessage(c.Body())
	if len(value) == 0 || !json.Valid(value) {
		return badRequest(c, "request body must be a JSON value")
	}

	if err := h.svc.UpdateField(c.Context(), p.ID, field, value); err != nil {
		switch {
		case errors.Is(err, profile.ErrUnknownField), errors.Is(err, profile.ErrInvalidValue):
			return badRequest(c, err.Error())
		case errors.Is(err, profile.ErrProfileNotFound):
			return notFound(c, "profile not found")
		default:
			// write failures surface so the edit can be retried
			return internalError(c)
		}
	}

	updated, err := h.svc.GetByID(c.Context(), p.ID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, updated)
}

// GET /api/v1/profiles/:id
func (h *ProfileHandler) GetByID(c fiber.Ctx) error {
	p, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return notFound(c, "profile not found")
		}
		return internalError(c)
	}
	return ok(c, p)
}
