package handler

import (
	"errors"
	"fmt"

	"jedx-skills/internal/pkg/response"
	"jedx-skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// SkillAssertionsHandler serves the HR-Open Skills API endpoint. The
// identifier query parameter may be a bare positionID or a full JEDx
// object URI.
type SkillAssertionsHandler struct {
	assertions usecase.SkillAssertionsUsecase
}

func NewSkillAssertionsHandler(assertions usecase.SkillAssertionsUsecase) *SkillAssertionsHandler {
	return &SkillAssertionsHandler{assertions: assertions}
}

func (h *SkillAssertionsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.Get)
}

func (h *SkillAssertionsHandler) Get(c fiber.Ctx) error {
	identifier := c.Query("identifier")
	if identifier == "" {
		return response.Detail(c, fiber.StatusBadRequest, "identifier query parameter is required")
	}

	res, err := h.assertions.GetSkillAssertions(c.Context(), identifier)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			return response.NotFound(c, fmt.Sprintf("Job with identifier %s not found", identifier))
		}
		return response.Detail(c, fiber.StatusInternalServerError, response.DetailInternalServerError)
	}
	return c.JSON(res)
}
