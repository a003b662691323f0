package handler

import (
	"errors"
	"fmt"
	"net/url"

	"jedx-skills/internal/pkg/response"
	"jedx-skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// SkillHandler serves the standalone skill definitions.
type SkillHandler struct {
	queries usecase.JobQueryUsecase
}

func NewSkillHandler(queries usecase.JobQueryUsecase) *SkillHandler {
	return &SkillHandler{queries: queries}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Get("/:skill_name", h.GetByName)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	return c.JSON(h.queries.ListSkills(c.Context()))
}

func (h *SkillHandler) GetByName(c fiber.Ctx) error {
	name := c.Params("skill_name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	skill, err := h.queries.GetSkillByName(c.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrSkillNotFound) {
			return response.NotFound(c, fmt.Sprintf("Skill '%s' not found", name))
		}
		return response.Detail(c, fiber.StatusInternalServerError, response.DetailInternalServerError)
	}
	return c.JSON(skill)
}
