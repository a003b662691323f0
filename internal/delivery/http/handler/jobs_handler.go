package handler

import (
	"errors"
	"fmt"

	"jedx-skills/internal/pkg/response"
	"jedx-skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// JobsHandler serves the JEDx job endpoints: the raw catalog listing, the
// JobPostingType document, and the required/recommended skill splits.
type JobsHandler struct {
	postings usecase.PostingUsecase
	queries  usecase.JobQueryUsecase
}

func NewJobsHandler(postings usecase.PostingUsecase, queries usecase.JobQueryUsecase) *JobsHandler {
	return &JobsHandler{postings: postings, queries: queries}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/:job_id", h.GetPosting)
	grp.Get("/:job_id/skills", h.GetWithSkills)
	grp.Get("/:job_id/skills/required", h.GetRequiredSkills)
	grp.Get("/:job_id/skills/recommended", h.GetRecommendedSkills)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	return c.JSON(h.queries.ListJobs(c.Context()))
}

func (h *JobsHandler) GetPosting(c fiber.Ctx) error {
	jobID := c.Params("job_id")

	posting, err := h.postings.GetJobPosting(c.Context(), jobID)
	if err != nil {
		return h.mapJobError(c, err, jobID)
	}
	return c.JSON(posting)
}

func (h *JobsHandler) GetWithSkills(c fiber.Ctx) error {
	jobID := c.Params("job_id")

	res, err := h.queries.GetJobWithSkills(c.Context(), jobID)
	if err != nil {
		return h.mapJobError(c, err, jobID)
	}
	return c.JSON(res)
}

func (h *JobsHandler) GetRequiredSkills(c fiber.Ctx) error {
	jobID := c.Params("job_id")

	skills, err := h.queries.RequiredSkills(c.Context(), jobID)
	if err != nil {
		return h.mapJobError(c, err, jobID)
	}
	return c.JSON(skills)
}

func (h *JobsHandler) GetRecommendedSkills(c fiber.Ctx) error {
	jobID := c.Params("job_id")

	skills, err := h.queries.RecommendedSkills(c.Context(), jobID)
	if err != nil {
		return h.mapJobError(c, err, jobID)
	}
	return c.JSON(skills)
}

func (h *JobsHandler) mapJobError(c fiber.Ctx, err error, jobID string) error {
	if errors.Is(err, usecase.ErrJobNotFound) {
		return response.NotFound(c, fmt.Sprintf("Job with ID %s not found", jobID))
	}
	return response.Detail(c, fiber.StatusInternalServerError, response.DetailInternalServerError)
}
