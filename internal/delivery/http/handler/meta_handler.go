package handler

import "github.com/gofiber/fiber/v3"

const (
	serviceName    = "Job Skill Architecture API"
	serviceVersion = "1.0.0"
)

type serviceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// MetaHandler serves the service root and liveness endpoints.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

func (h *MetaHandler) Root(c fiber.Ctx) error {
	return c.JSON(serviceInfo{
		Message: serviceName,
		Version: serviceVersion,
		Endpoints: map[string]string{
			"jobs":             "/api/jobs",
			"job_by_id":        "/api/jobs/{job_id}",
			"job_with_skills":  "/api/jobs/{job_id}/skills",
			"skills":           "/api/skills",
			"skill_by_name":    "/api/skills/{skill_name}",
			"skill_assertions": "/skills?identifier={identifier}",
		},
	})
}

func (h *MetaHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
