package routes

import (
	"jedx-skills/internal/catalog"
	"jedx-skills/internal/delivery/http/handler"
	"jedx-skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	meta       *handler.MetaHandler
	jobs       *handler.JobsHandler
	skills     *handler.SkillHandler
	assertions *handler.SkillAssertionsHandler
}

func NewRegistry(cat *catalog.Catalog) *Registry {
	postingUC := usecase.NewPostingUsecase(cat)
	queryUC := usecase.NewJobQueryUsecase(cat)
	assertionsUC := usecase.NewSkillAssertionsUsecase(cat)

	return &Registry{
		meta:       handler.NewMetaHandler(),
		jobs:       handler.NewJobsHandler(postingUC, queryUC),
		skills:     handler.NewSkillHandler(queryUC),
		assertions: handler.NewSkillAssertionsHandler(assertionsUC),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.meta.RegisterRoutes(app)

	// HR-Open Skills API lives at the root, outside the /api group.
	r.assertions.RegisterRoutes(app)

	api := app.Group("/api")
	r.jobs.RegisterRoutes(api)
	r.skills.RegisterRoutes(api)
}
