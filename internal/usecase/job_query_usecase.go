package usecase

import (
	"context"

	"jedx-skills/internal/catalog"
	"jedx-skills/internal/delivery/http/dto"
)

// JobQueryUsecase serves the catalog read endpoints that expose the
// internal representation: listings, per-job records, and the
// required/recommended skill splits.
type JobQueryUsecase interface {
	ListJobs(ctx context.Context) []dto.JobResponse
	GetJobWithSkills(ctx context.Context, positionID string) (dto.JobWithSkillsResponse, error)
	RequiredSkills(ctx context.Context, positionID string) ([]dto.JobSkillResponse, error)
	RecommendedSkills(ctx context.Context, positionID string) ([]dto.JobSkillResponse, error)
	ListSkills(ctx context.Context) []dto.SkillResponse
	GetSkillByName(ctx context.Context, name string) (dto.SkillResponse, error)
}

type queryCatalog interface {
	FindJob(positionID string) (catalog.JobRecord, bool)
	FindSkill(name string) (catalog.SkillDefinition, bool)
	Jobs() []catalog.JobRecord
	Skills() []catalog.SkillDefinition
}

type JobQuery struct {
	catalog queryCatalog
}

func NewJobQueryUsecase(c queryCatalog) *JobQuery {
	return &JobQuery{catalog: c}
}

func (u *JobQuery) ListJobs(_ context.Context) []dto.JobResponse {
	jobs := u.catalog.Jobs()
	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	return out
}

func (u *JobQuery) GetJobWithSkills(_ context.Context, positionID string) (dto.JobWithSkillsResponse, error) {
	job, ok := u.catalog.FindJob(positionID)
	if !ok {
		return dto.JobWithSkillsResponse{}, ErrJobNotFound
	}
	return dto.JobWithSkillsResponse{
		Job:               toJobResponse(job),
		RequiredSkills:    toJobSkillResponses(requiredSkills(job)),
		RecommendedSkills: toJobSkillResponses(recommendedSkills(job)),
	}, nil
}

func (u *JobQuery) RequiredSkills(_ context.Context, positionID string) ([]dto.JobSkillResponse, error) {
	job, ok := u.catalog.FindJob(positionID)
	if !ok {
		return nil, ErrJobNotFound
	}
	return toJobSkillResponses(requiredSkills(job)), nil
}

func (u *JobQuery) RecommendedSkills(_ context.Context, positionID string) ([]dto.JobSkillResponse, error) {
	job, ok := u.catalog.FindJob(positionID)
	if !ok {
		return nil, ErrJobNotFound
	}
	return toJobSkillResponses(recommendedSkills(job)), nil
}

func (u *JobQuery) ListSkills(_ context.Context) []dto.SkillResponse {
	skills := u.catalog.Skills()
	out := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, toSkillResponse(s))
	}
	return out
}

func (u *JobQuery) GetSkillByName(_ context.Context, name string) (dto.SkillResponse, error) {
	s, ok := u.catalog.FindSkill(name)
	if !ok {
		return dto.SkillResponse{}, ErrSkillNotFound
	}
	return toSkillResponse(s), nil
}

// requiredSkills keeps skills explicitly annotated required.
func requiredSkills(job catalog.JobRecord) []catalog.JobSkill {
	out := make([]catalog.JobSkill, 0, len(job.Skills))
	for _, s := range job.Skills {
		if s.Annotation != nil && s.Annotation.Required != nil && *s.Annotation.Required {
			out = append(out, s)
		}
	}
	return out
}

// recommendedSkills keeps skills annotated preferred but not required.
func recommendedSkills(job catalog.JobRecord) []catalog.JobSkill {
	out := make([]catalog.JobSkill, 0, len(job.Skills))
	for _, s := range job.Skills {
		if s.Annotation == nil {
			continue
		}
		preferred := s.Annotation.Preferred != nil && *s.Annotation.Preferred
		required := s.Annotation.Required != nil && *s.Annotation.Required
		if preferred && !required {
			out = append(out, s)
		}
	}
	return out
}

func toJobResponse(job catalog.JobRecord) dto.JobResponse {
	return dto.JobResponse{
		Identifiers:        toIdentifiers(job.Identifiers),
		HiringOrganization: dto.Organization{LegalName: job.HiringOrganization.LegalName},
		Name:               job.Name,
		PositionID:         job.PositionID,
		DateCreated:        job.DateCreated,
		Skills:             toJobSkillResponses(job.Skills),
	}
}

func toJobSkillResponses(skills []catalog.JobSkill) []dto.JobSkillResponse {
	out := make([]dto.JobSkillResponse, 0, len(skills))
	for _, s := range skills {
		item := dto.JobSkillResponse{
			Name:              s.Name,
			Description:       s.Description,
			YearsOfExperience: s.YearsOfExperience,
		}
		if s.Annotation != nil {
			item.Annotation = &dto.SkillAnnotationResponse{
				Required:              s.Annotation.Required,
				Preferred:             s.Annotation.Preferred,
				RequiredAtHiring:      s.Annotation.RequiredAtHiring,
				AcquisitionDifficulty: s.Annotation.AcquisitionDifficulty,
			}
		}
		out = append(out, item)
	}
	return out
}

func toSkillResponse(s catalog.SkillDefinition) dto.SkillResponse {
	return dto.SkillResponse{
		Name:              s.Name,
		Description:       s.Description,
		YearsOfExperience: s.YearsOfExperience,
	}
}
