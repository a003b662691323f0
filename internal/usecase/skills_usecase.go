package usecase

import (
	"context"
	"fmt"
	"strings"

	"jedx-skills/internal/catalog"
	"jedx-skills/internal/delivery/http/dto"
)

const (
	ValidationValidated   = "Validated"
	ValidationProvisional = "Provisional"
	ValidationProposed    = "Proposed"
	ValidationExpired     = "Expired"

	ProficiencyAdvanced   = "Advanced"
	ProficiencyProficient = "Proficient"
	ProficiencyDeveloping = "Developing"
)

const (
	skillURIPrefix = "https://example.com/skills/"
	jobURIPrefix   = "https://api.hropenstandards.org/jedx/jobs/"
)

// SkillAssertionsUsecase resolves a JEDx object identifier to an HR-Open
// SkillsApi assertion document.
type SkillAssertionsUsecase interface {
	GetSkillAssertions(ctx context.Context, identifier string) (dto.SkillsResponse, error)
}

type assertionCatalog interface {
	FindJob(positionID string) (catalog.JobRecord, bool)
}

type SkillAssertions struct {
	catalog assertionCatalog
}

func NewSkillAssertionsUsecase(c assertionCatalog) *SkillAssertions {
	return &SkillAssertions{catalog: c}
}

// GetSkillAssertions accepts either a bare positionID or a full object URI;
// only the trailing path segment is matched against the catalog.
func (u *SkillAssertions) GetSkillAssertions(_ context.Context, identifier string) (dto.SkillsResponse, error) {
	positionID := identifier
	if i := strings.LastIndex(identifier, "/"); i >= 0 {
		positionID = identifier[i+1:]
	}

	job, ok := u.catalog.FindJob(positionID)
	if !ok {
		return dto.SkillsResponse{}, ErrJobNotFound
	}
	return ToSkillsResponse(job), nil
}

// ToSkillsResponse builds the SkillsApi document for one job. Assertions
// keep the input skill order, and the codedNotation sequence restarts at 1
// for every response.
func ToSkillsResponse(job catalog.JobRecord) dto.SkillsResponse {
	assertions := make([]dto.SkillAssertion, 0, len(job.Skills))
	for _, s := range job.Skills {
		status, proficiency := deriveAssertion(s.Annotation)

		model := dto.SkillModel{
			ID:            skillURIPrefix + skillSlug(s.Name),
			Name:          s.Name,
			CodedNotation: codedNotation(s.Name, len(assertions)+1),
		}
		if s.Description != nil {
			model.Description = *s.Description
		}

		assertions = append(assertions, dto.SkillAssertion{
			Type:             dto.TypeSkillAssertion,
			Skill:            model,
			ProficiencyLevel: dto.ProficiencyLevel{Type: dto.TypeDefinedTerm, Name: proficiency},
			ValidationStatus: status,
			ValidFrom:        job.DateCreated,
		})
	}

	return dto.SkillsResponse{
		Context:           dto.SkillsContext,
		Object:            &dto.ReferencedObject{ID: jobURIPrefix + job.PositionID, Type: dto.TypeJobPosting},
		ProficiencyScales: []map[string]any{},
		Skills:            assertions,
	}
}

// deriveAssertion maps the annotation flags to a validation status and
// proficiency level. Rules are checked in priority order; an unannotated
// skill falls through to Validated/Proficient.
func deriveAssertion(a *catalog.SkillAnnotation) (status, proficiency string) {
	required := a != nil && a.Required != nil && *a.Required
	preferred := a != nil && a.Preferred != nil && *a.Preferred
	atHiring := a != nil && a.RequiredAtHiring != nil && *a.RequiredAtHiring

	switch {
	case required && atHiring:
		return ValidationValidated, ProficiencyAdvanced
	case required:
		return ValidationValidated, ProficiencyProficient
	case preferred:
		return ValidationProvisional, ProficiencyDeveloping
	default:
		return ValidationValidated, ProficiencyProficient
	}
}

func skillSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// codedNotation builds a short code from the first two letters of each of
// the first two words, plus the per-response sequence number, e.g.
// "Python Programming" as the first assertion becomes PYPR-001.
func codedNotation(name string, seq int) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		if len(r) > 2 {
			r = r[:2]
		}
		b.WriteString(strings.ToUpper(string(r)))
	}
	return fmt.Sprintf("%s-%03d", b.String(), seq)
}
