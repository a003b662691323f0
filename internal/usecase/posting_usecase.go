package usecase

import (
	"context"

	"jedx-skills/internal/catalog"
	"jedx-skills/internal/delivery/http/dto"
)

// PostingUsecase resolves a position to its JEDx JobPostingType document.
type PostingUsecase interface {
	GetJobPosting(ctx context.Context, positionID string) (dto.JobPostingResponse, error)
}

type postingCatalog interface {
	FindJob(positionID string) (catalog.JobRecord, bool)
	PostingDetails(positionID string) catalog.PostingDetails
}

type Posting struct {
	catalog postingCatalog
}

func NewPostingUsecase(c postingCatalog) *Posting {
	return &Posting{catalog: c}
}

func (u *Posting) GetJobPosting(_ context.Context, positionID string) (dto.JobPostingResponse, error) {
	job, ok := u.catalog.FindJob(positionID)
	if !ok {
		return dto.JobPostingResponse{}, ErrJobNotFound
	}
	return ToJobPosting(job, u.catalog.PostingDetails(positionID)), nil
}

// ToJobPosting maps one internal job record onto the JEDx JobPostingType
// schema. The supplementary blocks in details are passed through untouched;
// they come from a per-position lookup, not from the record itself. The
// schema duplicates the posting name and identifier under two keys each,
// so title mirrors name and postingID mirrors positionID.
func ToJobPosting(job catalog.JobRecord, details catalog.PostingDetails) dto.JobPostingResponse {
	skills := make([]dto.AnnotatedDefinedTerm, 0, len(job.Skills))
	for _, s := range job.Skills {
		skills = append(skills, toAnnotatedTerm(s))
	}

	return dto.JobPostingResponse{
		Identifiers:         toIdentifiers(job.Identifiers),
		Name:                job.Name,
		Title:               job.Name,
		PositionID:          job.PositionID,
		PostingID:           job.PositionID,
		HiringOrganization:  &dto.Organization{LegalName: job.HiringOrganization.LegalName},
		DateCreated:         job.DateCreated,
		Skills:              skills,
		Responsibilities:    toResponsibilityTerms(details.Responsibilities),
		RequiredExperiences: details.RequiredExperiences,
		RequiredCredentials: details.RequiredCredentials,
	}
}

func toIdentifiers(ids []catalog.Identifier) []dto.Identifier {
	out := make([]dto.Identifier, 0, len(ids))
	for _, id := range ids {
		out = append(out, dto.Identifier{
			Value:       id.Value,
			SchemeID:    id.SchemeID,
			Description: id.Description,
			SchemeLink:  id.SchemeLink,
		})
	}
	return out
}

func toAnnotatedTerm(s catalog.JobSkill) dto.AnnotatedDefinedTerm {
	term := dto.AnnotatedDefinedTerm{Name: s.Name}
	if s.Description != nil {
		term.Descriptions = []string{*s.Description}
	}
	if s.Annotation != nil {
		term.Annotation = &dto.ScaleAnnotation{
			Required:              s.Annotation.Required,
			Preferred:             s.Annotation.Preferred,
			RequiredAtHiring:      s.Annotation.RequiredAtHiring,
			AcquisitionDifficulty: s.Annotation.AcquisitionDifficulty,
		}
	}
	return term
}

func toResponsibilityTerms(terms []catalog.DefinedTerm) []dto.AnnotatedDefinedTerm {
	if len(terms) == 0 {
		return nil
	}
	out := make([]dto.AnnotatedDefinedTerm, 0, len(terms))
	for _, t := range terms {
		out = append(out, dto.AnnotatedDefinedTerm{Name: t.Name, Descriptions: t.Descriptions})
	}
	return out
}
