package dto

// Internal-representation DTOs for the catalog read endpoints.

type SkillAnnotationResponse struct {
	Required              *bool    `json:"required,omitempty"`
	Preferred             *bool    `json:"preferred,omitempty"`
	RequiredAtHiring      *bool    `json:"requiredAtHiring,omitempty"`
	AcquisitionDifficulty *float64 `json:"acquisitionDifficulty,omitempty"`
}

type JobSkillResponse struct {
	Name              string                   `json:"name"`
	Description       *string                  `json:"description,omitempty"`
	YearsOfExperience *int                     `json:"yearsOfExperience,omitempty"`
	Annotation        *SkillAnnotationResponse `json:"annotation,omitempty"`
}

type JobResponse struct {
	Identifiers        []Identifier       `json:"identifiers"`
	HiringOrganization Organization       `json:"hiringOrganization"`
	Name               string             `json:"name"`
	PositionID         string             `json:"positionID"`
	DateCreated        string             `json:"dateCreated"`
	Skills             []JobSkillResponse `json:"skills"`
}

type SkillResponse struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty"`
}

// JobWithSkillsResponse splits a job's skills into required and
// recommended groups alongside the full record.
type JobWithSkillsResponse struct {
	Job               JobResponse        `json:"job"`
	RequiredSkills    []JobSkillResponse `json:"required_skills"`
	RecommendedSkills []JobSkillResponse `json:"recommended_skills"`
}
