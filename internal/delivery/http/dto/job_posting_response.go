package dto

// Types in this file follow the JEDx JobPostingType schema. Every field is
// optional there, so unpopulated fields are omitted from the payload.

type Identifier struct {
	Value       string  `json:"value"`
	SchemeID    string  `json:"schemeId"`
	Description *string `json:"description,omitempty"`
	SchemeLink  *string `json:"schemeLink,omitempty"`
}

type Organization struct {
	Name         string   `json:"name,omitempty"`
	LegalName    string   `json:"legalName,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

type Place struct {
	Name         string         `json:"name,omitempty"`
	Address      map[string]any `json:"address,omitempty"`
	Descriptions []string       `json:"descriptions,omitempty"`
}

// ScaleAnnotation mirrors the JEDx scale flags. Pointer fields keep the
// distinction between an asserted false and an absent flag.
type ScaleAnnotation struct {
	Required              *bool    `json:"required,omitempty"`
	Preferred             *bool    `json:"preferred,omitempty"`
	RequiredAtHiring      *bool    `json:"requiredAtHiring,omitempty"`
	AcquisitionDifficulty *float64 `json:"acquisitionDifficulty,omitempty"`
	AcquiredInternally    *bool    `json:"acquiredInternally,omitempty"`
}

type AnnotatedDefinedTerm struct {
	Name         string           `json:"name"`
	TermCode     string           `json:"termCode,omitempty"`
	Descriptions []string         `json:"descriptions,omitempty"`
	Annotation   *ScaleAnnotation `json:"annotation,omitempty"`
}

type JobPostingResponse struct {
	Identifiers        []Identifier  `json:"identifiers,omitempty"`
	Name               string        `json:"name,omitempty"`
	Title              string        `json:"title,omitempty"`
	PositionID         string        `json:"positionID,omitempty"`
	PostingID          string        `json:"postingID,omitempty"`
	HiringOrganization *Organization `json:"hiringOrganization,omitempty"`
	DateCreated        string        `json:"dateCreated,omitempty"`
	DatePosted         string        `json:"datePosted,omitempty"`
	DateModified       string        `json:"dateModified,omitempty"`
	ValidFrom          string        `json:"validFrom,omitempty"`
	ValidThrough       string        `json:"validThrough,omitempty"`

	Skills           []AnnotatedDefinedTerm `json:"skills,omitempty"`
	Abilities        []AnnotatedDefinedTerm `json:"abilities,omitempty"`
	Knowledge        []AnnotatedDefinedTerm `json:"knowledge,omitempty"`
	Competencies     []AnnotatedDefinedTerm `json:"competencies,omitempty"`
	Responsibilities []AnnotatedDefinedTerm `json:"responsibilities,omitempty"`
	Tasks            []AnnotatedDefinedTerm `json:"tasks,omitempty"`
	WorkActivities   []AnnotatedDefinedTerm `json:"workActivities,omitempty"`
	Technologies     []AnnotatedDefinedTerm `json:"technologies,omitempty"`

	RequiredExperiences  []map[string]any `json:"requiredExperiences,omitempty"`
	PreferredExperiences []map[string]any `json:"preferredExperiences,omitempty"`
	RequiredCredentials  []map[string]any `json:"requiredCredentials,omitempty"`
	PreferredCredentials []map[string]any `json:"preferredCredentials,omitempty"`
	RequiredEducation    []map[string]any `json:"requiredEducation,omitempty"`
	PreferredEducation   []map[string]any `json:"preferredEducation,omitempty"`

	JobLocation       *Place                 `json:"jobLocation,omitempty"`
	JobLocationTypes  []string               `json:"jobLocationTypes,omitempty"`
	JobSchedules      []AnnotatedDefinedTerm `json:"jobSchedules,omitempty"`
	JobTerms          []AnnotatedDefinedTerm `json:"jobTerms,omitempty"`
	JobBenefits       []string               `json:"jobBenefits,omitempty"`
	BaseSalaries      []map[string]any       `json:"baseSalaries,omitempty"`
	EstimatedSalaries []map[string]any       `json:"estimatedSalaries,omitempty"`

	EmployerOverview      []string `json:"employerOverview,omitempty"`
	QualificationSummary  []string `json:"qualificationSummary,omitempty"`
	FormattedDescriptions []string `json:"formattedDescriptions,omitempty"`
	ShiftSchedules        []string `json:"shiftSchedules,omitempty"`
	WorkHours             []string `json:"workHours,omitempty"`

	Industries           []string               `json:"industries,omitempty"`
	IndustryCodes        []AnnotatedDefinedTerm `json:"industryCodes,omitempty"`
	OccupationCategories []AnnotatedDefinedTerm `json:"occupationCategories,omitempty"`
	CareerLevels         []AnnotatedDefinedTerm `json:"careerLevels,omitempty"`
	ExperienceCategories []AnnotatedDefinedTerm `json:"experienceCategories,omitempty"`
	EducationLevels      []AnnotatedDefinedTerm `json:"educationLevels,omitempty"`

	TotalJobOpenings   *int     `json:"totalJobOpenings,omitempty"`
	JobImmediateStart  *bool    `json:"jobImmediateStart,omitempty"`
	Disclaimers        []string `json:"disclaimers,omitempty"`
	SpecialCommitments []string `json:"specialCommitments,omitempty"`
	TravelRequirements []string `json:"travelRequirements,omitempty"`
}
