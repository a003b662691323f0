package dto

// Types in this file follow the HR-Open SkillsApi schema. The JSON-LD
// keys keep their at-sign form on the wire.

const (
	SkillsContext      = "https://schema.hropenstandards.org/4.5/recruiting/rdf/SkillsApi.json"
	TypeSkillAssertion = "SkillAssertion"
	TypeDefinedTerm    = "DefinedTerm"
	TypeJobPosting     = "JobPosting"
)

type SkillModel struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	CodedNotation string `json:"codedNotation,omitempty"`
}

type ProficiencyLevel struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type SkillAssertion struct {
	Type             string           `json:"@type"`
	Skill            SkillModel       `json:"skill"`
	ProficiencyLevel ProficiencyLevel `json:"proficiencyLevel"`
	ValidationStatus string           `json:"validationStatus"`
	ValidFrom        string           `json:"validFrom"`
	ValidUntil       string           `json:"validUntil,omitempty"`
}

type ReferencedObject struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

type SkillsResponse struct {
	Context           string            `json:"@context"`
	Object            *ReferencedObject `json:"object,omitempty"`
	ProficiencyScales []map[string]any  `json:"proficiencyScales"`
	Skills            []SkillAssertion  `json:"skills"`
}
