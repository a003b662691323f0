package catalog

import "strings"

// Identifier is a scheme-qualified identifier attached to a job record.
type Identifier struct {
	Value       string
	SchemeID    string
	Description *string
	SchemeLink  *string
}

type HiringOrganization struct {
	LegalName string
}

// SkillAnnotation carries the JEDx scale flags describing how essential a
// skill is to a role. All fields are optional; an absent flag means the
// source never asserted it.
type SkillAnnotation struct {
	Required              *bool
	Preferred             *bool
	RequiredAtHiring      *bool
	AcquisitionDifficulty *float64
}

type JobSkill struct {
	Name              string
	Description       *string
	YearsOfExperience *int
	Annotation        *SkillAnnotation
}

// JobRecord is the internal source-of-truth representation of a posting.
// Records are built once at startup and never mutated.
type JobRecord struct {
	Identifiers        []Identifier
	HiringOrganization HiringOrganization
	Name               string
	PositionID         string
	DateCreated        string
	Skills             []JobSkill
}

// SkillDefinition is a standalone skill, independent of any job.
type SkillDefinition struct {
	Name              string
	Description       *string
	YearsOfExperience *int
}

// Catalog holds the fixed in-memory dataset. It is read-only after New
// returns, so concurrent lookups need no coordination.
type Catalog struct {
	jobs   []JobRecord
	skills []SkillDefinition
}

func New() *Catalog {
	return &Catalog{
		jobs:   sampleJobs(),
		skills: sampleSkills(),
	}
}

// FindJob returns the record whose positionID matches exactly
// (case-sensitive). A linear scan is fine at this dataset size; a real
// catalog would key this lookup.
func (c *Catalog) FindJob(positionID string) (JobRecord, bool) {
	for _, j := range c.jobs {
		if j.PositionID == positionID {
			return j, true
		}
	}
	return JobRecord{}, false
}

// FindSkill matches standalone skills by name, case-insensitively.
func (c *Catalog) FindSkill(name string) (SkillDefinition, bool) {
	for _, s := range c.skills {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return SkillDefinition{}, false
}

func (c *Catalog) Jobs() []JobRecord {
	return c.jobs
}

func (c *Catalog) Skills() []SkillDefinition {
	return c.skills
}
