package usecase

import (
	"context"
	"errors"
	"testing"

	"jedx-skills/internal/catalog"
)

type stubQueryCatalog struct {
	jobs   []catalog.JobRecord
	skills []catalog.SkillDefinition
}

func (s stubQueryCatalog) FindJob(positionID string) (catalog.JobRecord, bool) {
	for _, j := range s.jobs {
		if j.PositionID == positionID {
			return j, true
		}
	}
	return catalog.JobRecord{}, false
}

func (s stubQueryCatalog) FindSkill(name string) (catalog.SkillDefinition, bool) {
	for _, sk := range s.skills {
		if sk.Name == name {
			return sk, true
		}
	}
	return catalog.SkillDefinition{}, false
}

func (s stubQueryCatalog) Jobs() []catalog.JobRecord         { return s.jobs }
func (s stubQueryCatalog) Skills() []catalog.SkillDefinition { return s.skills }

func splitTestJob() catalog.JobRecord {
	return catalog.JobRecord{
		PositionID: "JDX-001",
		Name:       "Senior Backend Developer",
		Skills: []catalog.JobSkill{
			{Name: "Required One", Annotation: &catalog.SkillAnnotation{Required: boolPtr(true), RequiredAtHiring: boolPtr(true)}},
			{Name: "Required Two", Annotation: &catalog.SkillAnnotation{Required: boolPtr(true)}},
			{Name: "Preferred One", Annotation: &catalog.SkillAnnotation{Preferred: boolPtr(true)}},
			{Name: "Both Flags", Annotation: &catalog.SkillAnnotation{Required: boolPtr(true), Preferred: boolPtr(true)}},
			{Name: "Unannotated"},
		},
	}
}

func TestJobQuery_GetJobWithSkills_Splits(t *testing.T) {
	uc := NewJobQueryUsecase(stubQueryCatalog{jobs: []catalog.JobRecord{splitTestJob()}})

	res, err := uc.GetJobWithSkills(context.Background(), "JDX-001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(res.RequiredSkills) != 3 {
		t.Fatalf("expected 3 required skills, got %d", len(res.RequiredSkills))
	}
	if len(res.RecommendedSkills) != 1 {
		t.Fatalf("expected 1 recommended skill, got %d", len(res.RecommendedSkills))
	}
	if res.RecommendedSkills[0].Name != "Preferred One" {
		t.Fatalf("unexpected recommended skill: %q", res.RecommendedSkills[0].Name)
	}
	if len(res.Job.Skills) != 5 {
		t.Fatalf("job block must keep all skills, got %d", len(res.Job.Skills))
	}
}

func TestJobQuery_RequiredAndRecommended_NotFound(t *testing.T) {
	uc := NewJobQueryUsecase(stubQueryCatalog{})

	if _, err := uc.RequiredSkills(context.Background(), "JDX-404"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if _, err := uc.RecommendedSkills(context.Background(), "JDX-404"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobQuery_ListJobs(t *testing.T) {
	uc := NewJobQueryUsecase(stubQueryCatalog{jobs: []catalog.JobRecord{splitTestJob()}})

	jobs := uc.ListJobs(context.Background())
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].PositionID != "JDX-001" {
		t.Fatalf("unexpected positionID: %q", jobs[0].PositionID)
	}
}

func TestJobQuery_GetSkillByName(t *testing.T) {
	uc := NewJobQueryUsecase(stubQueryCatalog{skills: []catalog.SkillDefinition{
		{Name: "Python Programming", Description: strPtr("Proficiency in Python programming language")},
	}})

	s, err := uc.GetSkillByName(context.Background(), "Python Programming")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Name != "Python Programming" {
		t.Fatalf("unexpected name: %q", s.Name)
	}

	if _, err := uc.GetSkillByName(context.Background(), "Rust"); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}
