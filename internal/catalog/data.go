package catalog

import "github.com/google/uuid"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func annotation(required, requiredAtHiring, preferred *bool) *SkillAnnotation {
	return &SkillAnnotation{Required: required, Preferred: preferred, RequiredAtHiring: requiredAtHiring}
}

func sampleSkills() []SkillDefinition {
	return []SkillDefinition{
		{Name: "Python Programming", Description: strPtr("Proficiency in Python programming language"), YearsOfExperience: intPtr(3)},
		{Name: "FastAPI Development", Description: strPtr("Experience building REST APIs with FastAPI framework"), YearsOfExperience: intPtr(2)},
		{Name: "SQL Database Design", Description: strPtr("Ability to design and optimize SQL databases"), YearsOfExperience: intPtr(4)},
		{Name: "Docker Containerization", Description: strPtr("Experience with containerization using Docker"), YearsOfExperience: intPtr(2)},
		{Name: "AWS Cloud Services", Description: strPtr("Knowledge of Amazon Web Services cloud platform"), YearsOfExperience: intPtr(3)},
		{Name: "Git Version Control", Description: strPtr("Proficiency with Git for version control"), YearsOfExperience: intPtr(5)},
		{Name: "RESTful API Design", Description: strPtr("Understanding of REST principles and API design"), YearsOfExperience: intPtr(3)},
		{Name: "PostgreSQL", Description: strPtr("Experience with PostgreSQL database management"), YearsOfExperience: intPtr(2)},
	}
}

func sampleJobs() []JobRecord {
	return []JobRecord{
		{
			Identifiers:        []Identifier{{Value: uuid.NewString(), SchemeID: "UUID"}},
			HiringOrganization: HiringOrganization{LegalName: "TechCorp Solutions"},
			Name:               "Senior Backend Developer",
			PositionID:         "JDX-001",
			DateCreated:        "2024-01-15T10:00:00Z",
			Skills: []JobSkill{
				{
					Name:              "Python Programming",
					Description:       strPtr("Proficiency in Python programming language"),
					YearsOfExperience: intPtr(3),
					Annotation:        annotation(boolPtr(true), boolPtr(true), nil),
				},
				{
					Name:              "FastAPI Development",
					Description:       strPtr("Experience building REST APIs with FastAPI framework"),
					YearsOfExperience: intPtr(2),
					Annotation:        annotation(boolPtr(true), boolPtr(true), nil),
				},
				{
					Name:              "SQL Database Design",
					Description:       strPtr("Ability to design and optimize SQL databases"),
					YearsOfExperience: intPtr(4),
					Annotation:        annotation(boolPtr(true), boolPtr(false), nil),
				},
				{
					Name:              "Docker Containerization",
					Description:       strPtr("Experience with containerization using Docker"),
					YearsOfExperience: intPtr(2),
					Annotation:        annotation(nil, nil, boolPtr(true)),
				},
				{
					Name:              "AWS Cloud Services",
					Description:       strPtr("Knowledge of Amazon Web Services cloud platform"),
					YearsOfExperience: intPtr(3),
					Annotation:        annotation(nil, nil, boolPtr(true)),
				},
			},
		},
		{
			Identifiers:        []Identifier{{Value: uuid.NewString(), SchemeID: "UUID"}},
			HiringOrganization: HiringOrganization{LegalName: "DataSystems Inc"},
			Name:               "Full Stack Developer",
			PositionID:         "JDX-002",
			DateCreated:        "2024-02-01T09:30:00Z",
			Skills: []JobSkill{
				{
					Name:              "Python Programming",
					Description:       strPtr("Proficiency in Python programming language"),
					YearsOfExperience: intPtr(2),
					Annotation:        annotation(boolPtr(true), boolPtr(true), nil),
				},
				{
					Name:              "RESTful API Design",
					Description:       strPtr("Understanding of REST principles and API design"),
					YearsOfExperience: intPtr(3),
					Annotation:        annotation(boolPtr(true), boolPtr(true), nil),
				},
				{
					Name:              "PostgreSQL",
					Description:       strPtr("Experience with PostgreSQL database management"),
					YearsOfExperience: intPtr(2),
					Annotation:        annotation(boolPtr(true), boolPtr(false), nil),
				},
				{
					Name:              "Git Version Control",
					Description:       strPtr("Proficiency with Git for version control"),
					YearsOfExperience: intPtr(3),
					Annotation:        annotation(nil, nil, boolPtr(true)),
				},
				{
					Name:              "FastAPI Development",
					Description:       strPtr("Experience building REST APIs with FastAPI framework"),
					YearsOfExperience: intPtr(1),
					Annotation:        annotation(nil, nil, boolPtr(true)),
				},
			},
		},
		{
			Identifiers:        []Identifier{{Value: uuid.NewString(), SchemeID: "UUID"}},
			HiringOrganization: HiringOrganization{LegalName: "CloudTech Innovations"},
			Name:               "DevOps Engineer",
			PositionID:         "JDX-003",
			DateCreated:        "2024-02-10T14:20:00Z",
			Skills: []JobSkill{
				{
					Name:              "Docker Containerization",
					Description:       strPtr("Experience with containerization using Docker"),
					YearsOfExperience: intPtr(3),
					Annotation:        annotation(boolPtr(true), boolPtr(true), nil),
				},
				{
					Name:              "AWS Cloud Services",
					Description:       strPtr("Knowledge of Amazon Web Services cloud platform"),
					YearsOfExperience: intPtr(4),
					Annotation:        annotation(boolPtr(true), boolPtr(true), nil),
				},
				{
					Name:              "Git Version Control",
					Description:       strPtr("Proficiency with Git for version control"),
					YearsOfExperience: intPtr(4),
					Annotation:        annotation(boolPtr(true), boolPtr(true), nil),
				},
				{
					Name:              "Python Programming",
					Description:       strPtr("Proficiency in Python programming language"),
					YearsOfExperience: intPtr(2),
					Annotation:        annotation(nil, nil, boolPtr(true)),
				},
				{
					Name:              "SQL Database Design",
					Description:       strPtr("Ability to design and optimize SQL databases"),
					YearsOfExperience: intPtr(2),
					Annotation:        annotation(nil, nil, boolPtr(true)),
				},
			},
		},
	}
}
