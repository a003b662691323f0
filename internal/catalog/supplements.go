package catalog

// DefinedTerm is a named term with free-text descriptions, used for the
// responsibility blocks attached to each posting.
type DefinedTerm struct {
	Name         string
	Descriptions []string
}

// PostingDetails carries the supplementary JEDx blocks for one position.
// Experiences and credentials follow the target schema loosely, so they
// stay opaque key/value documents rather than typed structs.
type PostingDetails struct {
	Responsibilities    []DefinedTerm
	RequiredExperiences []map[string]any
	RequiredCredentials []map[string]any
}

func workExperience(duration, description string) map[string]any {
	return map[string]any{
		"duration":             duration,
		"descriptions":         []string{description},
		"experienceCategories": []map[string]any{{"descriptions": []string{"Work Experience"}}},
	}
}

func bsCredential(concentration string) []map[string]any {
	return []map[string]any{{
		"programConcentration": concentration,
		"descriptions":         []string{"BS"},
	}}
}

// PostingDetails returns the supplementary blocks for a position. Unknown
// positions get empty details; the posting transformer treats the blocks
// as pass-through either way.
func (c *Catalog) PostingDetails(positionID string) PostingDetails {
	switch positionID {
	case "JDX-001":
		return PostingDetails{
			Responsibilities: []DefinedTerm{
				{
					Name: "Backend API Development",
					Descriptions: []string{
						"Design, develop, and maintain scalable REST APIs and microservices",
						"Implement business logic and data processing pipelines",
						"Optimize API performance and ensure high availability",
					},
				},
				{
					Name: "Database Architecture",
					Descriptions: []string{
						"Design and implement database schemas",
						"Optimize database queries and performance",
						"Manage database migrations and data integrity",
					},
				},
				{
					Name: "System Architecture",
					Descriptions: []string{
						"Architect scalable backend systems",
						"Design system integrations and data flows",
						"Lead technical design discussions and code reviews",
					},
				},
			},
			RequiredExperiences: []map[string]any{
				workExperience("P5Y", "Backend software development experience"),
				workExperience("P3Y", "API development and RESTful service design"),
			},
			RequiredCredentials: bsCredential("Computer Science"),
		}
	case "JDX-002":
		return PostingDetails{
			Responsibilities: []DefinedTerm{
				{
					Name: "Full Stack Development",
					Descriptions: []string{
						"Develop both frontend and backend components of web applications",
						"Create responsive user interfaces and RESTful APIs",
						"Integrate frontend and backend systems",
					},
				},
				{
					Name: "Database Management",
					Descriptions: []string{
						"Design and maintain database schemas",
						"Write efficient SQL queries and stored procedures",
						"Implement database optimization strategies",
					},
				},
				{
					Name: "Application Integration",
					Descriptions: []string{
						"Integrate third-party APIs and services",
						"Implement authentication and authorization",
						"Ensure seamless data flow between systems",
					},
				},
			},
			RequiredExperiences: []map[string]any{
				workExperience("P3Y", "Full stack web development experience"),
				workExperience("P2Y", "API design and database management"),
			},
			RequiredCredentials: bsCredential("Computer Science"),
		}
	case "JDX-003":
		return PostingDetails{
			Responsibilities: []DefinedTerm{
				{
					Name: "Infrastructure Management",
					Descriptions: []string{
						"Design, implement, and maintain cloud infrastructure",
						"Manage CI/CD pipelines and deployment automation",
						"Monitor and optimize system performance and reliability",
					},
				},
				{
					Name: "Container Orchestration",
					Descriptions: []string{
						"Manage containerized applications with Docker and Kubernetes",
						"Implement infrastructure as code (IaC)",
						"Ensure high availability and disaster recovery",
					},
				},
				{
					Name: "DevOps Practices",
					Descriptions: []string{
						"Implement automation for testing, building, and deployment",
						"Manage configuration and secrets",
						"Collaborate with development teams on deployment strategies",
					},
				},
			},
			RequiredExperiences: []map[string]any{
				workExperience("P4Y", "DevOps or infrastructure engineering experience"),
				workExperience("P3Y", "Cloud infrastructure management and CI/CD"),
			},
			RequiredCredentials: bsCredential("Computer Science"),
		}
	}
	return PostingDetails{}
}
