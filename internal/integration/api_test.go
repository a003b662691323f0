package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"jedx-skills/internal/app"
	"jedx-skills/internal/config"

	"github.com/gofiber/fiber/v3"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{App: config.AppConfig{
		AppName:     "jedx-skills-test",
		Environment: "test",
		HTTPPort:    "8080",
	}}
	return app.New(cfg).Fiber
}

func get(t *testing.T, a *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := a.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", target, err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, body
}

func TestGetJobPosting_OK(t *testing.T) {
	a := newTestApp(t)

	resp, body := get(t, a, "/api/jobs/JDX-001")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	var posting map[string]any
	if err := json.Unmarshal(body, &posting); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if posting["title"] != posting["name"] {
		t.Fatalf("title %v must equal name %v", posting["title"], posting["name"])
	}
	if posting["postingID"] != posting["positionID"] {
		t.Fatalf("postingID %v must equal positionID %v", posting["postingID"], posting["positionID"])
	}
	if posting["positionID"] != "JDX-001" {
		t.Fatalf("unexpected positionID: %v", posting["positionID"])
	}
	if _, ok := posting["responsibilities"]; !ok {
		t.Fatalf("expected responsibilities block")
	}
}

func TestGetJobPosting_NotFound(t *testing.T) {
	a := newTestApp(t)

	resp, body := get(t, a, "/api/jobs/JDX-999")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var errBody map[string]string
	if err := json.Unmarshal(body, &errBody); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if errBody["detail"] != "Job with ID JDX-999 not found" {
		t.Fatalf("unexpected detail: %q", errBody["detail"])
	}
}

func TestSkillAssertions_IdentifierPrefixIndependence(t *testing.T) {
	a := newTestApp(t)

	_, bare := get(t, a, "/skills?identifier=JDX-002")
	_, uri := get(t, a, "/skills?identifier="+url.QueryEscape("https://api.hropenstandards.org/jedx/jobs/JDX-002"))

	if !bytes.Equal(bare, uri) {
		t.Fatalf("bare and URI identifiers must yield identical bodies:\n%s\n%s", bare, uri)
	}
}

func TestSkillAssertions_Idempotent(t *testing.T) {
	a := newTestApp(t)

	_, first := get(t, a, "/skills?identifier=JDX-001")
	_, second := get(t, a, "/skills?identifier=JDX-001")

	if !bytes.Equal(first, second) {
		t.Fatalf("repeated calls must return byte-identical JSON")
	}
}

func TestSkillAssertions_Document(t *testing.T) {
	a := newTestApp(t)

	resp, body := get(t, a, "/skills?identifier=JDX-001")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	var doc struct {
		Context string `json:"@context"`
		Object  struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"object"`
		ProficiencyScales []any `json:"proficiencyScales"`
		Skills            []struct {
			Type  string `json:"@type"`
			Skill struct {
				ID            string `json:"id"`
				Name          string `json:"name"`
				CodedNotation string `json:"codedNotation"`
			} `json:"skill"`
			ProficiencyLevel struct {
				Type string `json:"@type"`
				Name string `json:"name"`
			} `json:"proficiencyLevel"`
			ValidationStatus string `json:"validationStatus"`
			ValidFrom        string `json:"validFrom"`
		} `json:"skills"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if doc.Context != "https://schema.hropenstandards.org/4.5/recruiting/rdf/SkillsApi.json" {
		t.Fatalf("unexpected @context: %q", doc.Context)
	}
	if doc.Object.ID != "https://api.hropenstandards.org/jedx/jobs/JDX-001" || doc.Object.Type != "JobPosting" {
		t.Fatalf("unexpected object: %+v", doc.Object)
	}
	if doc.ProficiencyScales == nil || len(doc.ProficiencyScales) != 0 {
		t.Fatalf("proficiencyScales must be an empty list")
	}
	if len(doc.Skills) != 5 {
		t.Fatalf("expected 5 assertions, got %d", len(doc.Skills))
	}

	first := doc.Skills[0]
	if first.Skill.Name != "Python Programming" || first.Skill.CodedNotation != "PYPR-001" {
		t.Fatalf("unexpected first assertion: %+v", first.Skill)
	}
	if first.ValidationStatus != "Validated" || first.ProficiencyLevel.Name != "Advanced" {
		t.Fatalf("required-at-hiring skill must be Validated/Advanced, got %q/%q", first.ValidationStatus, first.ProficiencyLevel.Name)
	}
	if first.ValidFrom != "2024-01-15T10:00:00Z" {
		t.Fatalf("unexpected validFrom: %q", first.ValidFrom)
	}

	preferred := doc.Skills[3]
	if preferred.ValidationStatus != "Provisional" || preferred.ProficiencyLevel.Name != "Developing" {
		t.Fatalf("preferred skill must be Provisional/Developing, got %q/%q", preferred.ValidationStatus, preferred.ProficiencyLevel.Name)
	}
}

func TestSkillAssertions_NotFoundEchoesIdentifier(t *testing.T) {
	a := newTestApp(t)

	identifier := "https://api.hropenstandards.org/jedx/jobs/JDX-404"
	resp, body := get(t, a, "/skills?identifier="+url.QueryEscape(identifier))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var errBody map[string]string
	if err := json.Unmarshal(body, &errBody); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if errBody["detail"] != "Job with identifier "+identifier+" not found" {
		t.Fatalf("unexpected detail: %q", errBody["detail"])
	}
}

func TestSkillAssertions_MissingIdentifier(t *testing.T) {
	a := newTestApp(t)

	resp, _ := get(t, a, "/skills")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestListJobsAndSkills(t *testing.T) {
	a := newTestApp(t)

	resp, body := get(t, a, "/api/jobs")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var jobs []map[string]any
	if err := json.Unmarshal(body, &jobs); err != nil {
		t.Fatalf("unmarshal jobs: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}

	resp, body = get(t, a, "/api/skills")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var skills []map[string]any
	if err := json.Unmarshal(body, &skills); err != nil {
		t.Fatalf("unmarshal skills: %v", err)
	}
	if len(skills) != 8 {
		t.Fatalf("expected 8 skills, got %d", len(skills))
	}
}

func TestGetSkillByName_CaseInsensitive(t *testing.T) {
	a := newTestApp(t)

	resp, body := get(t, a, "/api/skills/python%20programming")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	var skill map[string]any
	if err := json.Unmarshal(body, &skill); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if skill["name"] != "Python Programming" {
		t.Fatalf("unexpected skill: %v", skill["name"])
	}

	resp, body = get(t, a, "/api/skills/Underwater%20Basketweaving")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var errBody map[string]string
	if err := json.Unmarshal(body, &errBody); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if errBody["detail"] != "Skill 'Underwater Basketweaving' not found" {
		t.Fatalf("unexpected detail: %q", errBody["detail"])
	}
}

func TestJobSkillSplits(t *testing.T) {
	a := newTestApp(t)

	resp, body := get(t, a, "/api/jobs/JDX-001/skills")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res struct {
		Job               map[string]any   `json:"job"`
		RequiredSkills    []map[string]any `json:"required_skills"`
		RecommendedSkills []map[string]any `json:"recommended_skills"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(res.RequiredSkills) != 3 || len(res.RecommendedSkills) != 2 {
		t.Fatalf("expected 3 required / 2 recommended, got %d/%d", len(res.RequiredSkills), len(res.RecommendedSkills))
	}

	resp, body = get(t, a, "/api/jobs/JDX-001/skills/required")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var required []map[string]any
	if err := json.Unmarshal(body, &required); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(required) != 3 {
		t.Fatalf("expected 3 required skills, got %d", len(required))
	}

	resp, body = get(t, a, "/api/jobs/JDX-001/skills/recommended")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var recommended []map[string]any
	if err := json.Unmarshal(body, &recommended); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(recommended) != 2 {
		t.Fatalf("expected 2 recommended skills, got %d", len(recommended))
	}
}

func TestRootEndpoint(t *testing.T) {
	a := newTestApp(t)

	resp, body := get(t, a, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var info struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if info.Message != "Job Skill Architecture API" {
		t.Fatalf("unexpected message: %q", info.Message)
	}
	if info.Endpoints["job_by_id"] != "/api/jobs/{job_id}" {
		t.Fatalf("unexpected endpoint map: %v", info.Endpoints)
	}
}

func TestDescriptionsNeverBareStrings(t *testing.T) {
	a := newTestApp(t)

	_, body := get(t, a, "/api/jobs/JDX-003")

	var posting struct {
		Skills []struct {
			Descriptions []string `json:"descriptions"`
		} `json:"skills"`
	}
	if err := json.Unmarshal(body, &posting); err != nil {
		t.Fatalf("descriptions must decode as string arrays: %v", err)
	}
	for i, s := range posting.Skills {
		if len(s.Descriptions) != 1 {
			t.Fatalf("skill %d: expected one description, got %v", i, s.Descriptions)
		}
	}
}
