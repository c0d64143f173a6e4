package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/api/http/handlers"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/contact"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/health"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/repository"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/seed"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *string         `json:"error"`
	Detail  []struct {
		Field      string `json:"field"`
		Constraint string `json:"constraint"`
	} `json:"detail"`
}

func (e envelope) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(e.Data, v))
}

func (e envelope) dataIsNull() bool { return string(e.Data) == "null" }

func newTestApp(t *testing.T, checkers ...health.Checker) (*fiber.App, *repository.Set) {
	t.Helper()
	set := repository.NewMemory()
	log := zap.NewNop()
	app := NewApp(log)
	Register(app, Handlers{
		Health:    handlers.NewHealthHandler(health.NewService(checkers...), "test"),
		Portfolio: handlers.NewPortfolioHandler(profile.NewService(set.Portfolio), log),
		Skills:    handlers.NewSkillsHandler(skill.NewService(set.Skills), log),
		Projects:  handlers.NewProjectsHandler(project.NewService(set.Projects), log),
		Education: handlers.NewEducationHandler(education.NewService(set.Education), log),
		Contact:   handlers.NewContactHandler(contact.NewService(set.Contact), log),
		Seed: handlers.NewSeedHandler(seed.NewService(seed.Repositories{
			Portfolio: set.Portfolio,
			Skills:    set.Skills,
			Projects:  set.Projects,
			Education: set.Education,
		}, seed.DefaultDataset(), log), log),
	})
	return app, set
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

type counts struct{ portfolio, skills, projects, education int }

func countDocs(t *testing.T, set *repository.Set) counts {
	t.Helper()
	ctx := context.Background()
	var c counts
	p, err := set.Portfolio.Get(ctx)
	require.NoError(t, err)
	if p != nil {
		c.portfolio = 1
	}
	s, err := set.Skills.List(ctx)
	require.NoError(t, err)
	c.skills = len(s)
	pr, err := set.Projects.ListActive(ctx)
	require.NoError(t, err)
	c.projects = len(pr)
	e, err := set.Education.List(ctx)
	require.NoError(t, err)
	c.education = len(e)
	return c
}

func TestRootAndProbes(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := do(t, app, fiber.MethodGet, "/api/", "")
	assert.Equal(t, fiber.StatusOK, status)
	var info map[string]string
	env.decode(t, &info)
	assert.Equal(t, "test", info["version"])

	status, env = do(t, app, fiber.MethodGet, "/api/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)

	status, env = do(t, app, fiber.MethodGet, "/api/ready", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
}

type downChecker struct{}

func (downChecker) Name() string                { return "store" }
func (downChecker) Check(context.Context) error { return context.DeadlineExceeded }

func TestReadyReportsUnavailableStore(t *testing.T) {
	app, _ := newTestApp(t, downChecker{})
	status, env := do(t, app, fiber.MethodGet, "/api/ready", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "store")
}

func TestPortfolioBeforeAndAfterSeed(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := do(t, app, fiber.MethodGet, "/api/portfolio", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.True(t, env.dataIsNull())
	assert.Equal(t, "No portfolio data found", env.Message)

	status, _ = do(t, app, fiber.MethodPost, "/api/seed-data", "")
	require.Equal(t, fiber.StatusOK, status)

	status, env = do(t, app, fiber.MethodGet, "/api/portfolio", "")
	assert.Equal(t, fiber.StatusOK, status)
	var p struct {
		ID           string `json:"id"`
		PersonalInfo struct {
			Name      string   `json:"name"`
			Interests []string `json:"interests"`
		} `json:"personalInfo"`
	}
	env.decode(t, &p)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Faizan Khan", p.PersonalInfo.Name)
	assert.NotEmpty(t, p.PersonalInfo.Interests)
}

func TestSkillLevelRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	for _, level := range []int{0, 1, 57, 99, 100} {
		body := `{"category":"programming","name":"Go","level":` + strconv.Itoa(level) + `,"categoryType":"Programming Languages"}`
		status, env := do(t, app, fiber.MethodPost, "/api/skills", body)
		require.Equal(t, fiber.StatusOK, status, env.Message)
		var created skill.Skill
		env.decode(t, &created)
		assert.Equal(t, level, created.Level)
		assert.NotEmpty(t, created.ID)
	}

	status, env := do(t, app, fiber.MethodGet, "/api/skills", "")
	require.Equal(t, fiber.StatusOK, status)
	var groups skill.Groups
	env.decode(t, &groups)
	require.Len(t, groups.Programming, 5)
	levels := make([]int, 0, 5)
	for _, s := range groups.Programming {
		levels = append(levels, s.Level)
	}
	assert.Equal(t, []int{0, 1, 57, 99, 100}, levels)
	assert.NotNil(t, groups.Soft)
}

func TestSkillLevelOutOfRangeIsRejected(t *testing.T) {
	app, _ := newTestApp(t)

	for _, level := range []string{"-1", "101", "1000"} {
		status, env := do(t, app, fiber.MethodPost, "/api/skills",
			`{"category":"tools","name":"Git","level":`+level+`,"categoryType":"Version Control"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.False(t, env.Success)
		require.NotEmpty(t, env.Detail)
		assert.Equal(t, "level", env.Detail[0].Field)
	}

	_, env := do(t, app, fiber.MethodGet, "/api/skills", "")
	var groups skill.Groups
	env.decode(t, &groups)
	assert.Empty(t, groups.Tools)
}

func TestSkillValidationNamesEveryField(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := do(t, app, fiber.MethodPost, "/api/skills", `{"name":"Go"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	fields := map[string]string{}
	for _, d := range env.Detail {
		fields[d.Field] = d.Constraint
	}
	assert.Equal(t, map[string]string{"category": "required", "level": "required", "categoryType": "required"}, fields)
}

func TestSeedTwiceWritesOnce(t *testing.T) {
	app, set := newTestApp(t)

	status, env := do(t, app, fiber.MethodPost, "/api/seed-data", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Database seeded successfully", env.Message)
	var res map[string]int
	env.decode(t, &res)
	assert.Equal(t, map[string]int{"portfolio": 1, "skills": 20, "projects": 4, "education": 4}, res)

	before := countDocs(t, set)
	assert.Equal(t, counts{portfolio: 1, skills: 20, projects: 4, education: 4}, before)

	status, env = do(t, app, fiber.MethodPost, "/api/seed-data", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "Database already seeded", env.Message)
	assert.True(t, env.dataIsNull())
	assert.Equal(t, before, countDocs(t, set))
}

func TestProjectsExcludeInactive(t *testing.T) {
	app, set := newTestApp(t)
	_, err := set.Projects.Create(context.Background(), project.Project{Title: "Hidden", IsActive: false})
	require.NoError(t, err)

	status, env := do(t, app, fiber.MethodPost, "/api/projects", `{
		"title":"Orbit","description":"d","duration":"3 Days",
		"technologies":["Go"],"features":["fast"],
		"liveDemo":"https://orbit.space","github":"https://github.com/x/orbit","image":"https://img/orbit.png",
		"isActive":false}`)
	require.Equal(t, fiber.StatusOK, status, env.Message)
	var created project.Project
	env.decode(t, &created)
	assert.True(t, created.IsActive)
	assert.Equal(t, []string{}, created.Responsibilities)

	status, env = do(t, app, fiber.MethodGet, "/api/projects", "")
	require.Equal(t, fiber.StatusOK, status)
	var list []project.Project
	env.decode(t, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Orbit", list[0].Title)
	for _, p := range list {
		assert.True(t, p.IsActive)
	}
}

func TestProjectByID(t *testing.T) {
	app, _ := newTestApp(t)
	_, env := do(t, app, fiber.MethodPost, "/api/projects", `{
		"title":"Orbit","description":"d","duration":"3 Days",
		"technologies":["Go"],"features":["fast"],"responsibilities":["all"],
		"liveDemo":"l","github":"g","image":"i"}`)
	var created project.Project
	env.decode(t, &created)

	status, env := do(t, app, fiber.MethodGet, "/api/projects/"+created.ID, "")
	require.Equal(t, fiber.StatusOK, status)
	var got project.Project
	env.decode(t, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{"all"}, got.Responsibilities)
}

func TestProjectBogusID(t *testing.T) {
	app, _ := newTestApp(t)
	for _, id := range []string{"not-an-id", "507f1f77bcf86cd799439011", "2f1c7b1e-4a55-4a5e-9c62-0e2f1b8f0a11"} {
		status, env := do(t, app, fiber.MethodGet, "/api/projects/"+id, "")
		assert.Equal(t, fiber.StatusNotFound, status, id)
		assert.False(t, env.Success)
		assert.True(t, env.dataIsNull())
		assert.Equal(t, "Project not found", env.Message)
	}
}

func TestProjectMissingListsAreRejected(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := do(t, app, fiber.MethodPost, "/api/projects",
		`{"title":"Orbit","description":"d","duration":"3 Days","liveDemo":"l","github":"g","image":"i"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	fields := []string{}
	for _, d := range env.Detail {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"technologies", "features"}, fields)
}

func TestEducationOrdering(t *testing.T) {
	app, _ := newTestApp(t)
	_, _ = do(t, app, fiber.MethodPost, "/api/seed-data", "")

	status, env := do(t, app, fiber.MethodPost, "/api/education", `{
		"degree":"X","institution":"Y","board":"B","stream":"S",
		"performance":"90%","year":"2025","order":5}`)
	require.Equal(t, fiber.StatusOK, status, env.Message)

	status, env = do(t, app, fiber.MethodPost, "/api/education", `{
		"degree":"Unordered","institution":"Y","board":"B","stream":"S",
		"performance":"90%","year":"2025"}`)
	require.Equal(t, fiber.StatusOK, status, env.Message)

	status, env = do(t, app, fiber.MethodGet, "/api/education", "")
	require.Equal(t, fiber.StatusOK, status)
	var list []education.Education
	env.decode(t, &list)
	require.Len(t, list, 6)
	assert.Equal(t, 5, list[0].Order)
	assert.Equal(t, "X", list[0].Degree)
	assert.Equal(t, "Unordered", list[len(list)-1].Degree)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Order, list[i].Order)
	}
}

func TestIdentifiersAndTimestampsAreStrings(t *testing.T) {
	app, _ := newTestApp(t)
	_, _ = do(t, app, fiber.MethodPost, "/api/seed-data", "")

	for _, path := range []string{"/api/projects", "/api/education"} {
		_, env := do(t, app, fiber.MethodGet, path, "")
		var docs []map[string]any
		env.decode(t, &docs)
		require.NotEmpty(t, docs, path)
		for _, d := range docs {
			id, ok := d["id"].(string)
			assert.True(t, ok, path)
			assert.NotEmpty(t, id)
			ts, ok := d["createdAt"].(string)
			require.True(t, ok, path)
			_, err := time.Parse(time.RFC3339Nano, ts)
			assert.NoError(t, err)
		}
	}
}

func TestContactSubmitAndList(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := do(t, app, fiber.MethodPost, "/api/contact",
		`{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`)
	require.Equal(t, fiber.StatusOK, status, env.Message)
	assert.Equal(t, "Message sent successfully", env.Message)
	var m contact.Message
	env.decode(t, &m)
	assert.Equal(t, contact.StatusNew, m.Status)
	assert.Equal(t, "ada@example.com", m.Email)

	_, env = do(t, app, fiber.MethodGet, "/api/contact", "")
	var list []contact.Message
	env.decode(t, &list)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)
}

func TestContactBadEmailStoresNothing(t *testing.T) {
	app, set := newTestApp(t)

	status, env := do(t, app, fiber.MethodPost, "/api/contact",
		`{"name":"Ada","email":"ada.example.com","subject":"Hi","message":"Hello"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
	require.Len(t, env.Detail, 1)
	assert.Equal(t, "email", env.Detail[0].Field)
	assert.Equal(t, "email", env.Detail[0].Constraint)

	stored, err := set.Contact.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMalformedBodies(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := do(t, app, fiber.MethodPost, "/api/skills", `{"name":`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	require.NotEmpty(t, env.Detail)
	assert.Equal(t, "body", env.Detail[0].Field)

	status, env = do(t, app, fiber.MethodPost, "/api/skills",
		`{"category":"tools","name":"Git","level":"high","categoryType":"VCS"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	require.NotEmpty(t, env.Detail)
	assert.Equal(t, "level", env.Detail[0].Field)
	assert.Equal(t, "type", env.Detail[0].Constraint)

	req := httptest.NewRequest(fiber.MethodPost, "/api/contact", strings.NewReader("name=Ada"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := do(t, app, fiber.MethodGet, "/api/asteroids", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)
}

func TestPanicBecomesEnvelope(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/boom", func(*fiber.Ctx) error { panic("black hole") })
	status, env := do(t, app, fiber.MethodGet, "/boom", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "black hole")
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/skills", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://example.org")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(fiber.MethodOptions, "/api/contact", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://example.org")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodPost)
	req.Header.Set(fiber.HeaderAccessControlRequestHeaders, "X-Custom")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), fiber.MethodPost)
	assert.Equal(t, "X-Custom", resp.Header.Get(fiber.HeaderAccessControlAllowHeaders))
}


func TestErrorHandlerLogsStablePath(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	app := NewApp(zap.New(core))
	app.Get("/collapse", func(*fiber.Ctx) error { panic("supernova") })
	app.Get("/quiet", func(c *fiber.Ctx) error { return c.SendString("ok") })

	status, _ := do(t, app, fiber.MethodGet, "/collapse", "")
	require.Equal(t, fiber.StatusInternalServerError, status)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/quiet", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	unhandled := logs.FilterMessage("unhandled error").All()
	require.Len(t, unhandled, 1)
	assert.Equal(t, "/collapse", unhandled[0].ContextMap()["path"])
	assert.Equal(t, "GET", unhandled[0].ContextMap()["method"])
}

func TestBlankStringsAreRejected(t *testing.T) {
	app, set := newTestApp(t)

	for _, tc := range []struct {
		path, body, field, constraint string
	}{
		{"/api/skills", `{"category":"tools","name":"   ","level":50,"categoryType":"IDE"}`, "name", "notblank"},
		{"/api/skills", `{"category":"tools","name":"Vim","level":50,"categoryType":""}`, "categoryType", "required"},
		{"/api/contact", `{"name":"Ada","email":"ada@example.com","subject":"\t","message":"Hello"}`, "subject", "notblank"},
		{"/api/education", `{"degree":" ","institution":"Y","board":"B","stream":"S","performance":"1","year":"2020"}`, "degree", "notblank"},
	} {
		status, env := do(t, app, fiber.MethodPost, tc.path, tc.body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status, tc.body)
		require.Len(t, env.Detail, 1, tc.body)
		assert.Equal(t, tc.field, env.Detail[0].Field)
		assert.Equal(t, tc.constraint, env.Detail[0].Constraint)
	}

	ctx := context.Background()
	skills, err := set.Skills.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
	messages, err := set.Contact.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
	records, err := set.Education.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEducationOrderMustBeAnInteger(t *testing.T) {
	app, set := newTestApp(t)
	const fields = `"degree":"X","institution":"Y","board":"B","stream":"S","performance":"90%","year":"2025"`

	for _, bad := range []string{`null`, `"five"`, `2.5`} {
		status, env := do(t, app, fiber.MethodPost, "/api/education", `{`+fields+`,"order":`+bad+`}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status, bad)
		require.Len(t, env.Detail, 1, bad)
		assert.Equal(t, "order", env.Detail[0].Field, bad)
		assert.Equal(t, "type", env.Detail[0].Constraint, bad)
	}
	records, err := set.Education.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	status, env := do(t, app, fiber.MethodPost, "/api/education", `{`+fields+`,"order":-2}`)
	require.Equal(t, fiber.StatusOK, status)
	var created education.Education
	env.decode(t, &created)
	assert.Equal(t, -2, created.Order)
}
