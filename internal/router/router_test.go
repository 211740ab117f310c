package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/handler"
	"github.com/deppfellow/portfolio-backend/internal/repository"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func testConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: config.ModeLocal},
		Server: config.ServerConfig{
			Port:                     "0",
			ReadTimeout:              1,
			WriteTimeout:             1,
			IdleTimeout:              1,
			CORSAllowedOrigins:       []string{"http://localhost:3000"},
			FormMessageRatePerMinute: -1,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{Config: cfg, Logger: &logger}

	services, err := service.NewServices(s, repository.NewMemoryRepositories())
	if err != nil {
		t.Fatalf("NewServices: %v", err)
	}
	return NewRouter(s, handler.NewHandlers(s, services))
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t, testConfig()), http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[map[string]string](t, rec); got["message"] != "OK!" {
		t.Fatalf("body = %v", got)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("response should carry a request id")
	}
}

func TestListsStartEmpty(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, testConfig())
	for _, path := range []string{"/form-messages", "/work-experience", "/personal-projects"} {
		rec := do(t, e, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, rec.Code)
		}
		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Fatalf("GET %s body = %q, want []", path, rec.Body.String())
		}
	}
}

func TestCreateAndListFormMessage(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, testConfig())

	rec := do(t, e, http.MethodPost, "/form-message", `{"name":"Ada Lovelace","email":"ada@example.com","message":"Hello!","extra":"ignored"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	created := decode[map[string]any](t, rec)
	if id, _ := created["id"].(string); id == "" {
		t.Fatalf("id missing: %v", created)
	}
	createdAt, _ := created["created_at"].(string)
	if !strings.Contains(createdAt, "T") || !strings.HasSuffix(createdAt, "Z") {
		t.Fatalf("created_at = %q, want an RFC 3339 UTC timestamp", createdAt)
	}
	if _, ok := created["extra"]; ok {
		t.Fatalf("unknown fields must not be echoed: %v", created)
	}

	list := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/form-messages", ""))
	if len(list) != 1 || list[0]["id"] != created["id"] {
		t.Fatalf("list = %v", list)
	}
}

func TestCreateFormMessageValidation(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, testConfig())

	rec := do(t, e, http.MethodPost, "/form-message", `{"email":"ada@example.com","message":"hi"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	body := decode[errs.HTTPError](t, rec)
	if body.Status != http.StatusUnprocessableEntity || len(body.Errors) != 1 || body.Errors[0].Field != "name" {
		t.Fatalf("body = %+v", body)
	}

	list := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/form-messages", ""))
	if len(list) != 0 {
		t.Fatalf("a rejected payload must not be stored: %v", list)
	}
}

func TestMalformedJSONIs422(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t, testConfig()), http.MethodPost, "/personal-project", `{"name":`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestCreateWorkExperience(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, testConfig())

	rec := do(t, e, http.MethodPost, "/work-experience",
		`{"company":"Acme","position":"Engineer","description":"Built things","skills":"Go","start_date":"2020-01-15"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	created := decode[map[string]any](t, rec)
	skills, _ := created["skills"].([]any)
	if len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("skills = %v, want [Go]", created["skills"])
	}
	if v, ok := created["end_date"]; !ok || v != nil {
		t.Fatalf("end_date = %v, want null", v)
	}
	if created["start_date"] != "2020-01-15" {
		t.Fatalf("start_date = %v", created["start_date"])
	}

	do(t, e, http.MethodPost, "/work-experience",
		`{"company":"Initech","position":"Lead","description":"Led things","start_date":"2023-03-01","end_date":"2024-01-31"}`)

	list := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/work-experience", ""))
	if len(list) != 2 || list[0]["company"] != "Initech" {
		t.Fatalf("list should be newest first: %v", list)
	}
}

func TestCreateWorkExperienceRejectsBadInput(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, testConfig())

	cases := map[string]string{
		"bad date":       `{"company":"c","position":"p","description":"d","start_date":"2020-13-01"}`,
		"missing start":  `{"company":"c","position":"p","description":"d"}`,
		"numeric skills": `{"company":"c","position":"p","description":"d","start_date":"2020-01-01","skills":[1]}`,
		"null skill":     `{"company":"c","position":"p","description":"d","start_date":"2020-01-01","skills":["a",null]}`,
		"long company":   `{"company":"` + strings.Repeat("c", 256) + `","position":"p","description":"d","start_date":"2020-01-01"}`,
	}
	for name, body := range cases {
		if rec := do(t, e, http.MethodPost, "/work-experience", body); rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: status = %d, want 422 (%s)", name, rec.Code, rec.Body.String())
		}
	}

	list := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/work-experience", ""))
	if len(list) != 0 {
		t.Fatalf("rejected payloads must not be stored: %v", list)
	}
}

func TestCreateWorkExperienceEchoesEarliestDate(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, testConfig())

	rec := do(t, e, http.MethodPost, "/work-experience",
		`{"company":"c","position":"p","description":"d","start_date":"0001-01-01"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if got := decode[map[string]any](t, rec); got["start_date"] != "0001-01-01" {
		t.Fatalf("start_date = %v, want 0001-01-01", got["start_date"])
	}

	list := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/work-experience", ""))
	if len(list) != 1 || list[0]["start_date"] != "0001-01-01" {
		t.Fatalf("list = %v", list)
	}
}

func TestCreatePersonalProject(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, testConfig())

	first := decode[map[string]any](t, do(t, e, http.MethodPost, "/personal-project",
		`{"name":"site","description":"my site","skills":["Go","Astro"],"url":"https://ihh.dev"}`))
	if first["url"] != "https://ihh.dev" {
		t.Fatalf("url = %v", first["url"])
	}

	// A later request without skills must not inherit the previous payload.
	second := decode[map[string]any](t, do(t, e, http.MethodPost, "/personal-project",
		`{"name":"cli","description":"a tool","skills":[]}`))
	if v, ok := second["skills"]; !ok || v != nil {
		t.Fatalf("skills = %v, want null", v)
	}
	if v, ok := second["url"]; !ok || v != nil {
		t.Fatalf("url = %v, want null", v)
	}

	list := decode[[]map[string]any](t, do(t, e, http.MethodGet, "/personal-projects", ""))
	if len(list) != 2 || list[0]["name"] != "site" || list[1]["name"] != "cli" {
		t.Fatalf("list = %v", list)
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t, testConfig()), http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decode[errs.HTTPError](t, rec); body.Message != "Route not found" {
		t.Fatalf("body = %+v", body)
	}
}

func TestFormMessageRateLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Server.FormMessageRatePerMinute = 2
	e := newTestRouter(t, cfg)

	body := `{"name":"n","email":"e@example.com","message":"m"}`
	for i := 0; i < 2; i++ {
		if rec := do(t, e, http.MethodPost, "/form-message", body); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}

	rec := do(t, e, http.MethodPost, "/form-message", body)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}

	if rec := do(t, e, http.MethodGet, "/form-messages", ""); rec.Code != http.StatusOK {
		t.Fatalf("reads should not be rate limited, got %d", rec.Code)
	}
}

func TestFormMessagesRequireSessionWhenClerkConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.SecretKey = "sk_test_portfolio"
	e := newTestRouter(t, cfg)

	rec := do(t, e, http.MethodGet, "/form-messages", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	if rec := do(t, e, http.MethodGet, "/work-experience", ""); rec.Code != http.StatusOK {
		t.Fatalf("public routes stay open, got %d", rec.Code)
	}
}

func TestStatusAndDocs(t *testing.T) {
	t.Parallel()

	e := newTestRouter(t, testConfig())

	rec := do(t, e, http.MethodGet, "/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d body = %s", rec.Code, rec.Body.String())
	}
	if got := decode[map[string]any](t, rec); got["status"] != "healthy" {
		t.Fatalf("status body = %v", got)
	}

	rec = do(t, e, http.MethodGet, "/docs/openapi.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("openapi status = %d", rec.Code)
	}
	doc := decode[map[string]any](t, rec)
	paths, _ := doc["paths"].(map[string]any)
	for _, path := range []string{"/form-messages", "/form-message", "/work-experience", "/personal-projects", "/personal-project"} {
		if _, ok := paths[path]; !ok {
			t.Fatalf("openapi document is missing %s", path)
		}
	}

	if rec := do(t, e, http.MethodGet, "/docs", ""); rec.Code != http.StatusOK {
		t.Fatalf("docs UI status = %d", rec.Code)
	}
}
