package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/usersapi/internal/app"
	"github.com/polkiloo/usersapi/internal/config"
	"github.com/polkiloo/usersapi/internal/server/http/dto"
	"github.com/polkiloo/usersapi/internal/server/http/handlers"
	"github.com/polkiloo/usersapi/internal/storage/memory"
	testhelpers "github.com/polkiloo/usersapi/internal/test"
	"github.com/polkiloo/usersapi/internal/usecase"
)

func testConfig() *config.Config {
	return &config.Config{
		LoginPattern: `^[A-Za-z0-9_-]+$`,
		MinPageSize:  1,
		MaxPageSize:  20,
	}
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := testConfig()
	rules, err := usecase.NewRules(cfg)
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	uc := usecase.NewUserUseCase(memory.New().Users(), usecase.NewValidator(rules), usecase.NewPaginator(rules))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(app.NewUsersFacade(uc), cfg, logger)
}

func do(engine *gin.Engine, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func create(t *testing.T, engine *gin.Engine, login string) string {
	t.Helper()
	resp := do(engine, http.MethodPost, "/api/users", []byte(`{"login":"`+login+`"}`), map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for create, got %d", resp.Code)
	}
	location := resp.Header().Get("Location")
	id := strings.TrimPrefix(location, "/api/users/")
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("unexpected location %q", location)
	}
	return id
}

func TestCreateThenFetchAsXML(t *testing.T) {
	engine := newEngine(t)
	id := create(t, engine, "alice_01")

	resp := do(engine, http.MethodGet, "/api/users/"+id, nil, map[string]string{"Accept": "application/xml"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.HasPrefix(body, "<UserDto>") || !strings.Contains(body, "<Id>"+id+"</Id>") || strings.Contains(body, "<guid>") {
		t.Fatalf("expected full xml object, got %q", body)
	}
	if !strings.Contains(body, "<FirstName>John</FirstName>") || !strings.Contains(body, "<LastName>Doe</LastName>") {
		t.Fatalf("expected default names, got %q", body)
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestCreateJSONBodyIsBareID(t *testing.T) {
	engine := newEngine(t)
	resp := do(engine, http.MethodPost, "/api/users", []byte(`{"login":"bob","firstName":"Bob","lastName":"Builder"}`), nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var id string
	if err := json.Unmarshal(resp.Body.Bytes(), &id); err != nil {
		t.Fatalf("expected json string body: %v", err)
	}
	if resp.Header().Get("Location") != "/api/users/"+id {
		t.Fatalf("location %q does not match body %q", resp.Header().Get("Location"), id)
	}
}

func TestListPaging(t *testing.T) {
	engine := newEngine(t)
	ids := []string{create(t, engine, "u1"), create(t, engine, "u2"), create(t, engine, "u3")}

	resp := do(engine, http.MethodGet, "/api/users?pageSize=0", nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var users []dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(users) != 1 || users[0].ID.String() != ids[0] {
		t.Fatalf("expected first user only, got %+v", users)
	}
	var pagination dto.Pagination
	if err := json.Unmarshal([]byte(resp.Header().Get(handlers.PaginationHeader)), &pagination); err != nil {
		t.Fatalf("decode pagination: %v", err)
	}
	if pagination.PageSize != 1 || pagination.TotalCount != 3 || pagination.TotalPages != 3 || !pagination.HasNext || pagination.HasPrevious {
		t.Fatalf("unexpected pagination %+v", pagination)
	}

	resp = do(engine, http.MethodGet, "/api/users?pageNumber=2&pageSize=2", nil, map[string]string{"Accept": "application/xml"})
	body := resp.Body.String()
	if !strings.HasPrefix(body, "<ArrayOfUserDto>") || strings.Count(body, "<UserDto>") != 1 || !strings.Contains(body, ids[2]) {
		t.Fatalf("unexpected second page %q", body)
	}

	resp = do(engine, http.MethodGet, "/api/users?pageNumber=9&pageSize=2", nil, map[string]string{"Accept": "text/plain"})
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("expected empty json page, got %d %q", resp.Code, resp.Body.String())
	}
}

func TestListHugePageNumbers(t *testing.T) {
	engine := newEngine(t)
	for _, login := range []string{"u1", "u2", "u3"} {
		create(t, engine, login)
	}

	tests := []struct {
		name       string
		pageNumber string
		pageSize   int
	}{
		{name: "max int", pageNumber: strconv.Itoa(math.MaxInt), pageSize: 20},
		{name: "offset wraps to zero", pageNumber: strconv.Itoa(math.MaxInt/2 + 2), pageSize: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/users?pageNumber=" + tt.pageNumber + "&pageSize=" + strconv.Itoa(tt.pageSize)
			resp := do(engine, http.MethodGet, target, nil, nil)
			if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
				t.Fatalf("expected empty page, got %d %q", resp.Code, resp.Body.String())
			}
			var pagination dto.Pagination
			if err := json.Unmarshal([]byte(resp.Header().Get(handlers.PaginationHeader)), &pagination); err != nil {
				t.Fatalf("decode pagination: %v", err)
			}
			if strconv.Itoa(pagination.CurrentPage) != tt.pageNumber || pagination.TotalCount != 3 || pagination.HasNext || !pagination.HasPrevious {
				t.Fatalf("unexpected pagination %+v", pagination)
			}
		})
	}
}

func TestPaginationHeaderKeepsLiteralAmpersand(t *testing.T) {
	engine := newEngine(t)
	create(t, engine, "u1")
	create(t, engine, "u2")

	resp := do(engine, http.MethodGet, "/api/users?pageNumber=1&pageSize=1", nil, nil)
	header := resp.Header().Get(handlers.PaginationHeader)
	if !strings.Contains(header, `"nextPageLink":"/api/users?pageNumber=2&pageSize=1"`) {
		t.Fatalf("unexpected pagination header %q", header)
	}
}

func TestBodylessResponsesAreNotCompressed(t *testing.T) {
	engine := newEngine(t)
	id := create(t, engine, "dora")

	resp := do(engine, http.MethodPatch, "/api/users/"+id, []byte(`[{"op":"replace","path":"firstName","value":"Dora"}]`), map[string]string{"Accept-Encoding": "gzip"})
	if resp.Code != http.StatusNoContent || resp.Header().Get("Content-Encoding") != "" {
		t.Fatalf("expected plain 204 for patch, got %d %v", resp.Code, resp.Header())
	}

	resp = do(engine, http.MethodDelete, "/api/users/"+id, nil, map[string]string{"Accept-Encoding": "gzip"})
	if resp.Code != http.StatusNoContent || resp.Header().Get("Content-Encoding") != "" || resp.Body.Len() != 0 {
		t.Fatalf("expected plain 204 for delete, got %d %v", resp.Code, resp.Header())
	}
}

func TestPatchAndDeleteFlow(t *testing.T) {
	engine := newEngine(t)
	id := create(t, engine, "carol")

	resp := do(engine, http.MethodPatch, "/api/users/"+id, []byte(`[{"op":"replace","path":"firstName","value":"Carol"},{"op":"replace","path":"gamesPlayed","value":"9"}]`), map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	resp = do(engine, http.MethodPatch, "/api/users/"+id, []byte(`[{"op":"replace","path":"lastName","value":"Ok"},{"op":"replace","path":"login","value":"bad login"}]`), nil)
	if resp.Code != http.StatusUnprocessableEntity || resp.Body.String() != `{"login":"Invalid login"}` {
		t.Fatalf("expected 422 with login error, got %d %q", resp.Code, resp.Body.String())
	}

	resp = do(engine, http.MethodGet, "/api/users/"+id, nil, nil)
	var user dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.FirstName != "Carol" || user.LastName != "Doe" || user.GamesPlayed != 0 || user.Login != "carol" {
		t.Fatalf("unexpected user after patches %+v", user)
	}

	resp = do(engine, http.MethodDelete, "/api/users/"+id, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	for _, method := range []string{http.MethodDelete, http.MethodHead, http.MethodGet} {
		resp = do(engine, method, "/api/users/"+id, nil, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s after delete, got %d", method, resp.Code)
		}
	}
}

func TestHeadAndOptions(t *testing.T) {
	engine := newEngine(t)
	id := create(t, engine, "dave")

	resp := do(engine, http.MethodHead, "/api/users/"+id, nil, nil)
	if resp.Code != http.StatusOK || resp.Header().Get("Content-Type") != "application/json; charset=utf-8" || resp.Body.Len() != 0 {
		t.Fatalf("unexpected head response %d %q %q", resp.Code, resp.Header().Get("Content-Type"), resp.Body.String())
	}

	resp = do(engine, http.MethodHead, "/api/users/"+uuid.NewString(), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", resp.Code)
	}

	resp = do(engine, http.MethodOptions, "/api/users", nil, nil)
	if resp.Code != http.StatusOK || resp.Header().Get("Allow") != "POST, GET, OPTIONS" {
		t.Fatalf("unexpected options response %d %q", resp.Code, resp.Header().Get("Allow"))
	}
}

func TestUnknownRoutes(t *testing.T) {
	engine := newEngine(t)
	for _, target := range []string{"/api/users/login/extra", "/api/user", "/"} {
		resp := do(engine, http.MethodGet, target, nil, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", target, resp.Code)
		}
	}
	resp := do(engine, http.MethodGet, "/api/users/login", nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-guid id, got %d", resp.Code)
	}
}

func TestGzipRoundTrip(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"login":"zipped"}`))
	_ = gz.Close()

	resp := do(engine, http.MethodPost, "/api/users", buf.Bytes(), map[string]string{"Content-Encoding": "gzip", "Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for gzip body, got %d", resp.Code)
	}
	id := strings.TrimPrefix(resp.Header().Get("Location"), "/api/users/")

	resp = do(engine, http.MethodGet, "/api/users/"+id, nil, map[string]string{"Accept-Encoding": "gzip"})
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got headers %v", resp.Header())
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	data, _ := io.ReadAll(reader)
	if !strings.Contains(string(data), `"login":"zipped"`) {
		t.Fatalf("unexpected decompressed body %q", data)
	}
}

func TestRateLimitedRouter(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.UserFacadeStub{}, cfg, logger)

	if resp := do(engine, http.MethodOptions, "/api/users", nil, nil); resp.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", resp.Code)
	}
	if resp := do(engine, http.MethodOptions, "/api/users", nil, nil); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
}

var _ handlers.UserFacade = testhelpers.UserFacadeStub{}
