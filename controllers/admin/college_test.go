package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examdesk/apiclient"
	"examdesk/models"
	"examdesk/validators"
	collegeValidator "examdesk/validators/college"
)

// fakeExamService is a stateful stand-in for the college endpoints
type fakeExamService struct {
	mu       sync.Mutex
	colleges []models.College
	requests int
	lastBody models.CollegeForm
}

func (f *fakeExamService) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests++

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/colleges":
			json.NewEncoder(w).Encode(f.colleges)
		case r.Method == http.MethodPost && r.URL.Path == "/colleges":
			json.NewDecoder(r.Body).Decode(&f.lastBody)
			f.colleges = append(f.colleges, models.College{
				ID:       "c1",
				Name:     f.lastBody.Name,
				Code:     f.lastBody.Code,
				IsActive: true,
			})
			json.NewEncoder(w).Encode(map[string]string{"message": "College created successfully!"})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/colleges/"):
			id := strings.TrimPrefix(r.URL.Path, "/colleges/")
			for i := range f.colleges {
				if f.colleges[i].ID == id {
					f.colleges[i].IsActive = false
				}
			}
			json.NewEncoder(w).Encode(map[string]string{"message": "College deactivated successfully!"})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not found!"})
		}
	})
}

func (f *fakeExamService) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

// fakeAuth stands in for the route gate: the handlers only need the
// token local it would have set.
func fakeAuth(c *fiber.Ctx) error {
	c.Locals("token", "tok-admin")
	return c.Next()
}

func collegeApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin/colleges", fakeAuth, ListColleges)
	app.Post("/admin/colleges", fakeAuth, collegeValidator.Save(), CreateCollege)
	app.Put("/admin/colleges/:id", fakeAuth, collegeValidator.Save(), UpdateCollege)
	app.Delete("/admin/colleges/:id", fakeAuth, validators.Confirm(), DeactivateCollege)
	return app
}

func jsonRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) (string, map[string]interface{}) {
	t.Helper()
	var env struct {
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Message, env.Data
}

func TestCreateCollegeValidatedBeforeNetwork(t *testing.T) {
	fake := &fakeExamService{}
	server := httptest.NewServer(fake.handler())
	defer server.Close()
	apiclient.Configure(server.URL)

	app := collegeApp()
	resp, err := app.Test(jsonRequest("POST", "/admin/colleges", `{"name":"","code":"eng"}`), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	message, data := decodeEnvelope(t, resp)
	assert.Equal(t, "Validation failed!", message)
	assert.Contains(t, data, "name")
	assert.Zero(t, fake.requestCount(), "invalid form must not reach the service")
}

func TestCreateCollegeRefetchesList(t *testing.T) {
	fake := &fakeExamService{}
	server := httptest.NewServer(fake.handler())
	defer server.Close()
	apiclient.Configure(server.URL)

	app := collegeApp()
	resp, err := app.Test(jsonRequest("POST", "/admin/colleges", `{"name":" Engineering ","code":"eng"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// the code reaches the service uppercased, the name trimmed
	assert.Equal(t, "ENG", fake.lastBody.Code)
	assert.Equal(t, "Engineering", fake.lastBody.Name)

	// create + re-fetch: the response carries the fresh list
	assert.Equal(t, 2, fake.requestCount())
	message, data := decodeEnvelope(t, resp)
	assert.Equal(t, "College created successfully!", message)
	colleges := data["colleges"].([]interface{})
	require.Len(t, colleges, 1)
}

func TestDeactivateCollegeKeepsRowVisible(t *testing.T) {
	fake := &fakeExamService{colleges: []models.College{
		{ID: "c1", Name: "Engineering", Code: "ENG", IsActive: true},
		{ID: "c2", Name: "Science", Code: "SCI", IsActive: true},
	}}
	server := httptest.NewServer(fake.handler())
	defer server.Close()
	apiclient.Configure(server.URL)

	app := collegeApp()

	// no confirmation, no upstream call
	resp, err := app.Test(jsonRequest("DELETE", "/admin/colleges/c1", ""), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, fake.requestCount())

	resp, err = app.Test(jsonRequest("DELETE", "/admin/colleges/c1?confirm=true", ""), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	message, data := decodeEnvelope(t, resp)
	assert.Equal(t, "College deactivated successfully!", message)

	// the deactivated row is still listed, flagged inactive
	colleges := data["colleges"].([]interface{})
	require.Len(t, colleges, 2)
	first := colleges[0].(map[string]interface{})
	assert.Equal(t, "c1", first["_id"])
	assert.Equal(t, false, first["isActive"])
	second := colleges[1].(map[string]interface{})
	assert.Equal(t, true, second["isActive"])
}

func TestCollegeListServiceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	apiclient.Configure(server.URL)

	app := collegeApp()
	resp, err := app.Test(jsonRequest("GET", "/admin/colleges", ""), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	message, _ := decodeEnvelope(t, resp)
	assert.Equal(t, "Exam service unreachable!", message)
}
