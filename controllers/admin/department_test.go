package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examdesk/apiclient"
	"examdesk/config"
	"examdesk/middleware"
	"examdesk/session"
)

func departmentOptionsApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	storage, err := session.NewStorage(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })
	middleware.InitSessionStore(storage)

	app := fiber.New()
	// establishes the session cookie the way a login would
	app.Get("/prime", func(c *fiber.Ctx) error {
		sess, err := middleware.CurrentSession(c)
		require.NoError(t, err)
		sess.Set("token", "tok-admin")
		return sess.Save()
	})
	app.Get("/admin/colleges/:id/departments", fakeAuth, DepartmentOptions)
	return app
}

type optionsEnvelope struct {
	Message string `json:"message"`
	Data    struct {
		Departments []map[string]interface{} `json:"departments"`
		College     string                   `json:"college"`
		Stale       bool                     `json:"stale"`
	} `json:"data"`
}

func fetchOptions(t *testing.T, app *fiber.App, collegeID string, cookies []*http.Cookie) optionsEnvelope {
	t.Helper()
	req := httptest.NewRequest("GET", "/admin/colleges/"+collegeID+"/departments", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env optionsEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestDepartmentOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/colleges/c1/departments", r.URL.Path)
		w.Write([]byte(`[{"_id":"d1","name":"Computer Science","code":"CS","isActive":true}]`))
	}))
	defer server.Close()
	apiclient.Configure(server.URL)

	app := departmentOptionsApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/prime", nil), -1)
	require.NoError(t, err)

	env := fetchOptions(t, app, "c1", resp.Cookies())
	assert.Equal(t, "Departments fetched successfully!", env.Message)
	assert.False(t, env.Data.Stale)
	assert.Equal(t, "c1", env.Data.College)
	require.Len(t, env.Data.Departments, 1)
	assert.Equal(t, "Computer Science", env.Data.Departments[0]["name"])
}

// A department fetch that outlives its college selection must not hand
// the old college's options to the new selection.
func TestDepartmentOptionsDiscardsSuperseded(t *testing.T) {
	c1Arrived := make(chan struct{})
	c1Release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/colleges/c1/departments":
			close(c1Arrived)
			<-c1Release // first fetch hangs until the second completes
			w.Write([]byte(`[{"_id":"d-old","name":"Old Options","code":"OLD","isActive":true}]`))
		case "/colleges/c2/departments":
			w.Write([]byte(`[{"_id":"d-new","name":"New Options","code":"NEW","isActive":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()
	apiclient.Configure(server.URL)

	app := departmentOptionsApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/prime", nil), -1)
	require.NoError(t, err)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	slow := make(chan optionsEnvelope, 1)
	go func() {
		slow <- fetchOptions(t, app, "c1", cookies)
	}()
	<-c1Arrived

	// the user changed the selection while c1 was still loading
	fast := fetchOptions(t, app, "c2", cookies)
	assert.False(t, fast.Data.Stale)
	require.Len(t, fast.Data.Departments, 1)
	assert.Equal(t, "New Options", fast.Data.Departments[0]["name"])

	close(c1Release)
	stale := <-slow
	assert.True(t, stale.Data.Stale)
	assert.Empty(t, stale.Data.Departments, "superseded options must be dropped")
}
