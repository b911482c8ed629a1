package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"feedbackhub/backend/config"
	"feedbackhub/backend/models"
	"feedbackhub/backend/routes"
	"feedbackhub/backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// the in-memory database lives in a single connection
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{ServerPort: "8080", SessionExpiry: 1}
	store := utils.NewSessionStore(cfg)

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg, store)
	return app, db
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeObject(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func decodeArray(t *testing.T, resp *http.Response) []interface{} {
	t.Helper()
	var result []interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func sessionCookie(resp *http.Response) string {
	header := resp.Header.Get("Set-Cookie")
	if header == "" {
		return ""
	}
	return strings.SplitN(header, ";", 2)[0]
}

func signupAndLogin(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	resp := performRequest(t, app, "POST", "/api/auth/signup",
		map[string]string{"username": username, "password": password}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = performRequest(t, app, "POST", "/api/auth/login",
		map[string]string{"username": username, "password": password}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotEmpty(t, cookie)
	return cookie
}
