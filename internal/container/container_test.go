package container_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/container"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	settings := &config.Settings{Env: "test"}
	settings.Generation.Provider = "mock"
	settings.Sheets.TabName = "Sheet1"
	settings.CORS.AllowedOrigins = []string{"*"}

	c, err := container.Build(context.Background(), settings)
	require.NoError(t, err)
	return c.Router()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRoutes(t *testing.T) {
	h := newRouter(t)

	rec := do(h, http.MethodGet, "/api", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"route":"api root alive"}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/health", "")
	assert.JSONEq(t, `{"ok":true,"env":"test"}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/subjects", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quantitative Techniques")
}

func TestGenerateWithMockProvider(t *testing.T) {
	h := newRouter(t)

	rec := do(h, http.MethodPost, "/api/generate", `{"subject":"English","subtopic":"Satire"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Generation-ID"))
	assert.Contains(t, rec.Body.String(), `"passage":"[Mock]`)

	rec = do(h, http.MethodGet, "/metrics", "")
	assert.Contains(t, rec.Body.String(), `quizforge_generations_total{outcome="success",strategy="reading"} 1`)
}

func TestExportWithoutCredentials(t *testing.T) {
	h := newRouter(t)

	body := `{"sheetUrlOrId":"https://docs.google.com/spreadsheets/d/ABC123xyz/edit","payload":{"passage":"P","questions":[{"question":"Q","options":["a","b","c","d"],"correct_index":0}]}}`
	rec := do(h, http.MethodPost, "/api/export", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Google Sheets credentials are not configured")
}
