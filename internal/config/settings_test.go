package config_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GENERATION_PROVIDER", "")
	t.Setenv("SHEETS_TAB_NAME", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Sheet1", cfg.Sheets.TabName)
	assert.Equal(t, "USER_ENTERED", cfg.Sheets.ValueInputOption)
	assert.InDelta(t, 0.8, cfg.Generation.Temperature, 0.0001)
}

func TestLoadProviderPrefixes(t *testing.T) {
	t.Setenv("GENERATION_PROVIDER", " Anthropic ")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_MODEL_FALLBACKS", " gemini-1.5-pro, ,gemini-1.5-flash ")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Generation.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Generation.Gemini.Model)
	assert.Equal(t, []string{"gemini-1.5-pro", "gemini-1.5-flash"}, cfg.Generation.Gemini.Fallbacks)

	active := cfg.Generation.Active()
	assert.Equal(t, "sk-ant", active.APIKey)
	assert.Equal(t, "claude-sonnet-4-5-20250929", active.Model)
}

func TestLoadMockGeneratorOverridesProvider(t *testing.T) {
	t.Setenv("GENERATION_PROVIDER", "openai")
	t.Setenv("MOCK_GENERATOR", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.Generation.Provider)
}

func TestErrorWritesStableBody(t *testing.T) {
	rec := httptest.NewRecorder()
	config.Error(rec, http.StatusBadGateway, "LLM output could not be parsed")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"LLM output could not be parsed"}`, rec.Body.String())
}
