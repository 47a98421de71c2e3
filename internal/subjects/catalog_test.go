package subjects_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizforge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizforge-lambda/internal/subjects"
)

func TestLoadEmbeddedTaxonomy(t *testing.T) {
	c, err := subjects.Load()
	require.NoError(t, err)
	require.Len(t, c.Subjects, 5)

	want := map[string]aiquiz.Strategy{
		"English":                 aiquiz.StrategyReading,
		"Current Affairs & GK":    aiquiz.StrategyCurrentAffair,
		"Legal Reasoning":         aiquiz.StrategyLegal,
		"Logical Reasoning":       aiquiz.StrategyLogical,
		"Quantitative Techniques": aiquiz.StrategyQuant,
	}
	for name, strategy := range want {
		s, ok := c.Find(name)
		require.True(t, ok, name)
		assert.Equal(t, strategy, s.Strategy, name)
		assert.NotEmpty(t, s.Subtopics, name)
	}

	english, _ := c.Find(" english ")
	assert.Contains(t, english.Tones, "narrative")
}

func TestParseRejectsIncompleteSubjects(t *testing.T) {
	_, err := subjects.Parse([]byte("subjects:\n  - name: Empty\n"))
	assert.Error(t, err)

	_, err = subjects.Parse([]byte("subjects:\n  - subtopics: [a]\n"))
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	c, err := subjects.Load()
	require.NoError(t, err)
	routes := subjects.Routes(subjects.NewHandler(c))

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body subjects.Catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Subjects, 5)

	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+url.PathEscape("Legal Reasoning"), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"strategy":"legal-reasoning"`)

	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Astronomy", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
