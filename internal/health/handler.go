package health

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

type Handler struct {
	settings          *config.Settings
	credentialsSource string
}

// NewHandler takes the resolved credentials source ("" when unresolved) so the
// debug endpoint can report it without exposing values.
func NewHandler(settings *config.Settings, credentialsSource string) *Handler {
	return &Handler{settings: settings, credentialsSource: credentialsSource}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"route": "api root alive",
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":  true,
		"env": h.settings.Env,
	})
}

// Debug reports which credential variables are set. Values are never echoed.
func (h *Handler) Debug(w http.ResponseWriter, r *http.Request) {
	gen := h.settings.Generation
	sh := h.settings.Sheets

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"provider": gen.Provider,
		"envSeen": map[string]bool{
			"GEMINI_API_KEY":          isSet(gen.Gemini.APIKey),
			"ANTHROPIC_API_KEY":       isSet(gen.Anthropic.APIKey),
			"OPENAI_API_KEY":          isSet(gen.OpenAI.APIKey),
			"GOOGLE_CREDENTIALS_FILE": isSet(sh.CredentialsFile),
			"GOOGLE_CREDENTIALS_JSON": isSet(sh.CredentialsJSON),
			"GOOGLE_PROJECT_ID":       isSet(sh.ProjectID),
			"GOOGLE_CLIENT_EMAIL":     isSet(sh.ClientEmail),
			"GOOGLE_PRIVATE_KEY":      isSet(sh.PrivateKey),
		},
		"sheetsCredentialsSource": h.credentialsSource,
		"tip":                     "Only booleans shown for safety",
	})
}

func isSet(v string) bool { return strings.TrimSpace(v) != "" }
