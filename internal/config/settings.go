package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/samber/lo"
)

// Settings holds the runtime configuration read from the environment.
type Settings struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Generation Generation
	Sheets     Sheets
	CORS       CORS
}

// Generation selects the text-generation provider and its models.
type Generation struct {
	Provider      string  `env:"GENERATION_PROVIDER" envDefault:"gemini"`
	MockGenerator bool    `env:"MOCK_GENERATOR" envDefault:"false"`
	Temperature   float32 `env:"GENERATION_TEMPERATURE" envDefault:"0.8"`

	Gemini    ProviderSettings `envPrefix:"GEMINI_"`
	Anthropic ProviderSettings `envPrefix:"ANTHROPIC_"`
	OpenAI    ProviderSettings `envPrefix:"OPENAI_"`
}

// ProviderSettings is read once per provider prefix, e.g. GEMINI_API_KEY,
// GEMINI_MODEL and GEMINI_MODEL_FALLBACKS.
type ProviderSettings struct {
	APIKey    string   `env:"API_KEY"`
	Model     string   `env:"MODEL"`
	Fallbacks []string `env:"MODEL_FALLBACKS" envSeparator:","`
}

// Sheets configures spreadsheet access. Credentials are resolved by the
// googlesheets package in the order file, inline JSON, email+key pair.
type Sheets struct {
	TabName          string `env:"SHEETS_TAB_NAME" envDefault:"Sheet1"`
	ValueInputOption string `env:"SHEETS_VALUE_INPUT_OPTION" envDefault:"USER_ENTERED"`

	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`
	CredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON"`
	ClientEmail     string `env:"GOOGLE_CLIENT_EMAIL"`
	PrivateKey      string `env:"GOOGLE_PRIVATE_KEY"`
	ProjectID       string `env:"GOOGLE_PROJECT_ID"`
}

type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
}

// Load parses the environment into Settings.
func Load() (*Settings, error) {
	cfg := &Settings{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for _, p := range []*ProviderSettings{&cfg.Generation.Gemini, &cfg.Generation.Anthropic, &cfg.Generation.OpenAI} {
		p.Model = strings.TrimSpace(p.Model)
		p.Fallbacks = CleanList(p.Fallbacks)
	}
	cfg.Generation.Provider = strings.ToLower(strings.TrimSpace(cfg.Generation.Provider))
	if cfg.Generation.MockGenerator {
		cfg.Generation.Provider = "mock"
	}
	return cfg, nil
}

// Active returns the settings of the selected provider.
func (g Generation) Active() ProviderSettings {
	switch g.Provider {
	case "anthropic":
		return g.Anthropic
	case "openai":
		return g.OpenAI
	case "mock":
		return ProviderSettings{}
	default:
		return g.Gemini
	}
}

// CleanList trims every entry and drops the empty ones.
func CleanList(in []string) []string {
	trimmed := lo.Map(in, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Filter(trimmed, func(s string, _ int) bool { return s != "" })
}
