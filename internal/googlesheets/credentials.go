package googlesheets

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/sheets/v4"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

const (
	SourceFile       = "GOOGLE_CREDENTIALS_FILE"
	SourceInlineJSON = "GOOGLE_CREDENTIALS_JSON"
	SourceKeyPair    = "GOOGLE_CLIENT_EMAIL+GOOGLE_PRIVATE_KEY"
)

const credentialsRemedy = "set GOOGLE_CREDENTIALS_FILE, GOOGLE_CREDENTIALS_JSON, or both GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY for a service account with edit access to the sheet"

// Credentials is a resolved service-account identity.
type Credentials struct {
	Config    *jwt.Config
	ProjectID string
	Source    string
}

// ResolveCredentials picks the first configured source: a credentials file,
// inline JSON (raw or base64), then an email and private key pair.
func ResolveCredentials(s config.Sheets) (*Credentials, error) {
	switch {
	case strings.TrimSpace(s.CredentialsFile) != "":
		data, err := os.ReadFile(strings.TrimSpace(s.CredentialsFile))
		if err != nil {
			return nil, &apperror.ConfigError{Msg: fmt.Sprintf("cannot read %s: %v", SourceFile, err), Remedy: credentialsRemedy}
		}
		return fromJSON(data, SourceFile, s.ProjectID)

	case strings.TrimSpace(s.CredentialsJSON) != "":
		data, err := decodeInlineJSON(s.CredentialsJSON)
		if err != nil {
			return nil, &apperror.ConfigError{Msg: SourceInlineJSON + " is neither JSON nor base64-encoded JSON", Remedy: credentialsRemedy}
		}
		return fromJSON(data, SourceInlineJSON, s.ProjectID)

	case strings.TrimSpace(s.ClientEmail) != "" || strings.TrimSpace(s.PrivateKey) != "":
		if strings.TrimSpace(s.ClientEmail) == "" || strings.TrimSpace(s.PrivateKey) == "" {
			return nil, &apperror.ConfigError{Msg: "GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY must be set together", Remedy: credentialsRemedy}
		}
		key, err := NormalizePrivateKey(s.PrivateKey)
		if err != nil {
			return nil, err
		}
		return &Credentials{
			Config: &jwt.Config{
				Email:      strings.TrimSpace(s.ClientEmail),
				PrivateKey: key,
				Scopes:     []string{sheets.SpreadsheetsScope},
				TokenURL:   google.JWTTokenURL,
			},
			ProjectID: strings.TrimSpace(s.ProjectID),
			Source:    SourceKeyPair,
		}, nil
	}

	return nil, &apperror.ConfigError{Msg: "Google Sheets credentials are not configured", Remedy: credentialsRemedy}
}

func fromJSON(data []byte, source, projectID string) (*Credentials, error) {
	cfg, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, &apperror.ConfigError{Msg: fmt.Sprintf("%s is not a valid service account key: %v", source, err), Remedy: credentialsRemedy}
	}
	return &Credentials{Config: cfg, ProjectID: strings.TrimSpace(projectID), Source: source}, nil
}

func decodeInlineJSON(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "{") {
		return []byte(s), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return nil, fmt.Errorf("decoded value is not a JSON object")
	}
	return decoded, nil
}

// NormalizePrivateKey accepts a PEM key with real or escaped ("\n") newlines,
// base64 of a PEM key, or base64 of a DER key, and returns PEM bytes.
func NormalizePrivateKey(raw string) ([]byte, error) {
	key := unescapeNewlines(strings.Trim(strings.TrimSpace(raw), `"`))

	if !strings.Contains(key, "-----BEGIN") {
		decoded, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(key), ""))
		if err != nil {
			return nil, invalidKey("it is neither PEM nor base64")
		}
		if strings.Contains(string(decoded), "-----BEGIN") {
			key = unescapeNewlines(string(decoded))
		} else {
			key = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: decoded}))
		}
	}

	block, _ := pem.Decode([]byte(key))
	if block == nil {
		return nil, invalidKey("no PEM block could be decoded")
	}
	if _, err := x509.ParsePKCS8PrivateKey(block.Bytes); err != nil {
		if _, err1 := x509.ParsePKCS1PrivateKey(block.Bytes); err1 != nil {
			return nil, invalidKey(err.Error())
		}
	}
	return []byte(key), nil
}

func unescapeNewlines(s string) string {
	s = strings.ReplaceAll(s, `\r\n`, "\n")
	return strings.ReplaceAll(s, `\n`, "\n")
}

func invalidKey(reason string) error {
	return &apperror.ConfigError{
		Msg:    "GOOGLE_PRIVATE_KEY is invalid: " + reason,
		Remedy: "paste the private_key field of the service account JSON, keeping \\n escapes, or base64-encode it",
	}
}
