package googlesheets

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

type GoogleSheetsContainer struct {
	Appender Appender
	Source   string
}

// NewGoogleSheetsContainer resolves credentials and builds the client once.
// Missing credentials do not stop startup; exports then fail with the
// ConfigError.
func NewGoogleSheetsContainer(ctx context.Context, settings config.Sheets) *GoogleSheetsContainer {
	log := config.WithContext(ctx)

	creds, err := ResolveCredentials(settings)
	if err != nil {
		log.WithError(err).Warn("Google Sheets credentials unavailable, export requests will fail")
		return &GoogleSheetsContainer{Appender: NewUnavailableAppender(err)}
	}

	values, err := NewValuesClient(ctx, creds)
	if err != nil {
		cfgErr := &apperror.ConfigError{Msg: "Google Sheets client could not be created: " + err.Error(), Remedy: "check the service account credentials"}
		return &GoogleSheetsContainer{Appender: NewUnavailableAppender(cfgErr), Source: creds.Source}
	}

	log.WithFields(logrus.Fields{
		"source":     creds.Source,
		"project_id": creds.ProjectID,
		"account":    creds.Config.Email,
	}).Info("Google Sheets client ready")

	return &GoogleSheetsContainer{
		Appender: NewAppender(values, settings.ValueInputOption),
		Source:   creds.Source,
	}
}
