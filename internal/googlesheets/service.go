package googlesheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

const serviceName = "Google Sheets"

// ValuesClient is the subset of the Sheets values API the appender needs.
type ValuesClient interface {
	Get(ctx context.Context, spreadsheetID, a1 string) ([][]interface{}, error)
	Update(ctx context.Context, spreadsheetID, a1 string, rows [][]interface{}, inputOption string) (*sheets.UpdateValuesResponse, error)
}

type valuesClient struct {
	srv *sheets.Service
}

// NewValuesClient builds the Sheets client once for the life of the process.
func NewValuesClient(ctx context.Context, creds *Credentials) (ValuesClient, error) {
	log := config.WithContext(ctx)

	srv, err := sheets.NewService(ctx, option.WithTokenSource(creds.Config.TokenSource(ctx)))
	if err != nil {
		log.WithError(err).Error("Failed to create Sheets service client")
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &valuesClient{srv: srv}, nil
}

func (c *valuesClient) Get(ctx context.Context, spreadsheetID, a1 string) ([][]interface{}, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(spreadsheetID, a1).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, externalError(err)
	}
	return resp.Values, nil
}

func (c *valuesClient) Update(ctx context.Context, spreadsheetID, a1 string, rows [][]interface{}, inputOption string) (*sheets.UpdateValuesResponse, error) {
	body := &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         rows,
	}
	resp, err := c.srv.Spreadsheets.Values.Update(spreadsheetID, a1, body).
		ValueInputOption(inputOption).
		Context(ctx).
		Do()
	if err != nil {
		return nil, externalError(err)
	}
	return resp, nil
}

// externalError keeps the most specific message the API returned.
func externalError(err error) error {
	var existing *apperror.ExternalServiceError
	if errors.As(err, &existing) {
		return err
	}

	msg := err.Error()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case len(apiErr.Errors) > 0 && apiErr.Errors[0].Message != "":
			msg = apiErr.Errors[0].Message
		case apiErr.Message != "":
			msg = apiErr.Message
		}
	}
	return &apperror.ExternalServiceError{Service: serviceName, Msg: msg, Err: err}
}
