package export_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/export"
	"github.com/saulo-duarte/quizforge-lambda/internal/googlesheets"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

type appendCall struct {
	sheetID string
	tab     string
	rows    []quiz.SheetRow
}

type fakeAppender struct {
	err   error
	calls []appendCall
}

func (f *fakeAppender) Append(_ context.Context, sheetID, tab string, rows []quiz.SheetRow) (*googlesheets.AppendResult, error) {
	f.calls = append(f.calls, appendCall{sheetID: sheetID, tab: tab, rows: rows})
	if f.err != nil {
		return nil, f.err
	}
	return &googlesheets.AppendResult{
		SpreadsheetID: sheetID,
		UpdatedRange:  "'" + tab + "'!A1:D14",
		UpdatedRows:   int64(len(rows)),
		StartRow:      1,
	}, nil
}

func (f *fakeAppender) ReadRange(context.Context, string, string) ([][]string, error) {
	return nil, nil
}

const sheetURL = "https://docs.google.com/spreadsheets/d/ABC123xyz/edit"

const validPayload = `{"passage":"P","questions":[
	{"question":"Q1","options":["a","b","c","d"],"correct_index":1,"explanation":"e"},
	{"question":"Q2","options":["a","b","c","d"],"correct_index":0,"explanation":""}
]}`

func post(t *testing.T, h *export.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	export.Routes(h).ServeHTTP(rec, req)
	return rec
}

func TestExportSuccess(t *testing.T) {
	appender := &fakeAppender{}
	h := export.NewHandler(export.NewService(appender, "Sheet1", nil))

	rec := post(t, h, `{"sheetUrlOrId":"`+sheetURL+`","payload":`+validPayload+`}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"updates":{"spreadsheetId":"ABC123xyz","updatedRange":"'Sheet1'!A1:D14","updatedRows":14,"updatedColumns":0,"updatedCells":0,"startRow":1}}`, rec.Body.String())

	require.Len(t, appender.calls, 1)
	assert.Equal(t, "ABC123xyz", appender.calls[0].sheetID)
	assert.Equal(t, "Sheet1", appender.calls[0].tab)
	assert.Len(t, appender.calls[0].rows, 14)
	assert.Equal(t, quiz.SheetRow{"*", "b"}, appender.calls[0].rows[4])
}

func TestExportUsesRequestedSheetName(t *testing.T) {
	appender := &fakeAppender{}
	h := export.NewHandler(export.NewService(appender, "Sheet1", nil))

	rec := post(t, h, `{"sheetUrlOrId":"`+sheetURL+`","sheetName":"Legal","payload":`+validPayload+`}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Legal", appender.calls[0].tab)
}

func TestExportRejectsBeforeWriting(t *testing.T) {
	threeOptions := `{"passage":"P","questions":[{"question":"Q","options":["a","b","c"],"correct_index":0}]}`

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"invalid json", `{`, "invalid request body"},
		{"missing sheet", `{"payload":` + validPayload + `}`, googlesheets.RuleSheetRequired},
		{"bad sheet id", `{"sheetUrlOrId":"ABCDEFGHIJ","payload":` + validPayload + `}`, googlesheets.RuleSheetID},
		{"missing payload", `{"sheetUrlOrId":"` + sheetURL + `"}`, quiz.RulePayloadRequired},
		{"empty questions", `{"sheetUrlOrId":"` + sheetURL + `","payload":{"passage":"P","questions":[]}}`, quiz.RuleQuestionsRequired},
		{"three options", `{"sheetUrlOrId":"` + sheetURL + `","payload":` + threeOptions + `}`, "question 1: " + quiz.RuleFourOptions},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appender := &fakeAppender{}
			h := export.NewHandler(export.NewService(appender, "Sheet1", nil))

			rec := post(t, h, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tc.message+`"}`, rec.Body.String())
			assert.Empty(t, appender.calls)
		})
	}
}

func TestExportSheetsFailure(t *testing.T) {
	appender := &fakeAppender{err: &apperror.ExternalServiceError{Service: "Google Sheets", Msg: "The caller does not have permission"}}
	h := export.NewHandler(export.NewService(appender, "Sheet1", nil))

	rec := post(t, h, `{"sheetUrlOrId":"`+sheetURL+`","payload":`+validPayload+`}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to export to Google Sheets: The caller does not have permission"}`, rec.Body.String())
}

func TestExportMissingCredentials(t *testing.T) {
	cfgErr := &apperror.ConfigError{Msg: "Google Sheets credentials are not configured", Remedy: "set GOOGLE_CREDENTIALS_JSON"}
	h := export.NewHandler(export.NewService(googlesheets.NewUnavailableAppender(cfgErr), "Sheet1", nil))

	rec := post(t, h, `{"sheetUrlOrId":"`+sheetURL+`","payload":`+validPayload+`}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Google Sheets credentials are not configured: set GOOGLE_CREDENTIALS_JSON"}`, rec.Body.String())
}
