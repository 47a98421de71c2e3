package googlesheets

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

const usedColumns = "A:D"

// Appender writes row blocks below the existing data of a tab.
type Appender interface {
	Append(ctx context.Context, sheetID, tab string, rows []quiz.SheetRow) (*AppendResult, error)
	ReadRange(ctx context.Context, sheetID, a1 string) ([][]string, error)
}

type appender struct {
	values      ValuesClient
	inputOption string
}

func NewAppender(values ValuesClient, inputOption string) Appender {
	if inputOption == "" {
		inputOption = "USER_ENTERED"
	}
	return &appender{values: values, inputOption: inputOption}
}

// Append reads the used range to find the last data row, then writes at the
// next row. When the tab already has data a blank separator row goes first.
// The read and the write are separate calls, so concurrent appends to the
// same tab can interleave.
func (a *appender) Append(ctx context.Context, sheetID, tab string, rows []quiz.SheetRow) (*AppendResult, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"sheet_id": sheetID,
		"tab":      tab,
	})

	existing, err := a.values.Get(ctx, sheetID, QuoteTab(tab)+"!"+usedColumns)
	if err != nil {
		log.WithError(err).Error("Failed to read used range")
		return nil, externalError(err)
	}
	last := len(existing)
	startRow := last + 1

	block := make([][]interface{}, 0, len(rows)+1)
	if last > 0 {
		block = append(block, []interface{}{})
	}
	for _, row := range rows {
		block = append(block, toCells(row))
	}

	target := fmt.Sprintf("%s!A%d", QuoteTab(tab), startRow)
	resp, err := a.values.Update(ctx, sheetID, target, block, a.inputOption)
	if err != nil {
		log.WithError(err).Error("Failed to write rows")
		return nil, externalError(err)
	}

	result := &AppendResult{
		SpreadsheetID: sheetID,
		UpdatedRange:  target,
		UpdatedRows:   int64(len(block)),
		StartRow:      startRow,
	}
	if resp != nil {
		result.UpdatedRange = lo.Ternary(resp.UpdatedRange != "", resp.UpdatedRange, target)
		result.UpdatedRows = resp.UpdatedRows
		result.UpdatedColumns = resp.UpdatedColumns
		result.UpdatedCells = resp.UpdatedCells
		if resp.SpreadsheetId != "" {
			result.SpreadsheetID = resp.SpreadsheetId
		}
	}

	log.WithField("start_row", startRow).Infof("Appended %d rows", len(block))
	return result, nil
}

// ReadRange returns the cells of an A1 range as strings.
func (a *appender) ReadRange(ctx context.Context, sheetID, a1 string) ([][]string, error) {
	values, err := a.values.Get(ctx, sheetID, a1)
	if err != nil {
		return nil, externalError(err)
	}
	return lo.Map(values, func(row []interface{}, _ int) []string {
		return lo.Map(row, func(cell interface{}, _ int) string { return fmt.Sprint(cell) })
	}), nil
}

func toCells(row quiz.SheetRow) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

type unavailableAppender struct {
	err error
}

// NewUnavailableAppender fails every call with err. It stands in when
// credentials were missing at startup so the rest of the service still runs.
func NewUnavailableAppender(err error) Appender {
	return unavailableAppender{err: err}
}

func (u unavailableAppender) Append(context.Context, string, string, []quiz.SheetRow) (*AppendResult, error) {
	return nil, u.err
}

func (u unavailableAppender) ReadRange(context.Context, string, string) ([][]string, error) {
	return nil, u.err
}
