// Command peek prints the rows of a spreadsheet range, numbered from 1.
//
//	peek <sheetUrlOrId> [--tab Sheet1] [--range A1:D200]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/googlesheets"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: could not load .env file:", err)
	}

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Peek failed:", err)
		os.Exit(2)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "peek",
		Usage:     "print the rows of a Google Sheet range",
		ArgsUsage: "<sheetUrlOrId>",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tab",
				Usage:   "sheet tab to read",
				Value:   "Sheet1",
				EnvVars: []string{"SHEETS_TAB_NAME"},
			},
			&cli.StringFlag{
				Name:  "range",
				Usage: "A1 range within the tab",
				Value: "A1:D200",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("usage: peek <sheetUrlOrId> [--tab name] [--range A1:D200]", 1)
			}

			sheetID, err := googlesheets.ParseSheetID(c.Args().First())
			if err != nil {
				return err
			}

			settings, err := config.Load()
			if err != nil {
				return err
			}
			creds, err := googlesheets.ResolveCredentials(settings.Sheets)
			if err != nil {
				return err
			}
			values, err := googlesheets.NewValuesClient(c.Context, creds)
			if err != nil {
				return err
			}

			a1 := googlesheets.QuoteTab(c.String("tab")) + "!" + c.String("range")
			rows, err := googlesheets.NewAppender(values, settings.Sheets.ValueInputOption).ReadRange(c.Context, sheetID, a1)
			if err != nil {
				return err
			}
			writeRows(c.App.Writer, rows)
			return nil
		},
	}
}

func writeRows(w io.Writer, rows [][]string) {
	for i, row := range rows {
		fmt.Fprintf(w, "%3d | %s\n", i+1, strings.Join(row, " | "))
	}
}
