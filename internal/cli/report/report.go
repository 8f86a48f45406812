package report

import (
	"context"
	"embed"
	"flag"
	"io"
	"os"
	"path"
	"text/template"
	"time"

	"github.com/salestrace/salestrace/internal/cli"
	"github.com/salestrace/salestrace/internal/client"
	"github.com/salestrace/salestrace/internal/config"
	"github.com/salestrace/salestrace/internal/datefilter"
	"github.com/salestrace/salestrace/internal/logger"
	internalReport "github.com/salestrace/salestrace/internal/report"
	"github.com/salestrace/salestrace/internal/transaction"
	"github.com/salestrace/salestrace/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
}

func NewCommand() cli.Command {
	return reportCommand{}
}

func (c reportCommand) Description() string {
	return "Displays the sales total for the selected date range"
}

var date string
var verbose bool

func (c reportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&date, "date", string(datefilter.ModeToday), "date range: today, thisWeek, thisMonth or all")
	fs.BoolVar(&verbose, "v", false, "show every matching transaction")
}

type reportData struct {
	Summary      internalReport.Summary
	Transactions []transaction.Formatted
	Verbose      bool
}

func (c reportCommand) Run(conf *config.Config, log *logger.Logger) error {
	mode := datefilter.Mode(date)
	if date == "all" {
		mode = datefilter.ModeNone
	}

	raw, err := client.New(conf.Endpoint, log).Transactions(context.Background())
	if err != nil {
		return err
	}

	now := time.Now()
	formatted := transaction.Format(raw)
	summary := internalReport.Generate(formatted, mode, now)

	matching := make([]transaction.Formatted, 0, len(formatted))
	for _, t := range formatted {
		if datefilter.MatchesAt(t.CreatedAt, mode, now) {
			matching = append(matching, t)
		}
	}

	return renderTemplate(os.Stdout, "report.tmpl", reportData{
		Summary:      summary,
		Transactions: matching,
		Verbose:      verbose,
	})
}

var templateFuncs = template.FuncMap{
	"formatMoney": util.FormatMoney,
	"colorOutput": util.ColorOutput,
}

func renderTemplate(out io.Writer, templateName string, value interface{}) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}
	t := template.Must(template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl)))
	err = t.Execute(out, value)
	if err != nil {
		return err
	}

	return nil
}
