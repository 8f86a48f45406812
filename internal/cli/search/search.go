package search

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/salestrace/salestrace/internal/cli"
	"github.com/salestrace/salestrace/internal/client"
	"github.com/salestrace/salestrace/internal/config"
	"github.com/salestrace/salestrace/internal/datefilter"
	"github.com/salestrace/salestrace/internal/filter"
	"github.com/salestrace/salestrace/internal/logger"
	"github.com/salestrace/salestrace/internal/transaction"
	"github.com/salestrace/salestrace/internal/util"
)

type searchCommand struct {
}

func NewCommand() cli.Command {
	return searchCommand{}
}

func (c searchCommand) Description() string {
	return "Search transactions"
}

var keyword string
var date string

func (c searchCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&keyword, "k", "", "keyword to use for the search")
	fs.StringVar(&date, "date", "", "restrict the search to today, thisWeek or thisMonth")
}

func (c searchCommand) Run(conf *config.Config, log *logger.Logger) error {
	if keyword == "" {
		return fmt.Errorf("you must provide a keyword to use for the search")
	}

	raw, err := client.New(conf.Endpoint, log).Transactions(context.Background())
	if err != nil {
		return fmt.Errorf("unable to fetch transactions: %w", err)
	}

	transactions := transaction.Format(raw)

	matches := make([]transaction.Formatted, 0, len(transactions))
	for _, t := range transactions {
		if filter.Accepts(t, keyword, datefilter.Mode(date)) {
			matches = append(matches, t)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt > matches[j].CreatedAt
	})

	if len(matches) == 0 {
		fmt.Printf("no transactions match %q\n", keyword)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, t := range matches {
		status := util.ColorOutput(t.StatusLabel, "green")
		if t.Status != transaction.StatusSuccessful {
			status = util.ColorOutput(t.StatusLabel, "red")
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.CreatedAtFormatted,
			status,
			t.PaymentMethod,
			t.ID,
			t.AmountFormatted,
		)
	}

	return w.Flush()
}
