package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/salestrace/salestrace/internal/datefilter"
	"github.com/salestrace/salestrace/internal/transaction"
	"github.com/salestrace/salestrace/internal/util"
)

// Summary is the sales data backing the dashboard card and the CLI report.
type Summary struct {
	Title           string
	PeriodLabel     string
	Total           int64
	TotalFormatted  string
	SuccessfulCount int
	RejectedCount   int
	BySalesType     map[transaction.SalesType]int64
}

// Total sums (amount - deduction) over successful transactions that match
// the active date mode, evaluated against the current local time. The total
// is independent of the text and sales-type filters narrowing the visible
// table.
func Total(transactions []transaction.Formatted, mode datefilter.Mode) int64 {
	return TotalAt(transactions, mode, time.Now())
}

// TotalAt is Total with an explicit clock.
func TotalAt(transactions []transaction.Formatted, mode datefilter.Mode, now time.Time) int64 {
	var total int64

	for _, t := range transactions {
		if t.StatusLabel != transaction.SuccessLabel {
			continue
		}

		if !datefilter.MatchesAt(t.CreatedAt, mode, now) {
			continue
		}

		total += t.Amount - t.Deduction
	}

	return total
}

// Generate builds the full summary for a date mode.
func Generate(transactions []transaction.Formatted, mode datefilter.Mode, now time.Time) Summary {
	summary := Summary{
		Title:       "Total de ventas de " + datefilter.Label(mode),
		PeriodLabel: PeriodLabel(mode, now),
		BySalesType: map[transaction.SalesType]int64{},
	}

	if mode == datefilter.ModeNone {
		summary.Title = "Total de ventas"
	}

	for _, t := range transactions {
		if !datefilter.MatchesAt(t.CreatedAt, mode, now) {
			continue
		}

		if t.StatusLabel != transaction.SuccessLabel {
			if t.Status == transaction.StatusRejected {
				summary.RejectedCount++
			}
			continue
		}

		net := t.Amount - t.Deduction
		summary.SuccessfulCount++
		summary.Total += net
		summary.BySalesType[transaction.SalesType(t.SalesType)] += net
	}

	summary.TotalFormatted = util.FormatMoney(summary.Total)

	return summary
}

var spanishMonths = map[time.Month]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// PeriodLabel renders the Spanish label for the period a date mode covers:
// "15 de diciembre de 2024" for today, "9 a 15 de diciembre de 2024" for
// this week (just today's date when today is Monday), "Diciembre, 2024" for
// this month. No date mode yields an empty label.
func PeriodLabel(mode datefilter.Mode, now time.Time) string {
	switch mode {
	case datefilter.ModeToday:
		return dayLabel(now)
	case datefilter.ModeThisWeek:
		monday, _ := datefilter.WeekDates(now)
		if monday.Day() == now.Day() && monday.Month() == now.Month() && monday.Year() == now.Year() {
			return dayLabel(now)
		}
		return fmt.Sprintf("%d a %s", monday.Day(), dayLabel(now))
	case datefilter.ModeThisMonth:
		month := spanishMonths[now.Month()]
		return fmt.Sprintf("%s%s, %d", strings.ToUpper(month[:1]), month[1:], now.Year())
	default:
		return ""
	}
}

func dayLabel(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()], t.Year())
}
