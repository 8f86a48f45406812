package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/salestrace/salestrace/internal/datefilter"
	"github.com/salestrace/salestrace/internal/transaction"
)

// Filters holds one snapshot of the three filter dimensions applied to the
// transaction table.
type Filters struct {
	Search     string
	Date       datefilter.Mode
	SalesTypes []transaction.SalesType
}

// Accepts is the combined row-acceptance test for the date and free-text
// dimensions, with AND semantics, evaluated against the current local time.
func Accepts(row transaction.Formatted, search string, mode datefilter.Mode) bool {
	return AcceptsAt(row, search, mode, time.Now())
}

// AcceptsAt is Accepts with an explicit clock. The date check runs first so
// a row outside the window is rejected without ever evaluating the text
// query.
func AcceptsAt(row transaction.Formatted, search string, mode datefilter.Mode, now time.Time) bool {
	if mode != datefilter.ModeNone {
		if !datefilter.MatchesAt(row.CreatedAt, mode, now) {
			return false
		}
	}

	if search != "" {
		return strings.Contains(strings.ToLower(rowValues(row)), strings.ToLower(search))
	}

	return true
}

// AcceptsSalesType reports whether a row passes the sales-type selection.
// An empty selection and one containing the wildcard both accept every row.
func AcceptsSalesType(row transaction.Formatted, salesTypes []transaction.SalesType) bool {
	if len(salesTypes) == 0 {
		return true
	}

	for _, s := range salesTypes {
		if s == transaction.SalesTypeAll {
			return true
		}
	}

	for _, s := range salesTypes {
		if transaction.SalesType(row.SalesType) == s {
			return true
		}
	}

	return false
}

// Match applies all three dimensions to a row.
func (f Filters) Match(row transaction.Formatted) bool {
	return f.MatchAt(row, time.Now())
}

// MatchAt is Match with an explicit clock.
func (f Filters) MatchAt(row transaction.Formatted, now time.Time) bool {
	if !AcceptsAt(row, f.Search, f.Date, now) {
		return false
	}

	return AcceptsSalesType(row, f.SalesTypes)
}

// rowValues joins every field of the row, visible and hidden, so the text
// search is unscoped rather than limited to displayed columns.
func rowValues(row transaction.Formatted) string {
	fields := []string{
		row.ID,
		row.Status,
		row.StatusLabel,
		row.PaymentMethod,
		row.SalesType,
		row.SalesTypeLabel,
		strconv.FormatInt(row.CreatedAt, 10),
		strconv.FormatInt(row.TransactionReference, 10),
		strconv.FormatInt(row.Amount, 10),
		strconv.FormatInt(row.Deduction, 10),
		row.CreatedAtFormatted,
		row.AmountFormatted,
		row.DeductionFormatted,
	}

	return strings.Join(fields, " ")
}
