package report

import (
	"testing"
	"time"

	"github.com/salestrace/salestrace/internal/datefilter"
	"github.com/salestrace/salestrace/internal/transaction"
)

// Sunday, December 15th 2024, local noon.
var now = time.Date(2024, time.December, 15, 12, 0, 0, 0, time.Local)

func fixtures() []transaction.Formatted {
	inMonth := time.Date(2024, time.December, 10, 10, 0, 0, 0, time.Local).UnixMilli()
	lastMonth := time.Date(2024, time.November, 10, 10, 0, 0, 0, time.Local).UnixMilli()

	return transaction.Format([]transaction.Transaction{
		{
			ID:        "tx-1",
			Status:    transaction.StatusSuccessful,
			SalesType: string(transaction.SalesTypeTerminal),
			CreatedAt: inMonth,
			Amount:    1000,
			Deduction: 200,
		},
		{
			ID:        "tx-2",
			Status:    transaction.StatusRejected,
			SalesType: string(transaction.SalesTypeTerminal),
			CreatedAt: inMonth,
			Amount:    500,
		},
		{
			ID:        "tx-3",
			Status:    transaction.StatusSuccessful,
			SalesType: string(transaction.SalesTypePaymentLink),
			CreatedAt: lastMonth,
			Amount:    4000,
		},
	})
}

func TestTotalAt(t *testing.T) {
	tests := []struct {
		name     string
		mode     datefilter.Mode
		expected int64
	}{
		{
			name:     "successful rows matching the date mode, net of deductions",
			mode:     datefilter.ModeThisMonth,
			expected: 800,
		},
		{
			name:     "no date restriction sums every successful row",
			mode:     datefilter.ModeNone,
			expected: 4800,
		},
		{
			name:     "window with no matching rows",
			mode:     datefilter.ModeToday,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TotalAt(fixtures(), tt.mode, now)
			if result != tt.expected {
				t.Errorf("TotalAt(%q) = %d, want %d", tt.mode, result, tt.expected)
			}
		})
	}
}

func TestTotalAtEmptyList(t *testing.T) {
	if result := TotalAt(nil, datefilter.ModeThisMonth, now); result != 0 {
		t.Errorf("expected 0 for empty list, got %d", result)
	}
}

func TestGenerate(t *testing.T) {
	summary := Generate(fixtures(), datefilter.ModeThisMonth, now)

	if summary.Total != 800 {
		t.Errorf("expected total 800, got %d", summary.Total)
	}

	if summary.TotalFormatted != "$ 800" {
		t.Errorf("unexpected formatted total %q", summary.TotalFormatted)
	}

	if summary.SuccessfulCount != 1 {
		t.Errorf("expected 1 successful sale, got %d", summary.SuccessfulCount)
	}

	if summary.RejectedCount != 1 {
		t.Errorf("expected 1 rejected sale, got %d", summary.RejectedCount)
	}

	if summary.Title != "Total de ventas de este mes" {
		t.Errorf("unexpected title %q", summary.Title)
	}

	if got := summary.BySalesType[transaction.SalesTypeTerminal]; got != 800 {
		t.Errorf("expected terminal total 800, got %d", got)
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		name     string
		mode     datefilter.Mode
		now      time.Time
		expected string
	}{
		{
			name:     "today",
			mode:     datefilter.ModeToday,
			now:      now,
			expected: "15 de diciembre de 2024",
		},
		{
			name:     "this week mid week",
			mode:     datefilter.ModeThisWeek,
			now:      now,
			expected: "9 a 15 de diciembre de 2024",
		},
		{
			name:     "this week on Monday collapses to today",
			mode:     datefilter.ModeThisWeek,
			now:      time.Date(2024, time.December, 9, 12, 0, 0, 0, time.Local),
			expected: "9 de diciembre de 2024",
		},
		{
			name:     "this month",
			mode:     datefilter.ModeThisMonth,
			now:      now,
			expected: "Diciembre, 2024",
		},
		{
			name:     "no date mode",
			mode:     datefilter.ModeNone,
			now:      now,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PeriodLabel(tt.mode, tt.now)
			if result != tt.expected {
				t.Errorf("PeriodLabel(%q) = %q, want %q", tt.mode, result, tt.expected)
			}
		})
	}
}
