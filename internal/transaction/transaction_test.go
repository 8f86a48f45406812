package transaction

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{StatusSuccessful, "Cobro exitoso"},
		{StatusRejected, "Cobro no realizado"},
		{"PENDING", "PENDING"},
		{"", ""},
	}

	for _, tt := range tests {
		if result := StatusLabel(tt.status); result != tt.expected {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, result, tt.expected)
		}
	}
}

func TestSalesTypeLabels(t *testing.T) {
	labels := SalesTypeLabels(SalesTypePaymentLink)
	if labels.Filter != "Cobro con link de pago" {
		t.Errorf("unexpected filter label %q", labels.Filter)
	}
	if labels.Modal != "Link de pagos" {
		t.Errorf("unexpected modal label %q", labels.Modal)
	}

	unknown := SalesTypeLabels(SalesType("KIOSK"))
	if unknown.Filter != "KIOSK" || unknown.Modal != "KIOSK" {
		t.Errorf("expected unknown sales type to pass through, got %+v", unknown)
	}
}

func TestFormat(t *testing.T) {
	createdAt := time.Date(2024, time.December, 15, 10, 30, 0, 0, time.Local).UnixMilli()

	transactions := []Transaction{
		{
			ID:            "tx-1",
			Status:        StatusSuccessful,
			PaymentMethod: "CARD",
			SalesType:     string(SalesTypeTerminal),
			CreatedAt:     createdAt,
			Amount:        1000000,
			Deduction:     57500,
		},
		{
			ID:        "tx-2",
			Status:    "PENDING",
			SalesType: string(SalesTypePaymentLink),
			CreatedAt: createdAt,
			Amount:    800,
		},
	}

	formatted := Format(transactions)

	if len(formatted) != len(transactions) {
		t.Fatalf("expected %d formatted transactions, got %d", len(transactions), len(formatted))
	}

	first := formatted[0]
	if first.StatusLabel != "Cobro exitoso" {
		t.Errorf("expected success label, got %q", first.StatusLabel)
	}
	if first.CreatedAtFormatted != "15/12/2024 - 10:30:00" {
		t.Errorf("unexpected formatted date %q", first.CreatedAtFormatted)
	}
	if first.AmountFormatted != "$ 1.000.000" {
		t.Errorf("unexpected formatted amount %q", first.AmountFormatted)
	}
	if first.DeductionFormatted != "$ 57.500" {
		t.Errorf("unexpected formatted deduction %q", first.DeductionFormatted)
	}
	if first.SalesTypeLabel != "Datáfono" {
		t.Errorf("unexpected sales type label %q", first.SalesTypeLabel)
	}

	// order is preserved and unknown status codes pass through
	second := formatted[1]
	if second.ID != "tx-2" {
		t.Errorf("expected input order to be preserved, got %q first", second.ID)
	}
	if second.StatusLabel != "PENDING" {
		t.Errorf("expected raw status to pass through, got %q", second.StatusLabel)
	}
	if second.DeductionFormatted != "$ 0" {
		t.Errorf("expected missing deduction to format as zero, got %q", second.DeductionFormatted)
	}
}

func TestTransactionDecodeMissingDeduction(t *testing.T) {
	body := `{"id":"tx-1","status":"SUCCESSFUL","amount":1000,"createdAt":1734264000000}`

	var tx Transaction
	if err := json.Unmarshal([]byte(body), &tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.Deduction != 0 {
		t.Errorf("expected absent deduction to decode as 0, got %d", tx.Deduction)
	}
}

func TestLookup(t *testing.T) {
	formatted := Format([]Transaction{
		{ID: "tx-1", Status: StatusSuccessful},
		{ID: "tx-2", Status: StatusRejected},
	})

	found, ok := Lookup(formatted, "tx-2")
	if !ok {
		t.Fatal("expected to find tx-2")
	}
	if found.StatusLabel != "Cobro no realizado" {
		t.Errorf("unexpected status label %q", found.StatusLabel)
	}

	if _, ok := Lookup(formatted, "missing"); ok {
		t.Error("expected lookup of unknown id to fail")
	}
}
