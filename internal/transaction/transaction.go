package transaction

import (
	"github.com/salestrace/salestrace/internal/util"
)

// Status codes as delivered by the upstream API.
const (
	StatusSuccessful = "SUCCESSFUL"
	StatusRejected   = "REJECTED"
)

// SalesType identifies the channel a sale was made through. SalesTypeAll is
// a synthetic wildcard used only in filter selections, never in data.
type SalesType string

const (
	SalesTypePaymentLink SalesType = "PAYMENT_LINK"
	SalesTypeTerminal    SalesType = "TERMINAL"
	SalesTypeAll         SalesType = "all"
)

var statusLabels = map[string]string{
	StatusSuccessful: "Cobro exitoso",
	StatusRejected:   "Cobro no realizado",
}

// SuccessLabel is the display label that marks a transaction as a completed
// sale.
const SuccessLabel = "Cobro exitoso"

type SalesTypeLabel struct {
	Filter string
	Modal  string
}

var salesTypeLabels = map[SalesType]SalesTypeLabel{
	SalesTypePaymentLink: {Filter: "Cobro con link de pago", Modal: "Link de pagos"},
	SalesTypeTerminal:    {Filter: "Cobro con datáfono", Modal: "Datáfono"},
	SalesTypeAll:         {Filter: "Ver todos", Modal: "Todos"},
}

// Transaction is a raw record as fetched from the upstream endpoint.
// CreatedAt is epoch milliseconds; Deduction is optional and absent means
// zero.
type Transaction struct {
	ID                   string `json:"id"`
	Status               string `json:"status"`
	PaymentMethod        string `json:"paymentMethod"`
	SalesType            string `json:"salesType"`
	CreatedAt            int64  `json:"createdAt"`
	TransactionReference int64  `json:"transactionReference"`
	Amount               int64  `json:"amount"`
	Deduction            int64  `json:"deduction,omitempty"`
}

// Formatted is a display-ready transaction. It is derived, recomputed on
// every fetch cycle and never persisted independently of its source record.
type Formatted struct {
	Transaction

	StatusLabel        string `json:"statusLabel"`
	SalesTypeLabel     string `json:"salesTypeLabel"`
	CreatedAtFormatted string `json:"createdAtFormatted"`
	AmountFormatted    string `json:"amountFormatted"`
	DeductionFormatted string `json:"deductionFormatted"`
}

// StatusLabel maps a raw status code to its display label. Unknown codes
// pass through unmapped.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// SalesTypeLabels returns the display labels for a sales type. Unknown codes
// pass through as both labels.
func SalesTypeLabels(salesType SalesType) SalesTypeLabel {
	if labels, ok := salesTypeLabels[salesType]; ok {
		return labels
	}
	return SalesTypeLabel{Filter: string(salesType), Modal: string(salesType)}
}

// Format maps raw records to display-ready ones. It is total: malformed
// individual rows never fail the whole list, and it preserves input order.
func Format(transactions []Transaction) []Formatted {
	formatted := make([]Formatted, 0, len(transactions))

	for _, t := range transactions {
		if t.Deduction < 0 {
			t.Deduction = 0
		}

		formatted = append(formatted, Formatted{
			Transaction:        t,
			StatusLabel:        StatusLabel(t.Status),
			SalesTypeLabel:     SalesTypeLabels(SalesType(t.SalesType)).Modal,
			CreatedAtFormatted: util.FormatDateTime(t.CreatedAt),
			AmountFormatted:    util.FormatMoney(t.Amount),
			DeductionFormatted: util.FormatMoney(t.Deduction),
		})
	}

	return formatted
}

// Lookup finds one formatted transaction by id in the already fetched list.
func Lookup(transactions []Formatted, id string) (Formatted, bool) {
	for _, t := range transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Formatted{}, false
}
