package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/salestrace/salestrace/internal/cache"
	"github.com/salestrace/salestrace/internal/client"
	"github.com/salestrace/salestrace/internal/testutil"
	"github.com/salestrace/salestrace/internal/transaction"
)

func testTransactions() []transaction.Transaction {
	now := time.Now().UnixMilli()

	return []transaction.Transaction{
		{
			ID:            "tx-1",
			Status:        transaction.StatusSuccessful,
			PaymentMethod: "Tarjeta de crédito",
			SalesType:     string(transaction.SalesTypeTerminal),
			CreatedAt:     now,
			Amount:        1000,
			Deduction:     200,
		},
		{
			ID:            "tx-2",
			Status:        transaction.StatusRejected,
			PaymentMethod: "Nequi",
			SalesType:     string(transaction.SalesTypePaymentLink),
			CreatedAt:     now,
			Amount:        500,
		},
	}
}

func newTestHandler(t *testing.T, transactions []transaction.Transaction) *Handler {
	t.Helper()

	logger := testutil.TestLogger(t)
	upstream := testutil.TransactionsServer(t, transactions)
	transactionCache := cache.New(
		client.New(upstream.URL, logger),
		5*time.Minute,
		10*time.Minute,
		logger,
	)

	return New(transactionCache, logger)
}

func TestDashboardHandler(t *testing.T) {
	handler := newTestHandler(t, testTransactions())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.Status)
	}

	body := w.Body.String()

	if !strings.Contains(body, "Cobro exitoso") {
		t.Error("expected the successful row to be rendered")
	}

	// total: 1000 - 200, the rejected row excluded
	if !strings.Contains(body, "$ 800") {
		t.Error("expected the aggregate total to be rendered")
	}
}

func TestDashboardHandlerSearchFilter(t *testing.T) {
	handler := newTestHandler(t, testTransactions())

	req := httptest.NewRequest(http.MethodGet, "/?search=nomatch", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "No hay transacciones") {
		t.Error("expected the empty state for a non matching search")
	}

	// the total ignores the text filter
	if !strings.Contains(body, "$ 800") {
		t.Error("expected the aggregate total to ignore the search filter")
	}
}

func TestDashboardHandlerSearchFormKeepsState(t *testing.T) {
	handler := newTestHandler(t, testTransactions())

	req := httptest.NewRequest(http.MethodGet, "/?salesTypes=TERMINAL&sort=amount:asc", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	body := w.Body.String()

	// submitting a search must re-serialize the whole filter state
	if !strings.Contains(body, `name="salesTypes" value="TERMINAL"`) {
		t.Error("expected the sales-type selection carried in the search form")
	}
	if !strings.Contains(body, `name="sort" value="amount:asc"`) {
		t.Error("expected the non-default sort carried in the search form")
	}
	if !strings.Contains(body, `name="date" value="today"`) {
		t.Error("expected the date mode carried in the search form")
	}
}

func TestDashboardHandlerUpstreamFailure(t *testing.T) {
	logger := testutil.TestLogger(t)
	upstream := testutil.FailingServer(t, http.StatusInternalServerError)
	transactionCache := cache.New(
		client.New(upstream.URL, logger),
		5*time.Minute,
		10*time.Minute,
		logger,
	)
	handler := New(transactionCache, logger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status BadGateway; got %v", resp.Status)
	}

	if !strings.Contains(w.Body.String(), "No pudimos cargar") {
		t.Error("expected the failure affordance to be rendered")
	}
}

func TestDetailHandler(t *testing.T) {
	handler := newTestHandler(t, testTransactions())

	req := httptest.NewRequest(http.MethodGet, "/transaction/tx-1", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.Status)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Tarjeta de crédito") {
		t.Error("expected the payment method in the detail view")
	}
	if !strings.Contains(body, "Datáfono") {
		t.Error("expected the sales type label in the detail view")
	}
}

func TestDetailHandlerUnknownID(t *testing.T) {
	handler := newTestHandler(t, testTransactions())

	req := httptest.NewRequest(http.MethodGet, "/transaction/missing", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("expected status NotFound; got %v", w.Result().Status)
	}
}

func TestAPITransactionsHandler(t *testing.T) {
	handler := newTestHandler(t, testTransactions())

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?date=today", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.Status)
	}

	var body apiResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error decoding response: %v", err)
	}

	if len(body.Data) != 2 {
		t.Errorf("expected 2 rows, got %d", len(body.Data))
	}

	if body.Total != 800 {
		t.Errorf("expected total 800, got %d", body.Total)
	}

	if body.TotalFormatted != "$ 800" {
		t.Errorf("unexpected formatted total %q", body.TotalFormatted)
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestHandler(t, testTransactions())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	if w.Result().Header.Get("X-Request-ID") == "" {
		t.Error("expected a request id header to be set")
	}
}

func TestXFrameDenyHeader(t *testing.T) {
	handler := newTestHandler(t, testTransactions())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.HTTPHandler.ServeHTTP(w, req)

	if got := w.Result().Header.Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("expected X-Frame-Options DENY, got %q", got)
	}
}
