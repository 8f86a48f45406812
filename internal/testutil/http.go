package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/salestrace/salestrace/internal/transaction"
)

// TransactionsServer stands in for the upstream transactions endpoint,
// serving the given list as `{ "data": [...] }`.
func TransactionsServer(t *testing.T, transactions []transaction.Transaction) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]interface{}{
			"data": transactions,
		})
		if err != nil {
			t.Errorf("failed to encode transactions fixture: %v", err)
		}
	}))

	t.Cleanup(server.Close)

	return server
}

// FailingServer stands in for an upstream that always responds with the
// given status code.
func FailingServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(statusCode)
	}))

	t.Cleanup(server.Close)

	return server
}
