package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/salestrace/salestrace/internal/logger"
	"github.com/salestrace/salestrace/internal/transaction"
)

const defaultTimeout = 10 * time.Second

// Client fetches the transaction list from the upstream endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *logger.Logger
}

type apiResponse struct {
	Data []transaction.Transaction `json:"data"`
}

func New(endpoint string, logger *logger.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Transactions performs a single GET against the endpoint and decodes the
// `{ "data": [...] }` body. A non-2xx status or an undecodable body is a
// fetch failure; a missing data field is an empty list. There is no retry
// policy, failures surface to the caller.
func (c *Client) Transactions(ctx context.Context) ([]transaction.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building transactions request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetching transactions: unexpected status %s", resp.Status)
	}

	var body apiResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		return nil, fmt.Errorf("decoding transactions response: %w", decodeErr)
	}

	c.logger.Debug("fetched transactions",
		"count", len(body.Data),
		"duration", time.Since(start).String(),
	)

	return body.Data, nil
}
