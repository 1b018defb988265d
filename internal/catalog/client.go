package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// fetchFailedMsg is the stable user-facing message for any recommendation
// fetch failure. The underlying cause is kept in the error chain for logs.
const fetchFailedMsg = "failed to fetch recommendations"

// Client issues recommendation requests against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client for the given base URL. A zero timeout keeps
// the transport default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

type recommendRequest struct {
	Query string `json:"query"`
}

// Recommend sends one POST {base}/recommend for the query and returns the
// ranked products with relative image paths resolved against the base URL.
// The caller is responsible for trimming and rejecting empty queries.
// No retry is attempted.
func (c *Client) Recommend(ctx context.Context, query string) ([]Product, error) {
	body, err := json.Marshal(recommendRequest{Query: query})
	if err != nil {
		return nil, errors.Wrap(err, fetchFailedMsg)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, fetchFailedMsg)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("recommend request failed", "query", query, "err", err)
		return nil, errors.Wrap(err, fetchFailedMsg)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("recommend request failed",
			"query", query,
			"status", resp.StatusCode,
			"body", string(raw),
		)
		return nil, errors.Errorf("%s: status %d", fetchFailedMsg, resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		c.logger.Error("recommend response unreadable", "query", query, "err", err)
		return nil, errors.Wrap(err, fetchFailedMsg)
	}

	for i := range products {
		products[i].Image = ResolveImageURL(products[i].Image, c.baseURL)
		if products[i].Currency == "" {
			products[i].Currency = DefaultCurrency
		}
	}
	return products, nil
}
