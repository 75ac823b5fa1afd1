package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mspro-labs/vitrin/internal/models"
)

// promptKey is the JSON key carrying the user's wish. The deployed service
// rejects any other key; "query" variants exist in the wild, so a different
// deployment means changing this constant.
const promptKey = "prompt"

const recommendationPath = "/recommendation"

// Client talks to the external recommendation service. All the heavy
// lifting (search, ranking, descriptions) happens on the other side of
// this client; we only ship the wish over and decode the cards.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL. A zero timeout leaves
// the call bounded only by the transport (and the caller's context).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Recommend sends one query and returns the parsed result. The returned
// cards are exactly the service's list; a response without a "cards" field
// yields an empty slice, not an error. Transport errors, non-2xx statuses
// and malformed bodies all collapse into a single error return.
func (c *Client) Recommend(ctx context.Context, prompt string) (*models.Recommendation, error) {
	payload, err := json.Marshal(map[string]string{promptKey: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+recommendationPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("recommendation service returned status %d", resp.StatusCode)
	}

	var rec models.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if rec.Cards == nil {
		rec.Cards = []models.ProductCard{}
	}
	return &rec, nil
}
