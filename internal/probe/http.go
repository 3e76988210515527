package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Get performs a GET request tagged with a fresh request ID.
func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return c.client.Do(req)
}

// envelope fetches path and decodes the /api response envelope. Any status
// other than 200 is an error.
func (c *HTTPClient) envelope(ctx context.Context, path string, query url.Values) (envelope, error) {
	var env envelope
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return env, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if resp.StatusCode != StatusOK {
		return env, fmt.Errorf("%s returned %d (%s)", path, resp.StatusCode, env.Code)
	}
	return env, nil
}
