// Package userdir is the HTTP client for the user directory service. The
// order service consults it exactly once per creation to confirm that the
// referenced user exists.
package userdir

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	http    *http.Client
	baseURL string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// UserExists looks the user up by id. A non-2xx response means the user
// does not exist. Transport failures are returned to the caller, which
// decides how to treat an unverifiable reference. A single attempt is made:
// retries are not this client's concern.
func (c *Client) UserExists(ctx context.Context, id string) (bool, error) {
	url := fmt.Sprintf("%s/api/users/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("user directory request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return false, nil
	}

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("user directory response: %w", err)
	}
	return body.Success, nil
}
