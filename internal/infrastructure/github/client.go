// Package github is a thin client for the GitHub repository listing API.
// The response body is proxied to callers unmodified.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/devlink/social-api/internal/core/ports"
)

const defaultBaseURL = "https://api.github.com"

// Client fetches public repositories for a user, five most recently
// created first. An API token is optional; unauthenticated requests are
// subject to GitHub's lower rate limits.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is intended for tests pointing at a stub server.
func NewClientWithBaseURL(baseURL, token string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	uri := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", "social-api")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: github returned %d", ports.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrUpstream, err)
	}
	return json.RawMessage(body), nil
}
