package ports

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUpstream signals a GitHub API failure; handlers report it as 500.
var ErrUpstream = errors.New("upstream request failed")

// RepoClient fetches a user's public repositories from GitHub. The payload
// is proxied to the caller unmodified.
type RepoClient interface {
	ListRepos(ctx context.Context, username string) (json.RawMessage, error)
}
