package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/devlink/social-api/internal/api/metrics"
	"github.com/devlink/social-api/internal/core/ports"
)

// RepoCache abstracts the TTL'd response cache (Redis) sitting in front of
// the GitHub API.
type RepoCache interface {
	Get(ctx context.Context, username string) (json.RawMessage, error)
	Set(ctx context.Context, username string, payload json.RawMessage, ttl time.Duration) error
}

type githubService struct {
	client ports.RepoClient
	cache  RepoCache
	ttl    time.Duration
	log    zerolog.Logger
}

// NewGithubService returns a GithubService that serves repo listings from
// the cache when possible and falls back to the upstream API.
func NewGithubService(client ports.RepoClient, cache RepoCache, ttl time.Duration, log zerolog.Logger) ports.GithubService {
	return &githubService{client: client, cache: cache, ttl: ttl, log: log}
}

// Repos returns the user's public repositories, proxied unmodified. Cache
// failures are logged and ignored; the upstream call decides the outcome.
func (s *githubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	if cached, err := s.cache.Get(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("repo cache read failed, fetching upstream")
	} else if cached != nil {
		metrics.GithubCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}

	payload, err := s.client.ListRepos(ctx, username)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("github repo listing failed")
		return nil, err
	}
	metrics.GithubCacheTotal.WithLabelValues("miss").Inc()

	if err := s.cache.Set(ctx, username, payload, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("repo cache write failed")
	}
	return payload, nil
}
