// Package metrics defines and registers all custom Prometheus metrics for
// the social API. It is the single source of truth for metric names, labels,
// and help strings. Collectors register themselves with the default registry
// at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "social"

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered.",
	},
)

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// PostLikesTotal counts like list mutations.
// Label:
//   - action: "like" or "unlike"
var PostLikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_likes_total",
		Help:      "Total number of successful like and unlike operations.",
	},
	[]string{"action"},
)

// CommentsTotal counts comment list mutations.
// Label:
//   - action: "add" or "delete"
var CommentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_total",
		Help:      "Total number of successful comment additions and deletions.",
	},
	[]string{"action"},
)

// GithubCacheTotal counts cache decisions for the GitHub repo proxy.
// Label:
//   - result: "hit" (served from cache) or "miss" (fetched upstream)
var GithubCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "github_cache_total",
		Help:      "Total number of GitHub repo lookups, labelled by cache result (hit/miss).",
	},
	[]string{"result"},
)
