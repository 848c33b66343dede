package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devlink/social-api/internal/core/ports"
)

func TestClient_ListRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/alice/repos" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("per_page") != "5" {
			t.Errorf("unexpected per_page: %q", q.Get("per_page"))
		}
		if q.Get("sort") != "created:asc" {
			t.Errorf("unexpected sort: %q", q.Get("sort"))
		}
		if r.Header.Get("User-Agent") != "social-api" {
			t.Errorf("unexpected user agent: %q", r.Header.Get("User-Agent"))
		}
		if r.Header.Get("Authorization") != "token secret" {
			t.Errorf("unexpected authorization: %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"repo1"},{"name":"repo2"}]`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "secret")
	got, err := client.ListRepos(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListRepos returned error: %v", err)
	}
	if string(got) != `[{"name":"repo1"},{"name":"repo2"}]` {
		t.Fatalf("body not proxied unmodified: %s", got)
	}
}

func TestClient_ListRepos_NoTokenOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("authorization header sent without token: %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "")
	if _, err := client.ListRepos(context.Background(), "alice"); err != nil {
		t.Fatalf("ListRepos returned error: %v", err)
	}
}

func TestClient_ListRepos_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "")
	_, err := client.ListRepos(context.Background(), "ghost")
	if !errors.Is(err, ports.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
