package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/toplangs/pkg/errors"
)

const languagesResponse = `{
  "data": {
    "viewer": {
      "repositories": {
        "nodes": [
          {
            "name": "api",
            "isArchived": false,
            "languages": {
              "edges": [
                {"size": 800, "node": {"name": "Go"}},
                {"size": 50, "node": {"name": "HTML"}}
              ]
            }
          },
          {
            "name": "attic",
            "isArchived": true,
            "languages": {
              "edges": [
                {"size": 9000, "node": {"name": "Perl"}}
              ]
            }
          },
          {
            "name": "docs",
            "isArchived": false,
            "languages": {"edges": []}
          }
        ]
      }
    }
  }
}`

func TestFetchViewerLanguages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}

		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Query == "" {
			t.Error("empty query in request body")
		}

		_, _ = w.Write([]byte(languagesResponse))
	}))
	defer srv.Close()

	c := NewClient("test-token", WithEndpoint(srv.URL))
	repos, err := c.FetchViewerLanguages(context.Background())
	if err != nil {
		t.Fatalf("FetchViewerLanguages() error = %v", err)
	}

	if len(repos) != 3 {
		t.Fatalf("len(repos) = %d, want 3", len(repos))
	}
	if repos[0].Name != "api" || repos[0].IsArchived {
		t.Errorf("repos[0] = %+v", repos[0])
	}
	if len(repos[0].Edges) != 2 || repos[0].Edges[0].Name != "Go" || repos[0].Edges[0].Size != 800 {
		t.Errorf("repos[0].Edges = %+v", repos[0].Edges)
	}
	if !repos[1].IsArchived {
		t.Error("repos[1].IsArchived = false, want true (archived flag must survive decoding)")
	}
	if len(repos[2].Edges) != 0 {
		t.Errorf("repos[2].Edges = %+v, want empty", repos[2].Edges)
	}
}

func TestFetchViewerLanguagesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-token", WithEndpoint(srv.URL))
	_, err := c.FetchViewerLanguages(context.Background())
	if !errors.Is(err, errors.ErrCodeTransport) {
		t.Errorf("error = %v, want TRANSPORT_ERROR", err)
	}
}

func TestFetchViewerLanguagesUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": null, "errors": [{"message": "Bad credentials", "type": "FORBIDDEN"}]}`))
	}))
	defer srv.Close()

	c := NewClient("token", WithEndpoint(srv.URL))
	_, err := c.FetchViewerLanguages(context.Background())
	if !errors.Is(err, errors.ErrCodeUpstreamQuery) {
		t.Fatalf("error = %v, want UPSTREAM_QUERY_ERROR", err)
	}
	if msg := errors.UserMessage(err); msg != "graphql query failed: Bad credentials" {
		t.Errorf("message = %q", msg)
	}
}
