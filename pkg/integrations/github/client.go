// Package github queries the GitHub GraphQL API for the viewer's
// repository language breakdowns.
//
// The client issues a single fixed query against the viewer's owned,
// non-fork, public repositories (first 100 repositories, first 20 languages
// each, largest first). Repositories or languages beyond those page caps are
// silently excluded; that is an accepted limitation of the upstream
// contract, not an error.
package github

import (
	"context"
	"net/http"
	"strings"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/httputil"
	"github.com/matzehuels/toplangs/pkg/langstats"
)

// DefaultEndpoint is the GitHub GraphQL API endpoint.
const DefaultEndpoint = "https://api.github.com/graphql"

// viewerLanguagesQuery fetches per-repository language byte sizes for the
// authenticated user.
const viewerLanguagesQuery = `query {
  viewer {
    repositories(first: 100, ownerAffiliations: [OWNER], isFork: false, privacy: PUBLIC) {
      nodes {
        name
        isArchived
        languages(first: 20, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node { name }
          }
        }
      }
    }
  }
}`

// Client talks to the GitHub GraphQL API with token authentication.
type Client struct {
	http     *httputil.Client
	endpoint string
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the GraphQL endpoint, mainly for tests.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http.HTTP = h }
}

// NewClient creates a GitHub GraphQL client authenticated with token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		http: httputil.NewClient(map[string]string{
			"Authorization": "Bearer " + token,
		}),
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchViewerLanguages runs the viewer languages query and maps the result
// into aggregation records. A non-success HTTP status surfaces as a
// TRANSPORT_ERROR; a GraphQL errors payload in a success response surfaces
// as an UPSTREAM_QUERY_ERROR carrying the raw messages.
func (c *Client) FetchViewerLanguages(ctx context.Context) ([]langstats.RepoLanguages, error) {
	var resp viewerLanguagesResponse
	req := graphQLRequest{Query: viewerLanguagesQuery}
	if err := c.http.PostJSON(ctx, c.endpoint, req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Errors) > 0 {
		msgs := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			msgs[i] = e.Message
		}
		return nil, errors.New(errors.ErrCodeUpstreamQuery, "graphql query failed: %s", strings.Join(msgs, "; "))
	}

	nodes := resp.Data.Viewer.Repositories.Nodes
	repos := make([]langstats.RepoLanguages, 0, len(nodes))
	for _, node := range nodes {
		repo := langstats.RepoLanguages{
			Name:       node.Name,
			IsArchived: node.IsArchived,
		}
		for _, edge := range node.Languages.Edges {
			repo.Edges = append(repo.Edges, langstats.LanguageEdge{
				Name: edge.Node.Name,
				Size: edge.Size,
			})
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
