// Package client provides HTTP access to an ENCODE-style metadata service.
// Records are addressed as /<type>/<accession>/ against a fixed origin and
// served as JSON objects.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kepbod/seqlib/internal/errors"
)

// Client fetches JSON metadata records from a service origin.
type Client struct {
	httpClient *http.Client
	base       *url.URL
}

// New creates a client for the given service origin.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	const op = errors.Op("client.New")

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.E(op, errors.KindConfig, err, "invalid base URL")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.E(op, errors.KindConfig,
			fmt.Sprintf("base URL %q must be absolute", baseURL))
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		base: base,
	}, nil
}

// BaseURL returns the service origin the client is bound to.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ResourcePath builds the canonical resource path /<segment>/<accession>/.
func ResourcePath(segment, accession string) string {
	return "/" + segment + "/" + accession + "/"
}

// ResolveURL resolves a path or relative reference against the service
// origin. Download hrefs in metadata documents are served relative and
// must always be resolved before use.
func (c *Client) ResolveURL(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return c.base.String()
	}
	return c.base.ResolveReference(u).String()
}

// FetchDocument retrieves the JSON document for a record. It issues exactly
// one GET request; network and decode failures are fatal for the lookup.
func (c *Client) FetchDocument(ctx context.Context, segment, accession string) (map[string]interface{}, error) {
	const op = errors.Op("client.FetchDocument")

	if segment == "" {
		return nil, errors.E(op, errors.KindConfig, "entry type segment must not be empty")
	}
	if accession == "" {
		return nil, errors.E(op, errors.KindValidation, "accession must not be empty")
	}

	target := c.ResolveURL(ResourcePath(segment, accession))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.E(op, errors.KindNetwork, err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.E(op, errors.KindNetwork, err,
			fmt.Sprintf("failed to fetch %s", target))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.E(op, errors.KindNetwork,
			fmt.Sprintf("HTTP error for %s: %s", target, resp.Status))
	}

	var doc map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.E(op, errors.KindParse, err,
			fmt.Sprintf("failed to decode response for %s", target))
	}

	return doc, nil
}
