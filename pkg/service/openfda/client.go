package openfda

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
)

// DefaultBaseURL is the public 510(k) endpoint
const DefaultBaseURL = "https://api.fda.gov/device/510k.json"

// Client queries the openFDA device/510k endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.OpenFDAClient = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL points the client at another endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// New creates a new openFDA client
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search fetches one page of results. openFDA answers 404 when the window
// starting at skip holds no matches; that case wraps model.ErrNoMatches.
func (c *Client) Search(ctx context.Context, query string, skip, limit int) (*model.Response, error) {
	endpoint, err := BuildURL(c.baseURL, query, skip, limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create openFDA request", goerr.V("url", endpoint))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to request openFDA",
			goerr.V("query", query),
			goerr.V("skip", skip))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, goerr.Wrap(model.ErrNoMatches, "openFDA returned not found",
			goerr.V("query", query),
			goerr.V("skip", skip))
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, goerr.New("unexpected openFDA status",
			goerr.V("status", resp.Status),
			goerr.V("body", strings.TrimSpace(string(body))),
			goerr.V("query", query),
			goerr.V("skip", skip))
	}

	var out model.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, goerr.Wrap(err, "failed to decode openFDA response",
			goerr.V("query", query),
			goerr.V("skip", skip))
	}

	return &out, nil
}

// BuildURL adds the search, limit and skip parameters to baseURL.
// skip is omitted when it is zero.
func BuildURL(baseURL, query string, skip, limit int) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid openFDA base URL", goerr.V("url", baseURL))
	}

	params := u.Query()
	params.Set("search", query)
	params.Set("limit", strconv.Itoa(limit))
	if skip > 0 {
		params.Set("skip", strconv.Itoa(skip))
	}
	u.RawQuery = params.Encode()

	return u.String(), nil
}
