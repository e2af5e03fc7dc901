// Package http provides a Wikipedia API implementation of
// wikinote.ArticleSource using plain HTTP requests.
package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jturek/wikinote"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the tool to the Wikipedia API, per its API
// etiquette guidelines.
const DefaultUserAgent = "wikinote/1.0 (https://github.com/jturek/wikinote)"

// Ensure Client implements the source interfaces at compile time.
var (
	_ wikinote.ArticleSource = (*Client)(nil)
	_ wikinote.SummarySource = (*Client)(nil)
)

// Client retrieves random article titles, rendered article HTML, and lead
// summaries from the Wikipedia API.
type Client struct {
	client    *http.Client
	baseURL   string
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLanguage points the client at the given language edition, e.g. "de"
// for de.wikipedia.org. Defaults to "en".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.baseURL = "https://" + lang + ".wikipedia.org"
	}
}

// WithBaseURL overrides the API base URL. Intended for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLimiter replaces the courtesy rate limiter. Pass nil to disable
// limiting entirely.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a Client for the English Wikipedia. The default
// limiter allows the two calls an attempt needs in a burst, then one
// request per second.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   "https://en.wikipedia.org",
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		limiter:   rate.NewLimiter(rate.Limit(1), 2),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// RandomTitle returns the title of a randomly chosen article.
func (c *Client) RandomTitle(ctx context.Context) (string, error) {
	var out struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/api/rest_v1/page/random/title", &out); err != nil {
		return "", err
	}
	if len(out.Items) == 0 || out.Items[0].Title == "" {
		return "", wikinote.Errorf(wikinote.ETRANSIENT, "random title response contained no title")
	}
	// The REST API returns titles with underscores; page URLs and the
	// parse API both accept either, but headings and notes want spaces.
	return strings.ReplaceAll(out.Items[0].Title, "_", " "), nil
}

// ArticleHTML returns the rendered body HTML for the titled article, the
// same markup MediaWiki serves inside its content container.
func (c *Client) ArticleHTML(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	q.Set("prop", "text")
	q.Set("redirects", "true")
	q.Set("page", title)

	var out struct {
		Parse struct {
			Text string `json:"text"`
		} `json:"parse"`
		Error *struct {
			Code string `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/w/api.php?"+q.Encode(), &out); err != nil {
		return "", err
	}
	if out.Error != nil {
		return "", wikinote.Errorf(wikinote.ETRANSIENT, "parse API error %s: %s", out.Error.Code, out.Error.Info)
	}
	if out.Parse.Text == "" {
		return "", wikinote.Errorf(wikinote.ETRANSIENT, "parse API returned no rendered text for %q", title)
	}
	return out.Parse.Text, nil
}

// Summary returns the lead-section extract HTML for the titled article.
func (c *Client) Summary(ctx context.Context, title string) (string, error) {
	var out struct {
		ExtractHTML string `json:"extract_html"`
	}
	endpoint := c.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(titleToPath(title))
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return "", err
	}
	return out.ExtractHTML, nil
}

// CanonicalURL returns the canonical page URL for the titled article.
func (c *Client) CanonicalURL(title string) string {
	return c.baseURL + "/wiki/" + url.PathEscape(titleToPath(title))
}

// titleToPath converts a display title to its path form (spaces become
// underscores).
func titleToPath(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}

// getJSON performs a rate-limited GET and decodes the JSON response into v.
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return wikinote.Errorf(wikinote.ETRANSIENT, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return wikinote.Errorf(wikinote.ETRANSIENT, "decoding response from %s: %v", rawURL, err)
	}
	return nil
}
