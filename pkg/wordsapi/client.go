package wordsapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/wordsapi/pkg/ctxutil"
)

const (
	// DefaultBaseURL is the WordsAPI words endpoint. The word is appended directly.
	DefaultBaseURL = "https://wordsapiv1.p.mashape.com/words/"

	// DefaultHost is sent in the x-mashape-host header.
	DefaultHost = "wordsapiv1.p.mashape.com"

	headerKey  = "x-mashape-key"
	headerHost = "x-mashape-host"
)

// Client performs WordsAPI lookups. It holds only immutable configuration
// and is safe for concurrent use.
type Client struct {
	baseURL    string
	host       string
	token      string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base. The word is appended verbatim after it,
// so the base normally ends with "/".
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHost overrides the x-mashape-host header value.
func WithHost(host string) Option {
	return func(c *Client) { c.host = host }
}

// WithHTTPClient sets the transport. Timeouts, if any, belong to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger. By default the client does not log.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger.With("adapter", "wordsapi")
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client authenticated with the given API token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		host:       DefaultHost,
		token:      token,
		httpClient: &http.Client{},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string { return c.baseURL }

// Host returns the configured x-mashape-host value.
func (c *Client) Host() string { return c.host }

// BuildURL returns base + escaped word + the relation suffix.
// The word is escaped as a single path segment.
func BuildURL(base, word string, rel Relation) string {
	return base + url.PathEscape(word) + rel.Suffix()
}

// RequestURL returns the URL the client would call for word and rel.
func (c *Client) RequestURL(word string, rel Relation) string {
	return BuildURL(c.baseURL, word, rel)
}

// Lookup performs one GET for word and rel and returns the raw envelope.
// It blocks until the whole body has been read or ctx is done.
// Non-2xx answers are returned as *StatusError.
func (c *Client) Lookup(ctx context.Context, word string, rel Relation) (*Response, error) {
	reqURL := c.RequestURL(word, rel)
	log := c.log
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		log = log.With(slog.String("request_id", id))
	}

	log.DebugContext(ctx, "wordsapi request",
		slog.String("word", word),
		slog.String("relation", rel.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &RequestError{Op: "create request", URL: reqURL, Err: err}
	}
	req.Header.Set(headerKey, c.token)
	req.Header.Set(headerHost, c.host)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ErrorContext(ctx, "wordsapi request failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, &RequestError{Op: "get", URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Op: "read body", URL: reqURL, Err: err}
	}

	limits := ParseRateLimit(resp.Header)

	log.DebugContext(ctx, "wordsapi response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slog.Int("ratelimit_remaining", limits.Remaining),
		slog.Int("ratelimit_limit", limits.Limit),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			URL:        reqURL,
			Body:       body,
			RateLimit:  limits,
		}
	}

	return &Response{
		Word:       word,
		Relation:   rel,
		URL:        reqURL,
		StatusCode: resp.StatusCode,
		Body:       body,
		RateLimit:  limits,
	}, nil
}

// LookUp performs a lookup for the relation of the record type T. The
// relation is read from a freshly allocated *T, so T is the record struct
// itself (LookUp[Synonyms]), never a pointer to it.
func LookUp[T any, P interface {
	*T
	Record
}](ctx context.Context, c *Client, word string) (*Typed[T], error) {
	rel := P(new(T)).Relation()
	resp, err := c.Lookup(ctx, word, rel)
	if err != nil {
		return nil, err
	}
	return &Typed[T]{Response: resp}, nil
}

// String hides the token.
func (c *Client) String() string {
	return fmt.Sprintf("wordsapi.Client{base: %s, host: %s}", c.baseURL, c.host)
}
