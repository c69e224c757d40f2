package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"firmscrape/pkg/logger"
)

const (
	defaultUserAgent = "Mozilla/5.0 (compatible; WebScraper/1.0; +https://github.com/ranbeersaini155-cyber/Web_Scraping_Top_Data_Analytics_Firms)"
	defaultRetries   = 2
	defaultTimeout   = 15 * time.Second
)

// Doer is the transport seam; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	UserAgent string        // "" = default identifying agent
	Retries   int           // extra attempts after the first; 0 = default, negative = none
	Timeout   time.Duration // 0 = default
}

// Response is a fully drained page. Listing and profile pages are small
// enough to parse from memory.
type Response struct {
	URL        string // final URL after redirects
	StatusCode int
	Body       []byte
}

type Client struct {
	userAgent string
	retries   int
	doer      Doer
	limiter   *HostLimiter
	sleep     func(time.Duration)
}

type Option func(*Client)

// WithDoer replaces the HTTP transport. The configured timeout only applies
// to the built-in client; a custom doer brings its own.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// WithLimiter attaches a per-host politeness floor. Nil leaves requests
// unthrottled beyond the runner's fixed delays.
func WithLimiter(hl *HostLimiter) Option {
	return func(c *Client) { c.limiter = hl }
}

// WithSleep replaces the backoff sleep, letting tests count delays instead
// of waiting them out.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) { c.sleep = fn }
}

func New(cfg Config, opts ...Option) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Retries == 0 {
		cfg.Retries = defaultRetries
	} else if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	c := &Client{
		userAgent: cfg.UserAgent,
		retries:   cfg.Retries,
		doer:      &http.Client{Timeout: cfg.Timeout},
		sleep:     time.Sleep,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Get fetches the URL, retrying any failure (transport error or error
// status alike) with linear backoff: 2s before the second attempt, 3s
// before the third, and so on. The last error wins once attempts run out.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
				return nil, err
			}
		}

		res, err := c.get(ctx, rawURL)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if attempt < c.retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			backoff := time.Duration(2+attempt) * time.Second
			logger.Log.Debug().Str("url", rawURL).Int("attempt", attempt+1).
				Dur("backoff", backoff).Err(err).Msg("fetch failed, retrying")
			c.sleep(backoff)
		}
	}
	return nil, lastErr
}

func (c *Client) get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("get %s: status %d", rawURL, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body %s: %w", rawURL, err)
	}

	finalURL := rawURL
	if res.Request != nil && res.Request.URL != nil {
		finalURL = res.Request.URL.String()
	}
	return &Response{URL: finalURL, StatusCode: res.StatusCode, Body: body}, nil
}
