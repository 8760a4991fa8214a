package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client wraps a plain http.Client with the batch user agent and an
// optional per-host rate limiter. Every outbound request in the run goes
// through it.
type Client struct {
	hc      *http.Client
	ua      string
	limiter *HostLimiter
}

func NewClient(timeout time.Duration, userAgent string, limiter *HostLimiter) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		ua:      userAgent,
		limiter: limiter,
	}
}

// Get fetches rawURL and parses the body. Any failure (transport error,
// non-2xx status, unparseable body) comes back as an error; callers treat
// it as "absent" and move on.
func (c *Client) Get(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.ua)

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// Ok reports whether rawURL answers a GET with a success status. Used by
// the website locator's TLD probing, where any failure simply advances to
// the next candidate.
func (c *Client) Ok(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.ua)

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
			return false
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode >= 200 && res.StatusCode <= 299
}

// Head issues a HEAD request and returns the status code. Link
// verification uses it to spot-check scraped URLs.
func (c *Client) Head(ctx context.Context, rawURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.ua)

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
			return 0, err
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	return res.StatusCode, nil
}

// Document parses an HTML string, typically a rendered page from the
// browser path.
func Document(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
