// Package cms implements the content-store adapter against a Strapi-style
// headless CMS. All irregular response shapes (single-vs-array data, nested
// media attributes) are normalized here and never leak past this package.
package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"celebrationgarden/internal/domain"
)

// Client talks to the content store over its REST API.
type Client struct {
	baseURL  string
	apiToken string
	http     *retryablehttp.Client
	logger   *slog.Logger
}

// NewClient creates a content-store client. baseURL must not end with a
// slash.
func NewClient(baseURL, apiToken string, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.Logger = nil
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		http:     rc,
		logger:   logger,
	}
}

// get performs an authenticated GET against /api+path and returns the parsed
// body. A 404 maps to domain.ErrNotFound; transport errors and 5xx map to
// domain.ErrUpstreamUnavailable.
func (c *Client) get(ctx context.Context, path string) (gjson.Result, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api"+path, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req.Header, "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("content store request %s: %w: %v", path, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read response: %w: %v", domain.ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return gjson.Result{}, domain.ErrNotFound
	case resp.StatusCode >= 400:
		c.logger.Error("content store error response",
			"path", path, "status", resp.StatusCode, "body", truncate(string(body), 200))
		return gjson.Result{}, fmt.Errorf("content store status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	return gjson.ParseBytes(body), nil
}

// send performs an authenticated JSON request with a body (POST or PUT).
func (c *Client) send(ctx context.Context, method, path string, payload []byte) (gjson.Result, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req.Header, "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("content store request %s: %w: %v", path, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read response: %w: %v", domain.ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return gjson.Result{}, domain.ErrNotFound
	case resp.StatusCode >= 400:
		c.logger.Error("content store error response",
			"method", method, "path", path, "status", resp.StatusCode, "body", truncate(string(body), 200))
		return gjson.Result{}, fmt.Errorf("content store status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	return gjson.ParseBytes(body), nil
}

func (c *Client) setHeaders(h http.Header, contentType string) {
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	if c.apiToken != "" {
		h.Set("Authorization", "Bearer "+c.apiToken)
	}
}

// absoluteURL resolves a media URL against the store's base URL. Absolute
// URLs pass through untouched.
func (c *Client) absoluteURL(url string) string {
	if url == "" {
		return ""
	}
	if len(url) >= 4 && url[:4] == "http" {
		return url
	}
	if url[0] != '/' {
		return c.baseURL + "/" + url
	}
	return c.baseURL + url
}

// firstData normalizes the single-vs-array shape of a "data" field and
// returns the first item. Missing or null data yields a non-existent result.
func firstData(doc gjson.Result) gjson.Result {
	data := doc.Get("data")
	if data.IsArray() {
		arr := data.Array()
		if len(arr) == 0 {
			return gjson.Result{}
		}
		return arr[0]
	}
	if data.Type == gjson.Null {
		return gjson.Result{}
	}
	return data
}

// dataItems normalizes "data" to a slice regardless of shape.
func dataItems(doc gjson.Result) []gjson.Result {
	data := doc.Get("data")
	if data.IsArray() {
		return data.Array()
	}
	if !data.Exists() || data.Type == gjson.Null {
		return nil
	}
	return []gjson.Result{data}
}

// attr reads a field from an item, tolerating both flat (Strapi v5) and
// attributes-nested (v4) layouts.
func attr(item gjson.Result, field string) gjson.Result {
	if v := item.Get(field); v.Exists() {
		return v
	}
	return item.Get("attributes." + field)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
