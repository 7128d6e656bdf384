package waha

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

const requestTimeout = 30 * time.Second

// Client talks to a WAHA gateway. Every request carries the API key in the
// X-Api-Key header. The gateway typically sits on a private network behind a
// self-signed certificate, so TLS verification is disabled.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		base:   baseURL,
		apiKey: apiKey,
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// Close releases the client's pooled connections. Safe on every exit path.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (Result, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Result{}, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body any) (Result, error) {
	buf := new(bytes.Buffer)
	if body != nil {
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return Result{}, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (Result, error) {
	req.Header.Set("X-Api-Key", c.apiKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(resp.Body)
		return Result{}, newAPIError(resp.StatusCode, detail)
	}
	return ParseResult(resp.Body)
}
