package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client talks to the record service over HTTP JSON. It is bound to one
// form type's resource path at construction; the workflow controller never
// sees verbs, paths, or status codes.
type Client struct {
	baseURL string
	form    string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// NewClient builds a Client for one form type, e.g.
// NewClient("https://api.example.com/v1", "accreditation").
func NewClient(baseURL, form string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		form:    url.PathEscape(form),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Create posts a new record.
func (c *Client) Create(ctx context.Context, payload Record) (CreateResult, error) {
	var result CreateResult
	err := c.do(ctx, http.MethodPost, c.collectionURL(), payload, &result)
	return result, err
}

// Get fetches a record by id.
func (c *Client) Get(ctx context.Context, id string) (Record, error) {
	var record Record
	err := c.do(ctx, http.MethodGet, c.recordURL(id), nil, &record)
	return record, err
}

// Update patches a record, optionally scoped to one page.
func (c *Client) Update(ctx context.Context, id string, page int, payload Record) (UpdateResult, error) {
	target := c.recordURL(id)
	if page > 0 {
		target += "?page=" + strconv.Itoa(page)
	}
	var result UpdateResult
	err := c.do(ctx, http.MethodPatch, target, payload, &result)
	return result, err
}

// Submit finalises a record.
func (c *Client) Submit(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, c.recordURL(id)+"/submit", nil, nil)
}

func (c *Client) collectionURL() string {
	return c.baseURL + "/" + c.form
}

func (c *Client) recordURL(id string) string {
	return c.collectionURL() + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, target string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("backend: encode %s payload: %w", method, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Transient(method, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrSubmitted
	case resp.StatusCode >= 500:
		return Transient(method, fmt.Errorf("server returned %s", resp.Status))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("backend: unexpected status %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Transient(method, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}
