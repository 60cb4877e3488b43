package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

const pagesEndpoint = "/wp-json/wp/v2/pages"

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// APIError is a non-success response from the WordPress REST API with the
// error body decoded.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// PageClient talks to the WordPress pages endpoint using basic auth with an
// application password.
type PageClient struct {
	cfg    ClientConfig
	client *http.Client
}

// NewPageClient creates a client for the configured site.
func NewPageClient(cfg ClientConfig) *PageClient {
	return &PageClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// pageResponse is the subset of the WP page resource the pipeline needs.
type pageResponse struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Link string `json:"link"`
}

// wpError is the WordPress REST error body.
type wpError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// createRequest is the create-page payload.
type createRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Status  string   `json:"status"`
	Slug    string   `json:"slug"`
	Meta    PageMeta `json:"meta"`
}

// FindBySlug queries the site for an existing page with the given slug.
// Returns nil without error when no page matches; not-found is a normal
// outcome, not a failure.
func (c *PageClient) FindBySlug(slug string) (*PageRef, error) {
	endpoint := c.cfg.BaseURL + pagesEndpoint

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building lookup request: %w", err)
	}

	q := url.Values{}
	q.Set("slug", slug)
	// Drafts count as duplicates too; the default query only returns
	// published pages.
	q.Set("status", "publish,draft")
	req.URL.RawQuery = q.Encode()
	req.SetBasicAuth(c.cfg.Username, c.cfg.AppPassword)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("looking up slug %q: %w", slug, err)
	}
	defer resp.Body.Close()

	debugLog("slug lookup %q: status=%d", slug, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var pages []pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&pages); err != nil {
		return nil, fmt.Errorf("parsing lookup response: %w", err)
	}

	if len(pages) == 0 {
		return nil, nil
	}

	return &PageRef{ID: pages[0].ID, Slug: pages[0].Slug, URL: pages[0].Link}, nil
}

// CreatePage submits a composed page and returns the created page's identity.
func (c *PageClient) CreatePage(page ComposedPage) (*PageRef, error) {
	endpoint := c.cfg.BaseURL + pagesEndpoint

	payload := createRequest{
		Title:   page.Title,
		Content: page.Body,
		Status:  string(page.Status),
		Slug:    page.Slug,
		Meta:    page.Meta,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding create payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.Username, c.cfg.AppPassword)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("creating page %q: %w", page.Slug, err)
	}
	defer resp.Body.Close()

	debugLog("create %q: status=%d", page.Slug, resp.StatusCode)

	if resp.StatusCode != http.StatusCreated {
		return nil, c.decodeError(resp)
	}

	var created pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("parsing create response: %w", err)
	}

	return &PageRef{ID: created.ID, Slug: created.Slug, URL: created.Link}, nil
}

// decodeError turns a non-success response into an *APIError, falling back
// to a bare *HTTPError when the body is not a WP error document.
func (c *PageClient) decodeError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var we wpError
		if json.Unmarshal(data, &we) == nil && we.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Code: we.Code, Message: we.Message}
		}
	}
	return &HTTPError{StatusCode: resp.StatusCode, URL: resp.Request.URL.String()}
}
