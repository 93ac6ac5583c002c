package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avtools/tamscout/internal/paging"
	"github.com/charmbracelet/log"
)

const (
	userAgent      = "tamscout/1.0"
	defaultTimeout = 30 * time.Second
)

// Client talks to one TAMS store. The base URL is injected at construction;
// there is no package-level endpoint state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *log.Logger
}

// NewClient creates a client for the store at baseURL. token may be empty
// for stores without bearer auth; logger may be nil to disable logging.
func NewClient(baseURL, token string, logger *log.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		logger:  logger,
	}
}

// SetTimeout overrides the default per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// BaseURL returns the store endpoint this client was built for.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON performs a GET against path (plus an already-encoded query string),
// decodes the JSON body into out, and returns the response's pagination
// state. Every call is independent; nothing is cached between requests.
func (c *Client) getJSON(path, query string, out any) (paging.Page, error) {
	url := c.baseURL + path + query

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return paging.Page{}, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	if c.logger != nil {
		c.logger.Info("GET", "endpoint", url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return paging.Page{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return paging.Page{}, fmt.Errorf("store returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	page := paging.ParsePage(resp.Header)
	if c.logger != nil {
		c.logger.Debug("Paging",
			"limit", resp.Header.Get("X-Paging-Limit"),
			"count", resp.Header.Get("X-Paging-Count"),
			"has_next", page.HasNext(),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return paging.Page{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return page, nil
}

// doJSON performs a request with a JSON body (POST/DELETE style calls that
// carry no pagination). A nil body sends an empty request.
func (c *Client) doJSON(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.logger != nil {
		c.logger.Info(method, "endpoint", url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("store returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
