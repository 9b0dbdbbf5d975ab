// Package figma provides a client for the Figma REST API, implementing
// the domain FileSource and Renderer ports.
package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"figroad/internal/domain"
)

// DefaultBaseURL is the production Figma API endpoint.
const DefaultBaseURL = "https://api.figma.com/v1"

// maxImageBytes caps a single rendered image download.
const maxImageBytes = 64 << 20

// Ensure Client implements the domain ports.
var (
	_ domain.FileSource = (*Client)(nil)
	_ domain.Renderer   = (*Client)(nil)
)

// Client talks to the Figma REST API. The token is an explicit value
// passed in by the caller, not read from process state here.
type Client struct {
	httpc   *http.Client
	baseURL string
	token   string
	scale   float64
	format  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithScale sets the render scale factor (Figma accepts 0.01–4).
func WithScale(scale float64) Option {
	return func(c *Client) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// NewClient creates a Figma API client.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpc:   &http.Client{Timeout: 60 * time.Second},
		baseURL: DefaultBaseURL,
		token:   token,
		scale:   1,
		format:  "png",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fileResponse is the subset of GET /v1/files/{key} the pipeline reads.
type fileResponse struct {
	Name     string          `json:"name"`
	Document *domain.RawNode `json:"document"`
}

// imagesResponse is the shape of GET /v1/images/{key}.
type imagesResponse struct {
	Err    string            `json:"err"`
	Images map[string]string `json:"images"`
}

// File fetches a design file: its display name and raw node tree.
func (c *Client) File(ctx context.Context, key string) (*domain.File, error) {
	var resp fileResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/files/%s", c.baseURL, url.PathEscape(key)), &resp); err != nil {
		return nil, fmt.Errorf("figma file %s: %w", key, err)
	}
	name := resp.Name
	if name == "" {
		name = "Unknown Project"
	}
	return &domain.File{Key: key, Name: name, Document: resp.Document}, nil
}

// Render asks Figma to rasterize one node and downloads the result.
// The images endpoint returns a short-lived URL per node id; a missing or
// empty URL means Figma could not render the node.
func (c *Client) Render(ctx context.Context, fileKey, nodeID string) ([]byte, error) {
	q := url.Values{}
	q.Set("ids", nodeID)
	q.Set("format", c.format)
	q.Set("scale", strconv.FormatFloat(c.scale, 'f', -1, 64))

	var resp imagesResponse
	endpoint := fmt.Sprintf("%s/images/%s?%s", c.baseURL, url.PathEscape(fileKey), q.Encode())
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("figma render %s: %w", nodeID, err)
	}
	if resp.Err != "" {
		return nil, fmt.Errorf("figma render %s: %s", nodeID, resp.Err)
	}
	imageURL, ok := resp.Images[nodeID]
	if !ok || imageURL == "" {
		return nil, fmt.Errorf("figma render %s: no image produced", nodeID)
	}

	return c.download(ctx, imageURL)
}

// getJSON performs an authenticated GET and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Figma-Token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// download fetches rendered bytes from the URL Figma handed back. The
// image host is S3, not the API, so no token header goes along.
func (c *Client) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	return data, nil
}
