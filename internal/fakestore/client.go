// Package fakestore is a client for the FakeStore product API.
package fakestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/shophub/internal/models"
)

const (
	DefaultBaseURL       = "https://fakestoreapi.com"
	DefaultFeaturedLimit = 8
)

var (
	// ErrFetchFailed wraps every transport, status or decoding failure.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrProductNotFound is returned when the API answers an unknown id with an empty body.
	ErrProductNotFound = errors.New("product not found")

	errEmptyBody = errors.New("empty response body")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListProducts fetches the whole catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getList(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	if err := c.get(ctx, "/products/"+strconv.Itoa(id), &p); err != nil {
		if errors.Is(err, errEmptyBody) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}

// ListFeatured fetches the first limit products shown on the home page.
func (c *Client) ListFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	var products []models.Product
	if err := c.getList(ctx, "/products?limit="+strconv.Itoa(limit), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories fetches the distinct category names.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getList(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// getList treats an empty body as a failed fetch; only single product lookups give it a meaning.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	err := c.get(ctx, path, out)
	if errors.Is(err, errEmptyBody) {
		return errors.Wrapf(ErrFetchFailed, "GET %s: %v", path, err)
	}
	return err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrapf(ErrFetchFailed, "build request %s: %v", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(ErrFetchFailed, "GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrap(ErrFetchFailed, fmt.Sprintf("GET %s: status %d", path, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return errors.Wrapf(ErrFetchFailed, "read %s: %v", path, err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return errEmptyBody
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(ErrFetchFailed, "decode %s: %v", path, err)
	}
	return nil
}
