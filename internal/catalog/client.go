package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const productsEndpoint = "/v1/products/default/"

// ErrProductNotFound is returned when a product ID is not present in the
// catalog for the requested currency.
var ErrProductNotFound = errors.New("product not found in catalog")

// Client handles communication with the storefront catalog API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new catalog API client
func NewClient(baseURL string) *Client {
	// The catalog API throttles aggressive polling; 2 req/s with a small
	// burst keeps fixture-driven runs well under the limit.
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: limiter,
	}
}

// GetProducts fetches the default product list priced in the given currency
func (c *Client) GetProducts(ctx context.Context, currency string) (*ProductsResponse, error) {
	params := url.Values{}
	params.Add("currency", currency)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, productsEndpoint, params.Encode())

	// Retry up to 3 times for transient transport failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[catalog] request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		return decodeProductsResponse(resp)
	}

	return nil, fmt.Errorf("failed to fetch products after 3 attempts: %w", lastErr)
}

// GetProductByID fetches the product list for a currency and returns the
// product with the given ID, or ErrProductNotFound
func (c *Client) GetProductByID(ctx context.Context, currency, id string) (*Product, error) {
	data, err := c.GetProducts(ctx, currency)
	if err != nil {
		return nil, err
	}

	for i := range data.Products {
		if data.Products[i].ID == id {
			return &data.Products[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s (%s)", ErrProductNotFound, id, currency)
}

// doRequest executes an HTTP GET request with proper headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

func decodeProductsResponse(resp *http.Response) (*ProductsResponse, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Non-2xx responses are fatal: the run cannot proceed without ground truth
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("failed to fetch products: %d %s: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(body)))
	}

	var products ProductsResponse
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &products, nil
}
