// Package lookup queries the warehouse inventory API for the values the
// assisted autofill offers: known products and container types for one
// facility.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osrtools/osrdesk/internal/logging"
)

// DefaultTimeout is the HTTP request timeout.
const DefaultTimeout = 5 * time.Second

// ErrNoFacility means no facility identifier was given to query for.
var ErrNoFacility = errors.New("no facility identifier configured")

// Product is one product known to the warehouse.
type Product struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Client fetches lookup data from the inventory API. The facility is passed
// per call because it can be configured mid-session.
type Client struct {
	// BaseURL of the inventory API, e.g. "http://wcs-host:8080".
	BaseURL string

	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
}

// NewClient creates a lookup client against the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Products returns the facility's known products.
func (c *Client) Products(ctx context.Context, facility string) ([]Product, error) {
	var products []Product
	err := c.get(ctx, facility, "products", &products)
	logging.LogLookup(facility, "products", len(products), err)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ContainerTypes returns the facility's known container types.
func (c *Client) ContainerTypes(ctx context.Context, facility string) ([]string, error) {
	var types []string
	err := c.get(ctx, facility, "container_types", &types)
	logging.LogLookup(facility, "container_types", len(types), err)
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (c *Client) get(ctx context.Context, facility, resource string, out any) error {
	if facility == "" {
		return ErrNoFacility
	}

	url := fmt.Sprintf("%s/api/facilities/%s/%s", c.BaseURL, facility, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("lookup %s: unexpected status %d: %s", resource, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}
