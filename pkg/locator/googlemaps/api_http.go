package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPAPIClient is the production implementation of APIClient.
type HTTPAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewHTTPAPIClient creates a new HTTP-based API client for production use.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &HTTPAPIClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode calls GET /maps/api/geocode/json.
func (c *HTTPAPIClient) Geocode(ctx context.Context, query string) (*GeocodeResponse, error) {
	params := url.Values{}
	params.Set("address", query)
	params.Set("key", c.apiKey)

	var result GeocodeResponse
	if err := c.get(ctx, "/maps/api/geocode/json", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DistanceMatrix calls GET /maps/api/distancematrix/json. Multiple origins
// or destinations are pipe-joined per the API convention.
func (c *HTTPAPIClient) DistanceMatrix(ctx context.Context, origins, destinations []string) (*DistanceMatrixResponse, error) {
	params := url.Values{}
	params.Set("origins", strings.Join(origins, "|"))
	params.Set("destinations", strings.Join(destinations, "|"))
	params.Set("key", c.apiKey)

	var result DistanceMatrixResponse
	if err := c.get(ctx, "/maps/api/distancematrix/json", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPAPIClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			Status:  fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message: fmt.Sprintf("google maps returned status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode google maps response: %w", err)
	}
	return nil
}

var _ APIClient = (*HTTPAPIClient)(nil)
