package noaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.weather.gov"

// Client is a National Weather Service API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new weather client. An empty baseURL selects the
// public weather service endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// Point resolves a coordinate to its forecast grid.
func (c *Client) Point(ctx context.Context, lat, lon float64) (*PointProperties, error) {
	url := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lon)
	var result Point
	if err := c.get(ctx, url, &result); err != nil {
		return nil, err
	}
	return &result.Properties, nil
}

// Gridpoint retrieves the raw measurements for a forecast grid cell.
func (c *Client) Gridpoint(ctx context.Context, gridID string, gridX, gridY int) (*GridData, error) {
	url := fmt.Sprintf("%s/gridpoints/%s/%d,%d", c.baseURL, gridID, gridX, gridY)
	var result Gridpoint
	if err := c.get(ctx, url, &result); err != nil {
		return nil, err
	}
	return &result.Properties, nil
}

// DetailedForecast retrieves the first period of the text forecast at the
// given forecast URL (as returned by Point).
func (c *Client) DetailedForecast(ctx context.Context, forecastURL string) (string, error) {
	// The points response carries an absolute URL; a relative one is taken
	// against the configured base for tests.
	if strings.HasPrefix(forecastURL, "/") {
		forecastURL = c.baseURL + forecastURL
	}
	var result Forecast
	if err := c.get(ctx, forecastURL, &result); err != nil {
		return "", err
	}
	if len(result.Properties.Periods) == 0 {
		return "", fmt.Errorf("forecast contains no periods")
	}
	return result.Properties.Periods[0].DetailedForecast, nil
}

func (c *Client) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "ferrydeck/1.0")
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
