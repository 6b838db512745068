package wsf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.wsdot.wa.gov/ferries/api"

// DecodeError marks a feed that responded but whose body did not match the
// expected shape. The reconciler treats it differently from a plain network
// failure.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client is a ferry-authority API client covering the three live feeds:
// vessel locations, route schedules and terminal sailing space.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new feed client. An empty baseURL selects the public
// ferry authority endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// VesselLocations retrieves current positions for all vessels.
func (c *Client) VesselLocations(ctx context.Context) ([]VesselLocation, error) {
	var result []VesselLocation
	if err := c.get(ctx, "/vessels/rest/vessellocations", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RouteSchedule retrieves today's remaining sailings for one route.
func (c *Client) RouteSchedule(ctx context.Context, routeAbbrev string) (*RouteSchedule, error) {
	var result RouteSchedule
	params := url.Values{"route": {routeAbbrev}}
	if err := c.get(ctx, "/schedule/rest/scheduletoday", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TerminalSpace retrieves drive-up space counts for all terminals.
func (c *Client) TerminalSpace(ctx context.Context) ([]TerminalSpace, error) {
	var result []TerminalSpace
	if err := c.get(ctx, "/terminals/rest/terminalsailingspace", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	if params == nil {
		params = url.Values{}
	}
	if c.apiKey != "" {
		params.Set("apiaccesscode", c.apiKey)
	}
	u := c.baseURL + path
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &DecodeError{Endpoint: path, Err: err}
	}
	return nil
}
