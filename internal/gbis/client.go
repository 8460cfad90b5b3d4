// Package gbis talks to the Gyeonggi Bus Information System open API and
// decodes its XML responses into model records.
package gbis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// searchRadiusMeters is the fixed radius of a single coordinate search. The
// provider caps a query at one radius, so covering a bounding box takes
// multiple point queries.
const searchRadiusMeters = 1000

// Client issues requests against the GBIS REST endpoints. A failed request
// (transport error, timeout, non-2xx status) is returned as an error; callers
// are expected to treat it as "no data" rather than a fatal condition. The
// client never retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a GBIS client with a fixed request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchStationsByCoordinate fetches the raw station-search response for a
// single coordinate with the fixed search radius.
func (c *Client) SearchStationsByCoordinate(ctx context.Context, lat, lon float64) ([]byte, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(searchRadiusMeters))

	return c.get(ctx, "/stationinfo/getStationByPolyline", params)
}

// FetchStationDetail fetches the raw detail response for a single station,
// including the routes serving it.
func (c *Client) FetchStationDetail(ctx context.Context, stationID string) ([]byte, error) {
	params := url.Values{}
	params.Set("stationId", stationID)

	return c.get(ctx, "/stationinfo/getStationWithBusLisInfo", params)
}

// FetchRouteDetail fetches the raw detail response for a single route,
// including its ordered station list.
func (c *Client) FetchRouteDetail(ctx context.Context, routeID string) ([]byte, error) {
	params := url.Values{}
	params.Set("routeId", routeID)

	return c.get(ctx, "/routeinfo/getRouteWithStationList", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("gbis: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gbis: request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gbis: %s returned status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gbis: failed to read response body: %w", err)
	}

	return body, nil
}
