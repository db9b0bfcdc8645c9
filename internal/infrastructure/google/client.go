package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/cartfinder/backend/internal/domain"
	"github.com/paulmach/orb"
	"golang.org/x/time/rate"
)

// statusOK is the application-level success status shared by the
// geocoding and places endpoints. ZERO_RESULTS is a valid empty answer,
// anything else is an API-level failure.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client handles communication with the Google Maps web services
// (geocoding, places nearby search, places text search).
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Google Maps API client. The timeout applies
// per request; qps bounds the upstream call rate.
func NewClient(apiKey, baseURL string, timeout time.Duration, qps float64) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if qps <= 0 {
		qps = 10
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(qps), 5),
	}
}

// SetDebug toggles verbose request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string, sentinel error) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Cartfinder/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", sentinel, err)
	}

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[google] HTTP %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", sentinel, resp.StatusCode)
	}

	return body, nil
}

// Geocode resolves a free-text address into a coordinate using the first
// geocoding result. orb.Point is [lng, lat].
func (c *Client) Geocode(ctx context.Context, address string) (orb.Point, error) {
	if c.debug {
		log.Printf("[google] Geocode called with address: %q", address)
	}

	endpoint := fmt.Sprintf("%s/geocode/json", c.baseURL)
	params := url.Values{}
	params.Add("address", address)
	params.Add("key", c.apiKey)

	body, err := c.doRequest(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()), domain.ErrGeocodeFailure)
	if err != nil {
		return orb.Point{}, err
	}

	var geocodeResp domain.GeocodeResponse
	if err := json.Unmarshal(body, &geocodeResp); err != nil {
		return orb.Point{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if geocodeResp.Status != statusOK || len(geocodeResp.Results) == 0 {
		return orb.Point{}, fmt.Errorf("%w: status %s", domain.ErrGeocodeFailure, geocodeResp.Status)
	}

	loc := geocodeResp.Results[0].Geometry.Location
	return orb.Point{loc.Lng, loc.Lat}, nil
}

// NearbySearch finds grocery stores around the origin within the given
// radius. An empty keyword skips the keyword filter entirely.
func (c *Client) NearbySearch(ctx context.Context, origin orb.Point, radiusMeters int, keyword string) ([]domain.Place, error) {
	if c.debug {
		log.Printf("[google] NearbySearch at (%f, %f) radius=%dm keyword=%q",
			origin.Lat(), origin.Lon(), radiusMeters, keyword)
	}

	endpoint := fmt.Sprintf("%s/place/nearbysearch/json", c.baseURL)
	params := url.Values{}
	params.Add("location", fmt.Sprintf("%f,%f", origin.Lat(), origin.Lon()))
	params.Add("radius", fmt.Sprintf("%d", radiusMeters))
	params.Add("type", "grocery_or_supermarket")
	if keyword != "" {
		params.Add("keyword", keyword)
	}
	params.Add("key", c.apiKey)

	return c.searchPlaces(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()))
}

// TextSearch runs a free-text places query. Response shape mirrors
// nearby search.
func (c *Client) TextSearch(ctx context.Context, query string) ([]domain.Place, error) {
	if c.debug {
		log.Printf("[google] TextSearch called with query: %q", query)
	}

	endpoint := fmt.Sprintf("%s/place/textsearch/json", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("key", c.apiKey)

	return c.searchPlaces(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()))
}

func (c *Client) searchPlaces(ctx context.Context, reqURL string) ([]domain.Place, error) {
	body, err := c.doRequest(ctx, reqURL, domain.ErrPlacesAPIFailure)
	if err != nil {
		return nil, err
	}

	var placesResp domain.PlacesResponse
	if err := json.Unmarshal(body, &placesResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch placesResp.Status {
	case statusOK:
		return placesResp.Results, nil
	case statusZeroResults:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: status %s", domain.ErrPlacesAPIFailure, placesResp.Status)
	}
}
