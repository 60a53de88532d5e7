package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// geocodeTimeout keeps geocoding from stalling the search flow.
const geocodeTimeout = 10 * time.Second

// Geocoder converts free-text locations to coordinates and back via a
// third-party REST service.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeocoder creates a geocoder against the given service base URL.
func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: geocodeTimeout},
	}
}

type geocodeResult struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Label     string  `json:"label"`
}

// Forward resolves a free-text location query to coordinates.
func (g *Geocoder) Forward(ctx context.Context, query string) (Point, error) {
	params := url.Values{"q": {query}}
	var result geocodeResult
	if err := g.get(ctx, "/forward", params, &result); err != nil {
		return Point{}, fmt.Errorf("forward geocoding %q failed: %w", query, err)
	}
	return Point{Latitude: result.Latitude, Longitude: result.Longitude}, nil
}

// ReverseLabel resolves coordinates to a display label. On any failure it
// degrades to the raw coordinates instead of surfacing an error, so the flow
// never breaks on a geocoding outage.
func (g *Geocoder) ReverseLabel(ctx context.Context, point Point) string {
	params := url.Values{
		"lat": {fmt.Sprintf("%f", point.Latitude)},
		"lng": {fmt.Sprintf("%f", point.Longitude)},
	}
	var result geocodeResult
	if err := g.get(ctx, "/reverse", params, &result); err != nil || result.Label == "" {
		return RawLabel(point)
	}
	return result.Label
}

func (g *Geocoder) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
