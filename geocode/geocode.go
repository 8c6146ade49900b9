package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	c "niteout-backend/context"
	"niteout-backend/model"
)

var ErrNotFound = errors.New("no coordinates found for address")

// Resolver turns a freeform address or Eircode into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*model.Coordinates, error)
}

type googleResolver struct {
	url        string
	apiKey     string
	httpClient http.Client
}

// NewGoogleResolver returns a Resolver backed by the Google Maps Geocoding
// REST API.
func NewGoogleResolver(apiURL, apiKey string) Resolver {
	return &googleResolver{
		url:        apiURL,
		apiKey:     apiKey,
		httpClient: http.Client{Timeout: c.DefaultHTTPTimeout},
	}
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *googleResolver) Resolve(ctx context.Context, query string) (*model.Coordinates, error) {
	v := url.Values{}
	v.Set("address", query)
	v.Set("key", g.apiKey)

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", g.url, v.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("resolve: error building request: %w", err)
	}

	res, err := g.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("resolve: error calling geocoding api: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resolve: geocoding api returned status code: %d", res.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("resolve: error decoding response body: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("resolve: geocoding api error: %s: %s", body.Status, body.ErrorMessage)
	}

	if len(body.Results) == 0 {
		return nil, ErrNotFound
	}

	location := body.Results[0].Geometry.Location
	return &model.Coordinates{Xcoord: location.Lat, Ycoord: location.Lng}, nil
}
