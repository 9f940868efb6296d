package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/awolk/sms-directions/internal/models"
)

const defaultBaseURL = "https://places.googleapis.com/v1/places:searchText"

// fieldMask limits the search response to what the pipeline consumes.
const fieldMask = "places.displayName,places.location,places.id"

// Resolver turns a free-text place name into a coordinate, optionally biased
// toward a reference point.
type Resolver interface {
	Resolve(ctx context.Context, query string, bias *models.LatLng) (*models.ResolvedPlace, error)
}

// Client resolves places through the Places searchText API. The first
// candidate is taken as authoritative; no further ranking is applied.
type Client struct {
	apiKey     string
	baseURL    string
	biasRadius float64
	httpClient *http.Client
}

func NewClient(apiKey string, biasRadius float64, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		biasRadius: biasRadius,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type searchRequest struct {
	TextQuery    string        `json:"textQuery"`
	LocationBias *locationBias `json:"locationBias,omitempty"`
}

type locationBias struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center coordinate `json:"center"`
	Radius float64    `json:"radius"`
}

type coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		Location coordinate `json:"location"`
	} `json:"places"`
}

func (c *Client) Resolve(ctx context.Context, query string, bias *models.LatLng) (*models.ResolvedPlace, error) {
	reqBody := searchRequest{TextQuery: query}
	if bias != nil {
		reqBody.LocationBias = &locationBias{
			Circle: circle{
				Center: coordinate{Latitude: bias.Latitude, Longitude: bias.Longitude},
				Radius: c.biasRadius,
			},
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search failed: %w", err)
	}
	defer resp.Body.Close()

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &models.ResolutionError{Query: query}
	}

	if len(data.Places) == 0 {
		return nil, &models.ResolutionError{Query: query}
	}

	first := data.Places[0]
	place := &models.ResolvedPlace{
		Name: first.DisplayName.Text,
		Location: models.LatLng{
			Latitude:  first.Location.Latitude,
			Longitude: first.Location.Longitude,
		},
	}
	if place.Name == "" {
		place.Name = query
	}
	if !place.Location.Valid() {
		return nil, &models.ResolutionError{Query: query}
	}

	return place, nil
}
