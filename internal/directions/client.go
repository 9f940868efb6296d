package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/awolk/sms-directions/internal/models"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/directions/json"

// Fetcher retrieves a live route between two resolved coordinates.
type Fetcher interface {
	Fetch(ctx context.Context, origin, destination models.LatLng, mode string) (*models.RouteResult, error)
}

// Client fetches routes from the Directions API. Only the first route's
// first leg is consumed.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type directionsResponse struct {
	Routes []route `json:"routes"`
}

type route struct {
	Legs []leg `json:"legs"`
}

type leg struct {
	Duration textValue `json:"duration"`
	Steps    []step    `json:"steps"`
}

type textValue struct {
	Text string `json:"text"`
}

type step struct {
	HTMLInstructions string          `json:"html_instructions"`
	Distance         textValue       `json:"distance"`
	TravelMode       string          `json:"travel_mode"`
	TransitDetails   *transitDetails `json:"transit_details"`
}

type transitDetails struct {
	DepartureStop stop        `json:"departure_stop"`
	ArrivalStop   stop        `json:"arrival_stop"`
	Line          transitLine `json:"line"`
}

type stop struct {
	Name string `json:"name"`
}

type transitLine struct {
	ShortName string  `json:"short_name"`
	Name      string  `json:"name"`
	Vehicle   vehicle `json:"vehicle"`
}

type vehicle struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func formatLatLng(p models.LatLng) string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}

func (c *Client) Fetch(ctx context.Context, origin, destination models.LatLng, mode string) (*models.RouteResult, error) {
	params := url.Values{}
	params.Set("origin", formatLatLng(origin))
	params.Set("destination", formatLatLng(destination))
	params.Set("mode", mode)
	params.Set("departure_time", "now")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions lookup failed: %w", err)
	}
	defer resp.Body.Close()

	var data directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	// An unroutable pair is a normal outcome, not an error.
	if len(data.Routes) == 0 || len(data.Routes[0].Legs) == 0 {
		return &models.RouteResult{NoRoute: true}, nil
	}

	first := data.Routes[0].Legs[0]
	steps := make([]string, 0, len(first.Steps))
	for i, s := range first.Steps {
		steps = append(steps, renderStep(i+1, s))
	}

	return &models.RouteResult{
		Duration: first.Duration.Text,
		Steps:    steps,
	}, nil
}
