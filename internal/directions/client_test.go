package directions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awolk/sms-directions/internal/models"
)

var (
	testOrigin      = models.LatLng{Latitude: 40.6892, Longitude: -74.0445}
	testDestination = models.LatLng{Latitude: 40.7484, Longitude: -73.9857}
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key", time.Second)
	client.baseURL = server.URL
	return client
}

func TestFetch_RequestParameters(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"routes": []}`))
	})

	_, err := client.Fetch(context.Background(), testOrigin, testDestination, models.ModeWalking)

	require.NoError(t, err)
	assert.Equal(t, "40.6892,-74.0445", gotQuery.Get("origin"))
	assert.Equal(t, "40.7484,-73.9857", gotQuery.Get("destination"))
	assert.Equal(t, "walking", gotQuery.Get("mode"))
	assert.Equal(t, "now", gotQuery.Get("departure_time"))
	assert.Equal(t, "test-key", gotQuery.Get("key"))
}

func TestFetch_NoRoutesIsSentinelNotError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routes": []}`))
	})

	result, err := client.Fetch(context.Background(), testOrigin, testDestination, models.ModeDriving)

	require.NoError(t, err)
	assert.True(t, result.NoRoute)
	assert.Empty(t, result.Steps)
}

func TestFetch_FirstLegStepsNormalized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routes": [{"legs": [{
			"duration": {"text": "24 mins"},
			"steps": [
				{"html_instructions": "Turn <b>left</b> on Main St", "distance": {"text": "0.5 mi"}, "travel_mode": "WALKING"},
				{"html_instructions": "Go <b>straight</b> 2 blocks", "distance": {"text": "0.3 mi"}, "travel_mode": "WALKING"}
			]
		}]}]}`))
	})

	result, err := client.Fetch(context.Background(), testOrigin, testDestination, models.ModeWalking)

	require.NoError(t, err)
	assert.False(t, result.NoRoute)
	assert.Equal(t, "24 mins", result.Duration)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, "1. Turn left on Main St (0.5 mi)", result.Steps[0])
	assert.Equal(t, "2. Go straight 2 blocks (0.3 mi)", result.Steps[1])
}

func TestFetch_TransitStepRendersLegMetadata(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routes": [{"legs": [{
			"duration": {"text": "41 mins"},
			"steps": [
				{"html_instructions": "Walk to Fulton St Station", "distance": {"text": "0.2 mi"}, "travel_mode": "WALKING"},
				{
					"html_instructions": "Subway towards Uptown",
					"distance": {"text": "4.1 mi"},
					"travel_mode": "TRANSIT",
					"transit_details": {
						"departure_stop": {"name": "Fulton St"},
						"arrival_stop": {"name": "34 St - Herald Sq"},
						"line": {"short_name": "A", "name": "8 Avenue Express", "vehicle": {"name": "Subway", "type": "SUBWAY"}}
					}
				}
			]
		}]}]}`))
	})

	result, err := client.Fetch(context.Background(), testOrigin, testDestination, models.ModeTransit)

	require.NoError(t, err)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, "1. Walk to Fulton St Station (0.2 mi)", result.Steps[0])
	assert.Equal(t, "2. Take Subway A from Fulton St to 34 St - Herald Sq", result.Steps[1])
}

func TestFetch_MalformedResponseIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := client.Fetch(context.Background(), testOrigin, testDestination, models.ModeWalking)

	require.Error(t, err)
}
