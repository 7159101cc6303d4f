package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWeatherForecastSubsamples(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Paris" {
			t.Errorf("expected q=Paris, got %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("expected units=metric, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// Nine 3-hourly entries; entries 0 and 8 survive the subsample.
		w.Write([]byte(`{"list":[
			{"dt_txt":"2024-06-01 00:00:00","main":{"temp":21.34},"weather":[{"description":"light rain"}]},
			{"dt_txt":"2024-06-01 03:00:00","main":{"temp":19.0},"weather":[{"description":"mist"}]},
			{"dt_txt":"2024-06-01 06:00:00","main":{"temp":20.0},"weather":[{"description":"mist"}]},
			{"dt_txt":"2024-06-01 09:00:00","main":{"temp":22.0},"weather":[{"description":"clear sky"}]},
			{"dt_txt":"2024-06-01 12:00:00","main":{"temp":24.0},"weather":[{"description":"clear sky"}]},
			{"dt_txt":"2024-06-01 15:00:00","main":{"temp":25.0},"weather":[{"description":"clear sky"}]},
			{"dt_txt":"2024-06-01 18:00:00","main":{"temp":23.0},"weather":[{"description":"few clouds"}]},
			{"dt_txt":"2024-06-01 21:00:00","main":{"temp":21.0},"weather":[{"description":"few clouds"}]},
			{"dt_txt":"2024-06-02 00:00:00","main":{"temp":18.5},"weather":[{"description":"overcast clouds"}]}
		]}`))
	}))
	defer srv.Close()

	client := NewWeatherClient("test-key")
	client.baseURL = srv.URL

	samples, err := client.Forecast(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Date != "2024-06-01" || samples[0].TempC != 21.34 || samples[0].Description != "light rain" {
		t.Errorf("unexpected first sample: %+v", samples[0])
	}
	if samples[1].Date != "2024-06-02" || samples[1].Description != "overcast clouds" {
		t.Errorf("unexpected second sample: %+v", samples[1])
	}
}

func TestWeatherForecastServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewWeatherClient("test-key")
	client.baseURL = srv.URL

	if _, err := client.Forecast(context.Background(), "Paris"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestWeatherForecastMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := NewWeatherClient("test-key")
	client.baseURL = srv.URL

	if _, err := client.Forecast(context.Background(), "Paris"); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestEventsSearchMapsRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("city"); got != "Paris" {
			t.Errorf("expected city=Paris, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_embedded":{"events":[
			{"name":"Jazz Night","dates":{"start":{"localDate":"2024-06-02"}},"_embedded":{"venues":[{"name":"Moonlight Bar"}]}},
			{"name":"Mystery Gig","dates":{"start":{}},"_embedded":{"venues":[]}}
		]}}`))
	}))
	defer srv.Close()

	client := NewEventsClient("test-key")
	client.baseURL = srv.URL

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	records, err := client.Search(context.Background(), "Paris", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "Jazz Night" || records[0].Date != "2024-06-02" || records[0].Venue != "Moonlight Bar" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	// Missing date falls back to the trip start; missing venue gets a label.
	if records[1].Date != "2024-06-01" {
		t.Errorf("expected fallback date 2024-06-01, got %q", records[1].Date)
	}
	if records[1].Venue != "Unknown Venue" {
		t.Errorf("expected Unknown Venue, got %q", records[1].Venue)
	}
}

func TestAttractionsNearby(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("text"); got != "Paris" {
			t.Errorf("expected text=Paris, got %q", got)
		}
		w.Write([]byte(`{"features":[{"properties":{"lon":2.35,"lat":48.85}}]}`))
	})
	mux.HandleFunc("/places", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("expected limit=10, got %q", got)
		}
		if got := r.URL.Query().Get("filter"); got != "circle:2.35,48.85,20000" {
			t.Errorf("unexpected filter: %q", got)
		}
		w.Write([]byte(`{"features":[
			{"properties":{"name":"Louvre Museum","address_line2":"Rue de Rivoli, Paris"}},
			{"properties":{"name":"","address_line1":"Champ de Mars"}},
			{"properties":{"name":"Panthéon"}}
		]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewAttractionsClient("test-key")
	client.geocodeURL = srv.URL + "/geocode"
	client.placesURL = srv.URL + "/places"

	attractions, err := client.Nearby(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attractions) != 3 {
		t.Fatalf("expected 3 attractions, got %d", len(attractions))
	}
	if attractions[0].Name != "Louvre Museum" || attractions[0].Address != "Rue de Rivoli, Paris" {
		t.Errorf("unexpected first attraction: %+v", attractions[0])
	}
	if attractions[1].Name != "Unnamed Attraction" || attractions[1].Address != "Champ de Mars" {
		t.Errorf("unexpected second attraction: %+v", attractions[1])
	}
	if attractions[2].Address != "Address not available" {
		t.Errorf("expected address placeholder, got %q", attractions[2].Address)
	}
}

func TestAttractionsNearbyEmptyGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	client := NewAttractionsClient("test-key")
	client.geocodeURL = srv.URL

	attractions, err := client.Nearby(context.Background(), "Nowhereville")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attractions) != 0 {
		t.Fatalf("expected no attractions, got %d", len(attractions))
	}
}

func TestGetJSONContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var out struct{}
	if err := NewDoer("test").GetJSON(ctx, srv.URL, nil, &out); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}
