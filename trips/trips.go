package trips

import (
	"context"
	"time"

	"naviora/models"
)

// DateLayout is the calendar-date format used throughout trip planning.
const DateLayout = "2006-01-02"

// WeatherSample is one day's forecast for the destination.
type WeatherSample struct {
	Date        string
	TempC       float64
	Description string
}

// EventRecord is a ticketed event happening at the destination.
type EventRecord struct {
	Name  string
	Date  string
	Venue string
}

// Attraction is a point of interest near the destination.
type Attraction struct {
	Name    string
	Address string
}

// DayPlan is one calendar day of the generated itinerary.
type DayPlan struct {
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Weather    string   `json:"weather"`
	Attraction string   `json:"attraction"`
	Events     []string `json:"event"`
}

// Provider interfaces. The HTTP-backed implementations live in
// trips/providers; tests substitute fakes.

type WeatherProvider interface {
	Forecast(ctx context.Context, city string) ([]WeatherSample, error)
}

type EventsProvider interface {
	Search(ctx context.Context, city string, start, end time.Time) ([]EventRecord, error)
}

type AttractionsProvider interface {
	Nearby(ctx context.Context, city string) ([]Attraction, error)
}

// Store persists generated itineraries.
type Store interface {
	SaveItinerary(ctx context.Context, itinerary models.Itinerary) error
	ListItineraries(ctx context.Context) ([]models.Itinerary, error)
}
