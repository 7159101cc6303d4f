package trips

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

const freeEvening = "Free evening — relax or explore!"

// defaultFetchTimeout bounds each provider call so one slow upstream
// cannot stall the whole request.
const defaultFetchTimeout = 5 * time.Second

// Assembler builds a day-wise itinerary from three independent providers.
// Each fetch degrades to a fixed fallback on error or empty result, so
// assembly never fails on a provider outage.
type Assembler struct {
	weather     WeatherProvider
	events      EventsProvider
	attractions AttractionsProvider
	timeout     time.Duration
}

func NewAssembler(weather WeatherProvider, events EventsProvider, attractions AttractionsProvider) *Assembler {
	return &Assembler{
		weather:     weather,
		events:      events,
		attractions: attractions,
		timeout:     defaultFetchTimeout,
	}
}

// Build fetches weather, events, and attractions concurrently and merges
// them into one plan per calendar day, start through end inclusive.
// start and end must be midnight UTC with start <= end.
func (a *Assembler) Build(ctx context.Context, destination string, start, end time.Time) []DayPlan {
	var (
		weather     []WeatherSample
		events      []EventRecord
		attractions []Attraction
	)

	// The three fetches have no data dependency between them.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		weather = a.fetchWeather(ctx, destination, start)
	}()
	go func() {
		defer wg.Done()
		events = a.fetchEvents(ctx, destination, start, end)
	}()
	go func() {
		defer wg.Done()
		attractions = a.fetchAttractions(ctx, destination)
	}()
	wg.Wait()

	numDays := int(end.Sub(start)/(24*time.Hour)) + 1

	days := make([]DayPlan, 0, numDays)
	for i := 0; i < numDays; i++ {
		date := start.AddDate(0, 0, i).Format(DateLayout)

		// Match the forecast by date, else wrap around the samples we
		// have so every day shows something.
		w := weather[i%len(weather)]
		for _, s := range weather {
			if s.Date == date {
				w = s
				break
			}
		}

		var todays []string
		for _, ev := range events {
			if ev.Date == date {
				line := ev.Name
				if ev.Venue != "" {
					line += " at " + ev.Venue
				}
				todays = append(todays, line)
			}
		}
		if len(todays) == 0 {
			todays = []string{freeEvening}
		}

		days = append(days, DayPlan{
			Day:        i + 1,
			Date:       date,
			Weather:    fmt.Sprintf("%.1f°C, %s", w.TempC, w.Description),
			Attraction: attractions[i%len(attractions)].Name,
			Events:     todays,
		})
	}
	return days
}

func (a *Assembler) fetchWeather(ctx context.Context, city string, start time.Time) []WeatherSample {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	samples, err := a.weather.Forecast(ctx, city)
	if err != nil {
		log.Printf("⚠️ Weather API failed: %v", err)
	}
	if len(samples) == 0 {
		return []WeatherSample{{Date: start.Format(DateLayout), TempC: 20, Description: "clear sky"}}
	}
	return samples
}

func (a *Assembler) fetchEvents(ctx context.Context, city string, start, end time.Time) []EventRecord {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	events, err := a.events.Search(ctx, city, start, end)
	if err != nil {
		log.Printf("⚠️ Events API failed: %v", err)
	}
	if len(events) == 0 {
		return []EventRecord{{Name: freeEvening, Date: start.Format(DateLayout), Venue: ""}}
	}
	return events
}

func (a *Assembler) fetchAttractions(ctx context.Context, city string) []Attraction {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	attractions, err := a.attractions.Nearby(ctx, city)
	if err != nil {
		log.Printf("⚠️ Attraction API error: %v", err)
	}
	if len(attractions) == 0 {
		return []Attraction{
			{Name: "Visit local markets"},
			{Name: "Explore city landmarks"},
			{Name: "Check out a local museum"},
		}
	}
	return attractions
}
