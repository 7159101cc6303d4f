package providers

import (
	"context"
	"net/url"
	"time"

	"naviora/trips"
)

// EventsClient searches the Ticketmaster Discovery API for events in a city
// within a date range.
type EventsClient struct {
	apiKey  string
	baseURL string
	doer    *Doer
}

func NewEventsClient(apiKey string) *EventsClient {
	return &EventsClient{
		apiKey:  apiKey,
		baseURL: "https://app.ticketmaster.com/discovery/v2/events.json",
		doer:    NewDoer("ticketmaster"),
	}
}

func (c *EventsClient) Search(ctx context.Context, city string, start, end time.Time) ([]trips.EventRecord, error) {
	values := url.Values{}
	values.Set("city", city)
	values.Set("startDateTime", start.UTC().Format(time.RFC3339))
	values.Set("endDateTime", end.UTC().Format(time.RFC3339))
	values.Set("apikey", c.apiKey)

	var payload struct {
		Embedded struct {
			Events []struct {
				Name  string `json:"name"`
				Dates struct {
					Start struct {
						LocalDate string `json:"localDate"`
					} `json:"start"`
				} `json:"dates"`
				Embedded struct {
					Venues []struct {
						Name string `json:"name"`
					} `json:"venues"`
				} `json:"_embedded"`
			} `json:"events"`
		} `json:"_embedded"`
	}
	if err := c.doer.GetJSON(ctx, c.baseURL+"?"+values.Encode(), nil, &payload); err != nil {
		return nil, err
	}

	var records []trips.EventRecord
	for _, ev := range payload.Embedded.Events {
		date := ev.Dates.Start.LocalDate
		if date == "" {
			date = start.Format(trips.DateLayout)
		}
		venue := "Unknown Venue"
		if len(ev.Embedded.Venues) > 0 && ev.Embedded.Venues[0].Name != "" {
			venue = ev.Embedded.Venues[0].Name
		}
		records = append(records, trips.EventRecord{
			Name:  ev.Name,
			Date:  date,
			Venue: venue,
		})
	}
	return records, nil
}
