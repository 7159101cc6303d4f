package providers

import (
	"context"
	"fmt"
	"net/url"

	"naviora/trips"
)

const (
	searchRadiusMeters = 20000
	maxAttractions     = 10
)

// AttractionsClient resolves a city to coordinates via the Geoapify
// geocoder, then searches for tourist sights around them. The two calls are
// sequential; the second depends on the first.
type AttractionsClient struct {
	apiKey     string
	geocodeURL string
	placesURL  string
	doer       *Doer
}

func NewAttractionsClient(apiKey string) *AttractionsClient {
	return &AttractionsClient{
		apiKey:     apiKey,
		geocodeURL: "https://api.geoapify.com/v1/geocode/search",
		placesURL:  "https://api.geoapify.com/v2/places",
		doer:       NewDoer("geoapify"),
	}
}

func (c *AttractionsClient) Nearby(ctx context.Context, city string) ([]trips.Attraction, error) {
	geoValues := url.Values{}
	geoValues.Set("text", city)
	geoValues.Set("apiKey", c.apiKey)

	var geo struct {
		Features []struct {
			Properties struct {
				Lon float64 `json:"lon"`
				Lat float64 `json:"lat"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := c.doer.GetJSON(ctx, c.geocodeURL+"?"+geoValues.Encode(), nil, &geo); err != nil {
		return nil, err
	}
	if len(geo.Features) == 0 {
		return nil, nil
	}

	top := geo.Features[0].Properties
	placeValues := url.Values{}
	placeValues.Set("categories", "tourism.sights,tourism.attraction")
	placeValues.Set("filter", fmt.Sprintf("circle:%g,%g,%d", top.Lon, top.Lat, searchRadiusMeters))
	placeValues.Set("limit", fmt.Sprintf("%d", maxAttractions))
	placeValues.Set("apiKey", c.apiKey)

	var places struct {
		Features []struct {
			Properties struct {
				Name         string `json:"name"`
				AddressLine1 string `json:"address_line1"`
				AddressLine2 string `json:"address_line2"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := c.doer.GetJSON(ctx, c.placesURL+"?"+placeValues.Encode(), nil, &places); err != nil {
		return nil, err
	}

	var attractions []trips.Attraction
	for _, f := range places.Features {
		name := f.Properties.Name
		if name == "" {
			name = "Unnamed Attraction"
		}
		address := f.Properties.AddressLine2
		if address == "" {
			address = f.Properties.AddressLine1
		}
		if address == "" {
			address = "Address not available"
		}
		attractions = append(attractions, trips.Attraction{Name: name, Address: address})
	}
	return attractions, nil
}
