package providers

import (
	"context"
	"net/url"
	"strings"

	"naviora/trips"
)

// WeatherClient fetches the OpenWeatherMap 5-day/3-hour forecast.
type WeatherClient struct {
	apiKey  string
	baseURL string
	doer    *Doer
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/forecast",
		doer:    NewDoer("openweather"),
	}
}

// Forecast returns one sample per calendar day, subsampled from the
// 3-hourly feed (every 8th entry).
func (c *WeatherClient) Forecast(ctx context.Context, city string) ([]trips.WeatherSample, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	var payload struct {
		List []struct {
			DtTxt string `json:"dt_txt"`
			Main  struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
		} `json:"list"`
	}
	if err := c.doer.GetJSON(ctx, c.baseURL+"?"+values.Encode(), nil, &payload); err != nil {
		return nil, err
	}

	var samples []trips.WeatherSample
	for i, item := range payload.List {
		if i%8 != 0 {
			continue
		}
		description := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
		}
		samples = append(samples, trips.WeatherSample{
			Date:        strings.SplitN(item.DtTxt, " ", 2)[0],
			TempC:       item.Main.Temp,
			Description: description,
		})
	}
	return samples, nil
}
