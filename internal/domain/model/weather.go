package model

import "time"

// Forecast mirrors the OpenWeatherMap 5-day/3-hour forecast response.
type Forecast struct {
	List []ForecastEntry `json:"list"`
	City ForecastCity    `json:"city"`
}

// ForecastCity is the location metadata echoed back by the weather provider.
type ForecastCity struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ForecastEntry is a single 3-hour forecast slot keyed by UNIX timestamp.
type ForecastEntry struct {
	Dt      int64               `json:"dt"`
	Main    ForecastMain        `json:"main"`
	Weather []ForecastCondition `json:"weather"`
	Wind    ForecastWind        `json:"wind"`
}

type ForecastMain struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

type ForecastCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ForecastWind struct {
	Speed float64 `json:"speed"`
}

// Date returns the entry's UTC calendar date.
func (e *ForecastEntry) Date() string {
	return time.Unix(e.Dt, 0).UTC().Format("2006-01-02")
}

// DailyForecasts reduces the 3-hour slots to one entry per calendar day,
// keeping the first slot seen for each distinct date, capped at days entries.
func DailyForecasts(entries []ForecastEntry, days int) []ForecastEntry {
	if len(entries) == 0 || days <= 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var daily []ForecastEntry
	for _, entry := range entries {
		date := entry.Date()
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		daily = append(daily, entry)
		if len(daily) == days {
			break
		}
	}
	return daily
}
