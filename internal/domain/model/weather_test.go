package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(t time.Time, temp float64) ForecastEntry {
	return ForecastEntry{Dt: t.Unix(), Main: ForecastMain{Temp: temp}}
}

func TestDailyForecasts_FirstSlotPerDay(t *testing.T) {
	day1 := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	entries := []ForecastEntry{
		entryAt(day1.Add(6*time.Hour), 9.0),
		entryAt(day1.Add(9*time.Hour), 12.0),
		entryAt(day1.Add(12*time.Hour), 15.0),
		entryAt(day2.Add(3*time.Hour), 8.0),
		entryAt(day2.Add(15*time.Hour), 17.0),
		entryAt(day3, 7.0),
	}

	daily := DailyForecasts(entries, 5)
	require.Len(t, daily, 3)
	assert.Equal(t, 9.0, daily[0].Main.Temp)
	assert.Equal(t, 8.0, daily[1].Main.Temp)
	assert.Equal(t, 7.0, daily[2].Main.Temp)
}

func TestDailyForecasts_CappedAtRequestedDays(t *testing.T) {
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	var entries []ForecastEntry
	for i := 0; i < 6; i++ {
		entries = append(entries, entryAt(base.AddDate(0, 0, i), float64(i)))
	}

	daily := DailyForecasts(entries, 2)
	require.Len(t, daily, 2)
	assert.Equal(t, 0.0, daily[0].Main.Temp)
	assert.Equal(t, 1.0, daily[1].Main.Temp)
}

func TestDailyForecasts_DateBoundaryIsUTC(t *testing.T) {
	// 23:00 and 01:00 around a UTC midnight belong to different days.
	before := time.Date(2026, 5, 10, 23, 0, 0, 0, time.UTC)
	after := time.Date(2026, 5, 11, 1, 0, 0, 0, time.UTC)

	daily := DailyForecasts([]ForecastEntry{entryAt(before, 10.0), entryAt(after, 11.0)}, 5)
	require.Len(t, daily, 2)
}

func TestDailyForecasts_Empty(t *testing.T) {
	assert.Nil(t, DailyForecasts(nil, 3))
	assert.Nil(t, DailyForecasts([]ForecastEntry{entryAt(time.Now(), 1.0)}, 0))
}
