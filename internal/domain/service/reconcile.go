package service

import (
	"math"

	"TripPlanner-App/internal/domain/helper"
	"TripPlanner-App/internal/domain/model"
)

// Reconciliation is the result of reconciling a requested trip duration
// against the distance-per-day cap.
type Reconciliation struct {
	EffectiveDays  int
	DailyDistances []model.DailyDistance
	Adjustment     *model.DayAdjustment // nil when the requested days held
}

// MinimumDays is the smallest feasible day count for a trip. Only cycling
// trips are bounded by the distance-per-day cap; every other trip type can
// always be done in a single day as far as this planner is concerned.
func MinimumDays(totalDistanceKm float64, tripType string, maxDistancePerDay float64) int {
	if tripType == model.TripTypeCycling && maxDistancePerDay > 0 {
		days := int(math.Ceil(totalDistanceKm / maxDistancePerDay))
		if days < 1 {
			return 1
		}
		return days
	}
	return 1
}

// Reconcile computes the effective day count and the per-day distance split
// for a trip. For cycling the requested day count is raised to the minimum
// feasible count regardless of the multi-day flag; a single-day request that
// exceeds the cap is promoted to multi-day. Non-cycling trips are only split
// when explicitly multi-day, and never adjusted upward.
//
// This is the single authority for day/distance reconciliation; it runs once
// when the route first becomes available (advisory, to surface the adjustment
// to the user) and again immediately before persisting (authoritative).
func Reconcile(totalDistanceKm float64, tripType string, maxDistancePerDay float64, requestedDays int, isMultiDay bool) Reconciliation {
	if requestedDays < 1 {
		requestedDays = 1
	}

	var effectiveDays int
	if tripType == model.TripTypeCycling {
		effectiveDays = requestedDays
		if minDays := MinimumDays(totalDistanceKm, tripType, maxDistancePerDay); minDays > effectiveDays {
			effectiveDays = minDays
		}
	} else if isMultiDay {
		effectiveDays = requestedDays
	} else {
		effectiveDays = 1
	}

	perDay := helper.Round1(totalDistanceKm / float64(effectiveDays))
	dailyDistances := make([]model.DailyDistance, effectiveDays)
	for day := 1; day <= effectiveDays; day++ {
		dailyDistances[day-1] = model.DailyDistance{Day: day, DistanceKm: perDay}
	}

	rec := Reconciliation{
		EffectiveDays:  effectiveDays,
		DailyDistances: dailyDistances,
	}
	if effectiveDays > requestedDays {
		rec.Adjustment = &model.DayAdjustment{
			RequestedDays:   requestedDays,
			AdjustedDays:    effectiveDays,
			TotalDistanceKm: helper.Round1(totalDistanceKm),
			BecomesMultiDay: !isMultiDay && effectiveDays > 1,
		}
	}
	return rec
}
