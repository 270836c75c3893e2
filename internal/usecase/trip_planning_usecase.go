package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"TripPlanner-App/internal/domain/helper"
	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/domain/service"
)

type TripPlanningUseCase interface {
	// PlanTrip runs the full planning workflow and reconciles the requested
	// day count against the distance-per-day cap. The reconciliation here is
	// advisory; saving re-applies it authoritatively.
	PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.PlanTripResponse, error)
}

type tripPlanningUseCaseImpl struct {
	planner service.TripPlannerService
}

func NewTripPlanningUseCase(planner service.TripPlannerService) TripPlanningUseCase {
	return &tripPlanningUseCaseImpl{planner: planner}
}

func (u *tripPlanningUseCaseImpl) PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.PlanTripResponse, error) {
	plan, err := u.planner.PlanTrip(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("trip planning failed: %w", err)
	}

	// The plan carries the full-precision distance; reconciling on a rounded
	// figure could miss a day at the cap boundary and disagree with the
	// save-time pass.
	rec := service.Reconcile(plan.TotalDistanceKm, req.TripType, req.MaxDistancePerDay, req.NumberOfDays, req.IsMultiDay)
	if rec.Adjustment != nil {
		logrus.Warnf("📅 Day count raised from %d to %d for %.1f km",
			rec.Adjustment.RequestedDays, rec.Adjustment.AdjustedDays, rec.Adjustment.TotalDistanceKm)
	}

	// Round only now that the distance is leaving for the client.
	plan.TotalDistanceKm = helper.Round1(plan.TotalDistanceKm)

	return &model.PlanTripResponse{
		Plan:           plan,
		EffectiveDays:  rec.EffectiveDays,
		DailyDistances: rec.DailyDistances,
		Adjustment:     rec.Adjustment,
		TripDraft:      plan.ToTripDraft(req, rec.EffectiveDays, rec.DailyDistances),
	}, nil
}
