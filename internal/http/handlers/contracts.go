package handlers

import (
	"context"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/dispatch"
)

type scheduleUsecase interface {
	Run(ctx context.Context, strategy string, depot domain.Coordinate, orders []domain.Order) ([]domain.Delivery, int, error)
}

// NewScheduleUsecase wires a dispatch Runner into a scheduleUsecase.
func NewScheduleUsecase(runner *dispatch.Runner) scheduleUsecase {
	return runner
}
