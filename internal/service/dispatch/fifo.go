package dispatch

import (
	"context"
	"fmt"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

// FIFO dispatches orders strictly in arrival order. A single vehicle departs,
// delivers, and returns before the next order is considered; the clock only
// advances when a delivery is actually dispatched.
type FIFO struct {
	depot  domain.Coordinate
	window Window
}

// NewFIFO creates an arrival-order scheduler for the given depot and
// working-day window.
func NewFIFO(depot domain.Coordinate, window Window) *FIFO {
	return &FIFO{depot: depot, window: window}
}

// Schedule implements Scheduler.
func (f *FIFO) Schedule(_ context.Context, orders []domain.Order) ([]domain.Delivery, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("fifo schedule: %w", apperr.Invalid)
	}
	return f.run(newScheduledOrders(orders, f.depot)), nil
}

// run processes scheduled orders in slice order. Split from Schedule so the
// best-fit search can rerun candidate permutations without re-deriving the
// scheduling facts.
func (f *FIFO) run(scheduled []ScheduledOrder) []domain.Delivery {
	var log deliveryLog

	currentTime := f.window.Start
	for _, so := range scheduled {
		if so.PlacedAt >= f.window.End {
			log.abandon(so.OrderID)
			continue
		}
		if so.PlacedAt > currentTime {
			currentTime = so.PlacedAt
		}
		completion := so.CompletionTime(currentTime)
		if completion > f.window.End {
			// Abandoned attempt: the clock does not advance.
			log.abandon(so.OrderID)
			continue
		}
		log.complete(domain.Delivery{
			OrderID:    so.OrderID,
			DepartedAt: currentTime,
			Rating:     so.Rating(currentTime),
		})
		currentTime = completion
	}
	return log.deliveries()
}
