package dispatch

import (
	"context"
	"fmt"
	"sort"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

// PriorityQueue dispatches from a working queue that is re-prioritized as
// the simulated clock advances. Orders enter the queue once their placement
// time has been reached; the queue is then resorted to push orders already
// doomed to a Detractor rating to the back and prefer short trips.
type PriorityQueue struct {
	depot  domain.Coordinate
	window Window
}

// NewPriorityQueue creates a priority-queue scheduler for the given depot
// and working-day window.
func NewPriorityQueue(depot domain.Coordinate, window Window) *PriorityQueue {
	return &PriorityQueue{depot: depot, window: window}
}

// Schedule implements Scheduler.
func (p *PriorityQueue) Schedule(_ context.Context, orders []domain.Order) ([]domain.Delivery, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("priority queue schedule: %w", apperr.Invalid)
	}

	pending := newPendingOrders(newScheduledOrders(orders, p.depot))
	var queue []ScheduledOrder
	var log deliveryLog

	currentTime := pending.admit(p.window.Start, &queue)
	for len(queue) > 0 {
		so := queue[0]
		queue = queue[1:]

		if so.PlacedAt >= p.window.End {
			log.abandon(so.OrderID)
			currentTime = pending.admit(currentTime, &queue)
			continue
		}
		completion := so.CompletionTime(currentTime)
		if completion > p.window.End {
			log.abandon(so.OrderID)
		} else {
			log.complete(domain.Delivery{
				OrderID:    so.OrderID,
				DepartedAt: currentTime,
				Rating:     so.Rating(currentTime),
			})
			currentTime = completion
		}
		currentTime = pending.admit(currentTime, &queue)
	}
	return log.deliveries(), nil
}

// pendingOrders groups not-yet-queued orders by exact placement time,
// ascending.
type pendingOrders struct {
	times  []domain.TimeOfDay
	groups map[domain.TimeOfDay][]ScheduledOrder
}

func newPendingOrders(scheduled []ScheduledOrder) *pendingOrders {
	groups := make(map[domain.TimeOfDay][]ScheduledOrder)
	for _, so := range scheduled {
		groups[so.PlacedAt] = append(groups[so.PlacedAt], so)
	}
	times := make([]domain.TimeOfDay, 0, len(groups))
	for t := range groups {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return &pendingOrders{times: times, groups: groups}
}

// admit moves every pending order placed at or before now into the queue.
// When the queue ran dry, the clock first jumps forward to the next pending
// placement time. The whole queue is re-sorted against the returned clock
// whenever anything was admitted.
func (p *pendingOrders) admit(now domain.TimeOfDay, queue *[]ScheduledOrder) domain.TimeOfDay {
	if len(p.times) == 0 {
		return now
	}
	if len(*queue) == 0 && p.times[0] > now {
		now = p.times[0]
	}
	admitted := false
	for len(p.times) > 0 && p.times[0] <= now {
		t := p.times[0]
		p.times = p.times[1:]
		*queue = append(*queue, p.groups[t]...)
		delete(p.groups, t)
		admitted = true
	}
	if admitted {
		sortByPriority(*queue, now)
	}
	return now
}
