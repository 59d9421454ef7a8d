package dispatch

import "service-dispatch/internal/domain"

// ScheduledOrder is an order enriched with depot-relative facts used while
// scheduling: one-way transit time and the latest departure times before
// the rating degrades a tier. All fields are derived once at construction
// and never recomputed.
type ScheduledOrder struct {
	OrderID  string
	PlacedAt domain.TimeOfDay
	// TransitMinutes is the one-way travel time from the depot to the
	// customer, numerically equal to the Manhattan distance.
	TransitMinutes int
	// NeutralDeadline is the latest departure that still rates Promoter.
	NeutralDeadline domain.TimeOfDay
	// DetractorDeadline is the latest departure that still rates Neutral
	// or better.
	DetractorDeadline domain.TimeOfDay
}

// NewScheduledOrder derives the scheduling facts for an order delivered
// from the given depot.
func NewScheduledOrder(order domain.Order, depot domain.Coordinate) ScheduledOrder {
	transit := depot.DistanceTo(order.Location)
	return ScheduledOrder{
		OrderID:           order.ID,
		PlacedAt:          order.PlacedAt,
		TransitMinutes:    transit,
		NeutralDeadline:   ratingDeadline(order.PlacedAt, transit, domain.RatingNeutral),
		DetractorDeadline: ratingDeadline(order.PlacedAt, transit, domain.RatingDetractor),
	}
}

// ratingDeadline computes the departure time past which the order falls
// into the given tier: placement + tier minimum hours - transit. When the
// remaining day is not strictly longer than the tier minimum, the deadline
// clamps to MaxTimeOfDay so it never wraps to an instant before the order.
func ratingDeadline(placed domain.TimeOfDay, transitMinutes int, tier domain.Rating) domain.TimeOfDay {
	hours := tier.MinimumHours()
	if placed.HoursUntilEndOfDay() <= hours {
		return domain.MaxTimeOfDay
	}
	return placed.AddHours(hours).AddMinutes(-transitMinutes)
}

// Rating classifies the satisfaction tier of a delivery departing at the
// given time, based on the whole hours between placement and arrival.
func (s ScheduledOrder) Rating(departure domain.TimeOfDay) domain.Rating {
	arrival := departure.AddMinutes(s.TransitMinutes)
	return domain.RatingForHours(domain.HoursBetween(s.PlacedAt, arrival))
}

// CompletionTime returns when the vehicle is back at the depot after a
// round trip starting at the given time, clamped to MaxTimeOfDay when the
// trip would not fit in the remaining day.
func (s ScheduledOrder) CompletionTime(start domain.TimeOfDay) domain.TimeOfDay {
	roundTrip := 2 * s.TransitMinutes
	if start.MinutesUntilEndOfDay() <= roundTrip {
		return domain.MaxTimeOfDay
	}
	return start.AddMinutes(roundTrip)
}

func newScheduledOrders(orders []domain.Order, depot domain.Coordinate) []ScheduledOrder {
	scheduled := make([]ScheduledOrder, len(orders))
	for i, o := range orders {
		scheduled[i] = NewScheduledOrder(o, depot)
	}
	return scheduled
}
