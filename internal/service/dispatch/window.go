package dispatch

import (
	"fmt"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

// Window is the working-day interval during which deliveries may dispatch
// and must return.
type Window struct {
	Start domain.TimeOfDay
	End   domain.TimeOfDay
}

// DefaultWindow returns the standard 06:00-22:00 working day.
func DefaultWindow() Window {
	return Window{
		Start: domain.MustTimeOfDay(6, 0, 0),
		End:   domain.MustTimeOfDay(22, 0, 0),
	}
}

// Validate checks that the window is a non-empty forward interval.
func (w Window) Validate() error {
	if !w.Start.Valid() || !w.End.Valid() || w.Start >= w.End {
		return fmt.Errorf("window %s-%s: %w", w.Start, w.End, apperr.Invalid)
	}
	return nil
}

// deliveryLog collects strategy output. Incomplete deliveries always trail
// the completed ones, each group preserving encounter order.
type deliveryLog struct {
	completed  []domain.Delivery
	incomplete []domain.Delivery
}

func (l *deliveryLog) complete(d domain.Delivery) {
	l.completed = append(l.completed, d)
}

// abandon records an order that cannot dispatch within the window:
// sentinel departure time, worst-case rating.
func (l *deliveryLog) abandon(orderID string) {
	l.incomplete = append(l.incomplete, domain.Delivery{
		OrderID:    orderID,
		DepartedAt: domain.MaxTimeOfDay,
		Rating:     domain.RatingDetractor,
	})
}

func (l *deliveryLog) deliveries() []domain.Delivery {
	out := make([]domain.Delivery, 0, len(l.completed)+len(l.incomplete))
	out = append(out, l.completed...)
	out = append(out, l.incomplete...)
	return out
}
