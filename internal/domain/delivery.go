package domain

import (
	"fmt"
	"strings"

	"service-dispatch/internal/apperr"
)

// Delivery is the terminal outcome of scheduling a single order. The
// departure time is either a real dispatch time or MaxTimeOfDay, the
// sentinel marking a delivery that never left the depot. A Delivery keeps
// no reference to its source order; correlation is by id only.
type Delivery struct {
	OrderID    string
	DepartedAt TimeOfDay
	Rating     Rating
}

// NewDelivery validates and builds a Delivery.
func NewDelivery(orderID string, departedAt TimeOfDay, rating Rating) (Delivery, error) {
	if strings.TrimSpace(orderID) == "" {
		return Delivery{}, fmt.Errorf("delivery order id: %w", apperr.Invalid)
	}
	if !departedAt.Valid() {
		return Delivery{}, fmt.Errorf("delivery %s departure time: %w", orderID, apperr.Invalid)
	}
	if !rating.Valid() {
		return Delivery{}, fmt.Errorf("delivery %s rating %q: %w", orderID, rating, apperr.Invalid)
	}
	return Delivery{OrderID: orderID, DepartedAt: departedAt, Rating: rating}, nil
}

// Completed reports whether the delivery actually departed, as opposed to
// being recorded with the sentinel departure time.
func (d Delivery) Completed() bool {
	return d.DepartedAt != MaxTimeOfDay
}
