package domain

import (
	"fmt"
	"strings"

	"service-dispatch/internal/apperr"
)

// Order represents a single placed order with an id, placement time, and
// customer location. Orders are immutable once constructed.
type Order struct {
	ID       string
	PlacedAt TimeOfDay
	Location Coordinate
}

// NewOrder validates and builds an Order. Every field is required;
// construction fails fast instead of substituting defaults.
func NewOrder(id string, placedAt TimeOfDay, location Coordinate) (Order, error) {
	if strings.TrimSpace(id) == "" {
		return Order{}, fmt.Errorf("order id: %w", apperr.Invalid)
	}
	if !placedAt.Valid() {
		return Order{}, fmt.Errorf("order %s placement time: %w", id, apperr.Invalid)
	}
	return Order{ID: id, PlacedAt: placedAt, Location: location}, nil
}

// Compare orders by placement time, then location, then id.
func (o Order) Compare(other Order) int {
	if o.PlacedAt != other.PlacedAt {
		return int(o.PlacedAt - other.PlacedAt)
	}
	if c := o.Location.Compare(other.Location); c != 0 {
		return c
	}
	return strings.Compare(o.ID, other.ID)
}
