package handlers

import "service-dispatch/internal/domain"

type locationDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type orderDTO struct {
	ID       string      `json:"id"`
	PlacedAt string      `json:"placed_at"`
	Location locationDTO `json:"location"`
}

type scheduleRequest struct {
	Strategy string      `json:"strategy,omitempty"`
	Depot    locationDTO `json:"depot"`
	Orders   []orderDTO  `json:"orders"`
}

type deliveryDTO struct {
	OrderID    string        `json:"order_id"`
	DepartedAt string        `json:"departed_at"`
	Rating     domain.Rating `json:"rating"`
	Completed  bool          `json:"completed"`
}

type scheduleResponse struct {
	Deliveries []deliveryDTO `json:"deliveries"`
	NPS        int           `json:"nps"`
}
