package handlers

import "service-dispatch/internal/domain"

func (l locationDTO) toModel() domain.Coordinate {
	return domain.Coordinate{X: l.X, Y: l.Y}
}

func (r scheduleRequest) toOrders() ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(r.Orders))
	for _, dto := range r.Orders {
		placedAt, err := domain.ParseTimeOfDay(dto.PlacedAt)
		if err != nil {
			return nil, err
		}
		order, err := domain.NewOrder(dto.ID, placedAt, dto.Location.toModel())
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func deliveriesToResponse(deliveries []domain.Delivery, nps int) scheduleResponse {
	out := make([]deliveryDTO, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, deliveryDTO{
			OrderID:    d.OrderID,
			DepartedAt: d.DepartedAt.String(),
			Rating:     d.Rating,
			Completed:  d.Completed(),
		})
	}
	return scheduleResponse{Deliveries: out, NPS: nps}
}
