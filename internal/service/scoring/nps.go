// Package scoring aggregates delivery satisfaction ratings into a
// Net Promoter Score.
package scoring

import (
	"fmt"
	"math"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

const fullPercentage = 100

// NPS computes the Net Promoter Score over a batch of deliveries: the
// promoter fraction minus the detractor fraction, scaled to a percentage
// and rounded half up. The result lies in [-100, 100] and does not depend
// on the order of the input.
//
// The metric is undefined for zero deliveries: a nil collection fails with
// apperr.Missing, an empty one with apperr.Invalid.
func NPS(deliveries []domain.Delivery) (int, error) {
	if deliveries == nil {
		return 0, fmt.Errorf("nps deliveries: %w", apperr.Missing)
	}
	if len(deliveries) == 0 {
		return 0, fmt.Errorf("nps deliveries: %w", apperr.Invalid)
	}

	var promoters, detractors int
	for _, d := range deliveries {
		switch d.Rating {
		case domain.RatingPromoter:
			promoters++
		case domain.RatingDetractor:
			detractors++
		}
	}

	score := float64(promoters-detractors) / float64(len(deliveries)) * fullPercentage
	return int(math.Floor(score + 0.5)), nil
}
