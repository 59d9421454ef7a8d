package domain

import "math"

// Rating represents the customer satisfaction tier of a delivery,
// derived from the whole hours between order placement and arrival.
type Rating string

// List of satisfaction tiers.
const (
	RatingPromoter  Rating = "PROMOTER"
	RatingNeutral   Rating = "NEUTRAL"
	RatingDetractor Rating = "DETRACTOR"
)

// ratingRanges maps each tier to its [min,max) hour range, in declared
// order. The ranges are contiguous and exhaustive over non-negative hours.
var ratingRanges = [...]struct {
	rating   Rating
	minHours int
	maxHours int
}{
	{RatingPromoter, 0, 2},
	{RatingNeutral, 2, 4},
	{RatingDetractor, 4, math.MaxInt},
}

// RatingForHours classifies a whole hour count into a satisfaction tier.
// Hours outside every range fall back to RatingDetractor.
func RatingForHours(hours int) Rating {
	for _, r := range ratingRanges {
		if hours >= r.minHours && hours < r.maxHours {
			return r.rating
		}
	}
	return RatingDetractor
}

// MinimumHours returns the inclusive lower hour bound of the tier.
func (r Rating) MinimumHours() int {
	for _, rr := range ratingRanges {
		if rr.rating == r {
			return rr.minHours
		}
	}
	return 0
}

// Valid reports whether r is a known satisfaction tier.
func (r Rating) Valid() bool {
	for _, rr := range ratingRanges {
		if rr.rating == r {
			return true
		}
	}
	return false
}
