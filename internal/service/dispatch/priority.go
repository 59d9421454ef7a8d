package dispatch

import (
	"sort"

	"service-dispatch/internal/domain"
)

// sortByPriority reorders a working queue relative to a reference "now":
// orders whose detractor deadline has already passed sort after those still
// salvageable at a better tier; within either group, shorter transit wins.
// The sort is stable so simultaneously admitted orders keep their relative
// order on ties.
func sortByPriority(queue []ScheduledOrder, now domain.TimeOfDay) {
	sort.SliceStable(queue, func(i, j int) bool {
		return lessByPriority(queue[i], queue[j], now)
	})
}

func lessByPriority(a, b ScheduledOrder, now domain.TimeOfDay) bool {
	aDoomed := now > a.DetractorDeadline
	bDoomed := now > b.DetractorDeadline
	if aDoomed != bDoomed {
		return bDoomed
	}
	return a.TransitMinutes < b.TransitMinutes
}
