package dispatch

import (
	"testing"

	"service-dispatch/internal/domain"
)

func scheduledAt(id string, placedAt domain.TimeOfDay, transit int) ScheduledOrder {
	return NewScheduledOrder(
		domain.Order{ID: id, PlacedAt: placedAt, Location: domain.Coordinate{X: transit}},
		domain.Origin,
	)
}

func TestLessByPriority_ShorterTransitWins(t *testing.T) {
	t.Parallel()

	now := domain.MustTimeOfDay(6, 0, 0)
	short := scheduledAt("short", domain.MustTimeOfDay(5, 30, 0), 10)
	long := scheduledAt("long", domain.MustTimeOfDay(5, 30, 0), 60)

	if !lessByPriority(short, long, now) {
		t.Fatal("expected shorter transit to sort first")
	}
	if lessByPriority(long, short, now) {
		t.Fatal("expected longer transit to sort last")
	}
}

func TestLessByPriority_DoomedOrdersSortLast(t *testing.T) {
	t.Parallel()

	now := domain.MustTimeOfDay(12, 0, 0)
	// Detractor deadline 08:55 has long passed: nothing to salvage.
	doomed := scheduledAt("doomed", domain.MustTimeOfDay(5, 0, 0), 5)
	// Placed recently with the full four hours still ahead.
	fresh := scheduledAt("fresh", domain.MustTimeOfDay(11, 30, 0), 90)

	if !lessByPriority(fresh, doomed, now) {
		t.Fatal("expected salvageable order to sort before doomed one despite longer transit")
	}
	if lessByPriority(doomed, fresh, now) {
		t.Fatal("expected doomed order to sort last")
	}
}

func TestLessByPriority_BothDoomedFallBackToTransit(t *testing.T) {
	t.Parallel()

	now := domain.MaxTimeOfDay - 1
	a := scheduledAt("a", domain.MustTimeOfDay(5, 0, 0), 5)
	b := scheduledAt("b", domain.MustTimeOfDay(5, 0, 0), 50)

	if !lessByPriority(a, b, now) {
		t.Fatal("expected transit to break ties between doomed orders")
	}
}

func TestSortByPriority_Stable(t *testing.T) {
	t.Parallel()

	now := domain.MustTimeOfDay(6, 0, 0)
	queue := []ScheduledOrder{
		scheduledAt("first", domain.MustTimeOfDay(5, 0, 0), 10),
		scheduledAt("second", domain.MustTimeOfDay(5, 30, 0), 10),
	}
	sortByPriority(queue, now)

	if queue[0].OrderID != "first" || queue[1].OrderID != "second" {
		t.Fatalf("equal-priority orders reordered: %s, %s", queue[0].OrderID, queue[1].OrderID)
	}
}
