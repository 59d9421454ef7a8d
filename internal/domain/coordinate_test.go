package domain_test

import (
	"testing"

	"service-dispatch/internal/domain"
)

func TestCoordinate_DistanceTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from domain.Coordinate
		to   domain.Coordinate
		want int
	}{
		{"same point", domain.Coordinate{X: 3, Y: 4}, domain.Coordinate{X: 3, Y: 4}, 0},
		{"from origin", domain.Origin, domain.Coordinate{X: 11, Y: -5}, 16},
		{"negative quadrant", domain.Coordinate{X: -2, Y: -3}, domain.Coordinate{X: -7, Y: 1}, 9},
		{"symmetric", domain.Coordinate{X: 5, Y: 0}, domain.Origin, 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.from.DistanceTo(tt.to); got != tt.want {
				t.Fatalf("DistanceTo(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
			if got := tt.to.DistanceTo(tt.from); got != tt.want {
				t.Fatalf("distance is not symmetric: %d != %d", got, tt.want)
			}
		})
	}
}

func TestCoordinate_Compare(t *testing.T) {
	t.Parallel()

	a := domain.Coordinate{X: 1, Y: 5}
	b := domain.Coordinate{X: 2, Y: 0}
	if a.Compare(b) >= 0 {
		t.Fatalf("expected %v to sort before %v", a, b)
	}
	c := domain.Coordinate{X: 1, Y: 6}
	if a.Compare(c) >= 0 {
		t.Fatalf("expected y to break ties")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected equal coordinates to compare as zero")
	}
}

func TestCoordinate_String(t *testing.T) {
	t.Parallel()

	got := domain.Coordinate{X: -3, Y: 7}.String()
	if got != "(-3,7)" {
		t.Fatalf("String() = %q", got)
	}
}
