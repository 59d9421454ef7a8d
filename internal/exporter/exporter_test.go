package exporter_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/exporter"
)

func delivery(t *testing.T, id string, departedAt domain.TimeOfDay, rating domain.Rating) domain.Delivery {
	t.Helper()
	d, err := domain.NewDelivery(id, departedAt, rating)
	require.NoError(t, err)
	return d
}

func TestWrite(t *testing.T) {
	t.Parallel()

	deliveries := []domain.Delivery{
		delivery(t, "WM0002", domain.MustTimeOfDay(7, 30, 0), domain.RatingNeutral),
		delivery(t, "WM0001", domain.MustTimeOfDay(6, 0, 0), domain.RatingPromoter),
		delivery(t, "WM0003", domain.MaxTimeOfDay, domain.RatingDetractor),
	}

	var sb strings.Builder
	require.NoError(t, exporter.Write(&sb, deliveries))

	want := strings.Join([]string{
		"WM0001 06:00:00 PROMOTER",
		"WM0002 07:30:00 NEUTRAL",
		"WM0003 23:59:59 DETRACTOR",
		"NPS 0",
		"",
	}, "\n")
	require.Equal(t, want, sb.String())
}

func TestWrite_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	deliveries := []domain.Delivery{
		delivery(t, "WM0002", domain.MustTimeOfDay(8, 0, 0), domain.RatingPromoter),
		delivery(t, "WM0001", domain.MustTimeOfDay(6, 0, 0), domain.RatingPromoter),
	}

	var sb strings.Builder
	require.NoError(t, exporter.Write(&sb, deliveries))
	require.Equal(t, "WM0002", deliveries[0].OrderID)
}

func TestWrite_EmptyDeliveries(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.ErrorIs(t, exporter.Write(&sb, []domain.Delivery{}), apperr.Invalid)
	require.ErrorIs(t, exporter.Write(&sb, nil), apperr.Missing)
	require.Empty(t, sb.String())
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deliveries.txt")
	deliveries := []domain.Delivery{
		delivery(t, "WM0001", domain.MustTimeOfDay(6, 0, 0), domain.RatingPromoter),
	}

	require.NoError(t, exporter.WriteFile(path, deliveries))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "WM0001 06:00:00 PROMOTER\nNPS 100\n", string(raw))
}
