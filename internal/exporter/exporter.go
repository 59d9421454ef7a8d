// Package exporter writes scheduled deliveries back to the line-oriented
// text format: one "ID TIME RATING" line per delivery sorted by departure
// time, followed by a trailing "NPS <score>" line.
package exporter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/scoring"
)

// Write renders the deliveries and their NPS to w. The input slice is not
// modified; sorting happens on a copy.
func Write(w io.Writer, deliveries []domain.Delivery) error {
	score, err := scoring.NPS(deliveries)
	if err != nil {
		return fmt.Errorf("export deliveries: %w", err)
	}

	sorted := make([]domain.Delivery, len(deliveries))
	copy(sorted, deliveries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DepartedAt < sorted[j].DepartedAt
	})

	bw := bufio.NewWriter(w)
	for _, d := range sorted {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", d.OrderID, d.DepartedAt, d.Rating); err != nil {
			return fmt.Errorf("export deliveries: %w", err)
		}
	}
	if _, err := fmt.Fprintf(bw, "NPS %d\n", score); err != nil {
		return fmt.Errorf("export deliveries: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export deliveries: %w", err)
	}
	return nil
}

// WriteFile writes the deliveries to the file at path, creating or
// truncating it.
func WriteFile(path string, deliveries []domain.Delivery) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export deliveries: %w", err)
	}
	if err := Write(f, deliveries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export deliveries: %w", err)
	}
	return nil
}
