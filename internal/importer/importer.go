// Package importer reads placed orders from the line-oriented text format:
// one order per line, three space-delimited columns ID LOCATION TIME, e.g.
//
//	WM0001 N11W5 05:11:50
//
// Grid locations use compass notation: N/E are positive y/x, S/W negative.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

var (
	orderIDPattern    = regexp.MustCompile(`^WM[0-9]{4}$`)
	coordinatePattern = regexp.MustCompile(`^([NS])([0-9]+)([EW])([0-9]+)$`)
)

const columnsPerLine = 3

// Importer parses order files, skipping malformed lines with a warning
// instead of aborting the batch.
type Importer struct {
	logger logx.Logger
}

// New creates an Importer.
func New(logger logx.Logger) *Importer {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Importer{logger: logger}
}

// ReadFile reads orders from the file at path.
func (imp *Importer) ReadFile(path string) ([]domain.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import orders: %w", err)
	}
	defer f.Close()
	return imp.Read(f)
}

// Read parses orders line by line. Invalid lines are logged and skipped.
func (imp *Importer) Read(r io.Reader) ([]domain.Order, error) {
	var orders []domain.Order
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		order, err := ParseOrder(text)
		if err != nil {
			imp.logger.Warn("skipping invalid order line",
				logx.Int("line", line),
				logx.String("text", text),
				logx.Err(err),
			)
			continue
		}
		orders = append(orders, order)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("import orders: %w", err)
	}
	return orders, nil
}

// ParseOrder parses a single "ID LOCATION TIME" line.
func ParseOrder(line string) (domain.Order, error) {
	columns := strings.Fields(line)
	if len(columns) != columnsPerLine {
		return domain.Order{}, fmt.Errorf("order line has %d columns, want %d: %w", len(columns), columnsPerLine, apperr.Invalid)
	}
	id, err := parseOrderID(columns[0])
	if err != nil {
		return domain.Order{}, err
	}
	location, err := ParseCoordinate(columns[1])
	if err != nil {
		return domain.Order{}, err
	}
	placedAt, err := domain.ParseTimeOfDay(columns[2])
	if err != nil {
		return domain.Order{}, err
	}
	return domain.NewOrder(id, placedAt, location)
}

func parseOrderID(s string) (string, error) {
	if !orderIDPattern.MatchString(s) {
		return "", fmt.Errorf("order id %q: %w", s, apperr.Invalid)
	}
	return s, nil
}

// ParseCoordinate parses compass grid notation such as N11W5 into a
// Coordinate. The north-south component comes first on the wire and maps
// to y; east-west maps to x.
func ParseCoordinate(s string) (domain.Coordinate, error) {
	m := coordinatePattern.FindStringSubmatch(s)
	if m == nil {
		return domain.Coordinate{}, fmt.Errorf("coordinate %q: %w", s, apperr.Invalid)
	}
	y, err := strconv.Atoi(m[2])
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("coordinate %q: %w", s, apperr.Invalid)
	}
	x, err := strconv.Atoi(m[4])
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("coordinate %q: %w", s, apperr.Invalid)
	}
	if m[1] == "S" {
		y = -y
	}
	if m[3] == "W" {
		x = -x
	}
	return domain.Coordinate{X: x, Y: y}, nil
}
