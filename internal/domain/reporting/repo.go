package reporting

import (
	"context"
	"time"
)

// Repository answers the aggregate queries behind a report. All ranges are
// closed on both ends and filter on patient registration time.
type Repository interface {
	LevelCounts(ctx context.Context, from, to time.Time) (map[int]int, error)
	SexCounts(ctx context.Context, from, to time.Time) (map[string]int, error)
	StateCounts(ctx context.Context, from, to time.Time) (map[string]int, error)
	PatientBirthDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
	AvgMinutesByLevel(ctx context.Context, from, to time.Time) (map[int]float64, error)
	ExportRows(ctx context.Context) ([]*ExportRow, error)
}
