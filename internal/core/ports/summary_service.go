package ports

import "context"

// DayCount is one entry in the 7-day check-in trend.
type DayCount struct {
	Date  string // ISO day string, e.g. "2024-05-03"
	Count int64
}

// Summary aggregates directory and ledger data for the admin dashboard.
type Summary struct {
	TotalEmployees int64
	OnDuty         int64
	TodaysCheckIns int64
	CheckInsPerDay []DayCount // trailing 7 calendar days, today last
}

// SummaryService computes dashboard aggregates. No caching; recomputed per call.
type SummaryService interface {
	Summary(ctx context.Context) (*Summary, error)
}
