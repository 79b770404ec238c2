package models

import (
	srvErrors "github.com/apmstack/metadata-query/pkg/errors"
)

// TimeRange is a query window in epoch milliseconds.
type TimeRange struct {
	Start int64
	End   int64
}

func NewTimeRange(start, end int64) TimeRange {
	return TimeRange{Start: start, End: end}
}

func (t TimeRange) Validate() error {
	if t.Start < 0 || t.End < 0 {
		return srvErrors.NewValidationError("time range", "bounds must not be negative")
	}
	if t.Start > t.End {
		return srvErrors.NewValidationError("time range", "start is after end")
	}
	return nil
}

// Overlaps reports whether an entity alive over [register, heartbeat] is
// selected by the window. It mirrors the SQL predicate exactly, including the
// first disjunct probing heartbeat against End rather than Start.
func (t TimeRange) Overlaps(register, heartbeat int64) bool {
	return (heartbeat >= t.End && register <= t.End) || (register <= t.End && heartbeat >= t.Start)
}
