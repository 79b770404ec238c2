package main

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/apmstack/metadata-query/internal/models"
)

// windowFlags resolves the query window. Unset bounds default to the last
// --last duration ending now.
type windowFlags struct {
	start int64
	end   int64
	last  time.Duration
}

func (w *windowFlags) register(fs *pflag.FlagSet) {
	fs.Int64Var(&w.start, "start", 0, "Window start, epoch milliseconds")
	fs.Int64Var(&w.end, "end", 0, "Window end, epoch milliseconds")
	fs.DurationVar(&w.last, "last", time.Hour, "Window length when --start is not set")
}

func (w *windowFlags) timeRange(now time.Time) models.TimeRange {
	end := w.end
	if end == 0 {
		end = now.UnixMilli()
	}
	start := w.start
	if start == 0 {
		start = end - w.last.Milliseconds()
	}
	return models.NewTimeRange(start, end)
}
