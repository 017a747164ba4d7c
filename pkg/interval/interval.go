package interval

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("interval: start must not be after end")

// Interval is a closed date-time range with start <= end. Values are
// immutable once constructed.
type Interval struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Interval, error) {
	if start.After(end) {
		return Interval{}, ErrInvalidRange
	}
	return Interval{start: start, end: end}, nil
}

// FromEpochMillis builds an interval from epoch-millisecond bounds, the
// timestamp representation used by the external store.
func FromEpochMillis(startMs, endMs int64) (Interval, error) {
	return New(time.UnixMilli(startMs).UTC(), time.UnixMilli(endMs).UTC())
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

// Overlaps reports whether two intervals share any time. The comparison is
// half-open so that ranges touching only at a boundary instant do not
// conflict, while same-day date-granular ranges still do.
func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

// DateOnly truncates both bounds to whole UTC days, for date-granular
// availability display.
func (i Interval) DateOnly() Interval {
	return Interval{
		start: i.start.Truncate(24 * time.Hour),
		end:   i.end.Truncate(24 * time.Hour),
	}
}
