package normalizer

import (
	"fmt"
	"time"
)

// Polish short forms as produced by the pl-PL locale the booking form uses.
var (
	plWeekdays = [...]string{"niedz.", "pon.", "wt.", "śr.", "czw.", "pt.", "sob."}
	plMonths   = [...]string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"}
)

// FormatDate renders a date the way the booking form shows it,
// e.g. "wt., 10 cze 2025".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		plWeekdays[t.Weekday()],
		t.Day(),
		plMonths[t.Month()-1],
		t.Year(),
	)
}

// FormatDateRange renders a single date when both bounds fall on the same
// calendar day, and "start - end" otherwise.
func FormatDateRange(start, end time.Time) string {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy == ey && sm == em && sd == ed {
		return FormatDate(start)
	}
	return fmt.Sprintf("%s - %s", FormatDate(start), FormatDate(end))
}
