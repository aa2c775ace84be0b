package report

import (
	"strings"
	"time"

	"github.com/carson-networks/cashbox-server/internal/apperr"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	"2006-01-02T15:04:05",
}

// DateRange is an inclusive time interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ParseDateRange parses both bounds; either missing fails with
// apperr.ErrMissingDateRange. A bare calendar date is widened to the start of
// the day for the start bound and the end of the day for the end bound.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return DateRange{}, apperr.ErrMissingDateRange
	}

	startTime, err := parseBound(start, loc, false)
	if err != nil {
		return DateRange{}, apperr.Validation("invalid start_date %q", start)
	}
	endTime, err := parseBound(end, loc, true)
	if err != nil {
		return DateRange{}, apperr.Validation("invalid end_date %q", end)
	}
	if startTime.After(endTime) {
		return DateRange{}, apperr.Validation("start_date %s is after end_date %s", start, end)
	}

	return DateRange{Start: startTime, End: endTime}, nil
}

// ParseOptionalDateRange returns nil when both bounds are empty.
func ParseOptionalDateRange(start, end string, loc *time.Location) (*DateRange, error) {
	if strings.TrimSpace(start) == "" && strings.TrimSpace(end) == "" {
		return nil, nil
	}
	r, err := ParseDateRange(start, end, loc)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// TrailingDays returns the range covering the last n calendar days up to and
// including the day of now.
func TrailingDays(now time.Time, n int, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return DateRange{
		Start: today.AddDate(0, 0, -n),
		End:   endOfDay(today),
	}
}

func parseBound(value string, loc *time.Location, isEnd bool) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if day, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		if isEnd {
			return endOfDay(day), nil
		}
		return day, nil
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// endOfDay is the last microsecond of the calendar day starting at day.
func endOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Microsecond)
}
