// Package period maps a report granularity to its bucketing rule.
package period

import (
	"strings"
	"time"

	"github.com/carson-networks/cashbox-server/internal/apperr"
)

type Period int8

const (
	Daily Period = iota + 1
	Weekly
	Monthly
	Yearly
)

var tokens = map[string]Period{
	"daily":   Daily,
	"weekly":  Weekly,
	"monthly": Monthly,
	"yearly":  Yearly,
}

// Parse resolves a period token, case-insensitively.
func Parse(token string) (Period, error) {
	p, ok := tokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, apperr.InvalidPeriod(token)
	}
	return p, nil
}

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// Truncate returns the first instant of the period containing t, in loc.
// Weeks start on Monday.
func (p Period) Truncate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	y, m, d := t.Date()

	switch p {
	case Weekly:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Yearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
}

// Key renders the bucket of t as a canonical string. Keys of one period
// sort lexicographically in time order.
func (p Period) Key(t time.Time, loc *time.Location) string {
	start := p.Truncate(t, loc)
	switch p {
	case Monthly:
		return start.Format("2006-01")
	case Yearly:
		return start.Format("2006")
	default:
		return start.Format(time.DateOnly)
	}
}
