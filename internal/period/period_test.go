package period

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbox-server/internal/apperr"
)

func TestParse_CaseInsensitive(t *testing.T) {
	cases := map[string]Period{
		"daily":      Daily,
		"Weekly":     Weekly,
		"MONTHLY":    Monthly,
		" yearly \n": Yearly,
	}
	for token, want := range cases {
		got, err := Parse(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, token := range []string{"hourly", "", "day", "quarterly"} {
		_, err := Parse(token)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidPeriod), token)
	}
}

func TestKey_Monthly(t *testing.T) {
	loc := time.UTC
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
	jan2 := time.Date(2024, 1, 2, 15, 30, 0, 0, loc)
	feb1 := time.Date(2024, 2, 1, 0, 0, 0, 0, loc)

	assert.Equal(t, "2024-01", Monthly.Key(jan1, loc))
	assert.Equal(t, "2024-01", Monthly.Key(jan2, loc))
	assert.Equal(t, "2024-02", Monthly.Key(feb1, loc))
}

func TestKey_Weekly_StartsMonday(t *testing.T) {
	loc := time.UTC
	// 2024-01-07 is a Sunday, 2024-01-08 a Monday.
	sunday := time.Date(2024, 1, 7, 23, 0, 0, 0, loc)
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, loc)
	wednesday := time.Date(2024, 1, 10, 12, 0, 0, 0, loc)

	assert.Equal(t, "2024-01-01", Weekly.Key(sunday, loc))
	assert.Equal(t, "2024-01-08", Weekly.Key(monday, loc))
	assert.Equal(t, "2024-01-08", Weekly.Key(wednesday, loc))
}

func TestKey_Weekly_CrossesYear(t *testing.T) {
	loc := time.UTC
	// 2025-01-01 is a Wednesday; its ISO week starts 2024-12-30.
	assert.Equal(t, "2024-12-30", Weekly.Key(time.Date(2025, 1, 1, 8, 0, 0, 0, loc), loc))
}

func TestKey_DailyAndYearly(t *testing.T) {
	loc := time.UTC
	ts := time.Date(2023, 11, 5, 18, 45, 0, 0, loc)

	assert.Equal(t, "2023-11-05", Daily.Key(ts, loc))
	assert.Equal(t, "2023", Yearly.Key(ts, loc))
}

func TestKey_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 21:00 UTC on Jan 31 is already Feb 1 at UTC+5.
	ts := time.Date(2024, 1, 31, 21, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-31", Daily.Key(ts, time.UTC))
	assert.Equal(t, "2024-02-01", Daily.Key(ts, loc))
	assert.Equal(t, "2024-02", Monthly.Key(ts, loc))
}

func TestKey_OrderFollowsTime(t *testing.T) {
	loc := time.UTC
	base := time.Date(2022, 12, 25, 10, 0, 0, 0, loc)
	for _, p := range []Period{Daily, Weekly, Monthly, Yearly} {
		var keys []string
		for i := 0; i < 800; i += 3 {
			keys = append(keys, p.Key(base.AddDate(0, 0, i), loc))
		}
		assert.True(t, sort.StringsAreSorted(keys), p.String())
	}
}

func TestTruncate_SamePeriodSameKey(t *testing.T) {
	loc := time.UTC
	a := time.Date(2024, 3, 4, 0, 0, 0, 0, loc)
	b := time.Date(2024, 3, 10, 23, 59, 59, 0, loc)

	assert.Equal(t, Weekly.Truncate(a, loc), Weekly.Truncate(b, loc))
	assert.NotEqual(t, Daily.Key(a, loc), Daily.Key(b, loc))
}
