package report

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbox-server/internal/report"
)

// PeriodInput selects a period with an optional inclusive date range.
type PeriodInput struct {
	Period    string `path:"period" doc:"Bucket size: daily, weekly, monthly or yearly"`
	StartDate string `query:"start_date" doc:"Range start, YYYY-MM-DD or timestamp"`
	EndDate   string `query:"end_date" doc:"Range end, YYYY-MM-DD (whole day) or timestamp"`
}

// BarePeriodInput selects a period over all rows.
type BarePeriodInput struct {
	Period string `path:"period" doc:"Bucket size: daily, weekly, monthly or yearly"`
}

// DateRangeInput is an inclusive date range given in the path.
type DateRangeInput struct {
	StartDate string `path:"start_date" doc:"Range start, YYYY-MM-DD or timestamp"`
	EndDate   string `path:"end_date" doc:"Range end, YYYY-MM-DD (whole day) or timestamp"`
}

// SeriesPoint is one bucket of a grouped report.
type SeriesPoint struct {
	BucketKey string            `json:"bucketKey" doc:"Canonical period key"`
	Total     string            `json:"total" doc:"Sum of the bucket"`
	Count     int               `json:"count" doc:"Rows in the bucket"`
	Subtotals map[string]string `json:"subtotals" doc:"Sub-totals by sub-key"`
}

// GroupSeries is one category or service with its buckets, newest first.
type GroupSeries struct {
	GroupKey   string        `json:"groupKey"`
	GroupLabel string        `json:"groupLabel"`
	Series     []SeriesPoint `json:"series"`
}

// FlatBucket is one entry of a flat per-period report.
type FlatBucket struct {
	SequenceID        string            `json:"sequenceId" doc:"R1 for the newest bucket, then R2, ..."`
	BucketKey         string            `json:"bucketKey" doc:"Canonical period key"`
	Total             string            `json:"total"`
	Count             int               `json:"count"`
	CategoriesSummary map[string]string `json:"categoriesSummary" doc:"Sub-totals by group"`
}

func toGroupSeries(series []report.Series) []GroupSeries {
	out := make([]GroupSeries, len(series))
	for i, s := range series {
		points := make([]SeriesPoint, len(s.Points))
		for j, p := range s.Points {
			points[j] = SeriesPoint{
				BucketKey: p.Key,
				Total:     p.Total.String(),
				Count:     p.Count,
				Subtotals: toStrings(p.Subtotals),
			}
		}
		out[i] = GroupSeries{GroupKey: s.GroupKey, GroupLabel: s.GroupLabel, Series: points}
	}
	return out
}

func toFlatBuckets(buckets []report.Bucket) []FlatBucket {
	out := make([]FlatBucket, len(buckets))
	for i, b := range buckets {
		out[i] = FlatBucket{
			SequenceID:        b.SequenceID,
			BucketKey:         b.Key,
			Total:             b.Total.String(),
			Count:             b.Count,
			CategoriesSummary: toStrings(b.Subtotals),
		}
	}
	return out
}

func toStrings(m map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.String()
	}
	return out
}
