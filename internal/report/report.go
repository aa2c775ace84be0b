// Package report groups time-stamped rows into period buckets.
//
// Every emitted bucket's Total is the sum of its Subtotals; the total is never
// computed separately from the sub-totals.
package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbox-server/internal/period"
)

// Row is one source record. GroupKey selects the group in the Grouped shape
// and the sub-total key in the Flat shape; SubKey selects the sub-total key in
// the Grouped shape.
type Row struct {
	At         time.Time
	GroupKey   string
	GroupLabel string
	SubKey     string
	Value      decimal.Decimal
}

// Bucket is one period instance of the Flat shape.
type Bucket struct {
	SequenceID string
	Key        string
	Total      decimal.Decimal
	Count      int
	Subtotals  map[string]decimal.Decimal
}

// Point is one period instance inside a Series.
type Point struct {
	Key       string
	Total     decimal.Decimal
	Count     int
	Subtotals map[string]decimal.Decimal
}

// Series is the per-period history of one group.
type Series struct {
	GroupKey   string
	GroupLabel string
	Points     []Point
}

// Options controls filtering and bucketing.
type Options struct {
	Period   period.Period
	Location *time.Location
	// Range, when set, drops rows outside it before grouping.
	Range *DateRange
}

type cell struct {
	count     int
	subtotals map[string]decimal.Decimal
}

func (c *cell) add(key string, value decimal.Decimal) {
	c.count++
	c.subtotals[key] = c.subtotals[key].Add(value)
}

func (c *cell) total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c.subtotals {
		total = total.Add(v)
	}
	return total
}

func newCell() *cell {
	return &cell{subtotals: make(map[string]decimal.Decimal)}
}

// Flat emits one bucket per period instance, newest first, with sub-totals
// keyed by each row's GroupKey and sequence ids R1, R2, ... in emission order.
func Flat(rows []Row, opts Options) []Bucket {
	cells := make(map[string]*cell)
	for _, row := range rows {
		if opts.Range != nil && !opts.Range.Contains(row.At) {
			continue
		}
		key := opts.Period.Key(row.At, opts.Location)
		c, ok := cells[key]
		if !ok {
			c = newCell()
			cells[key] = c
		}
		c.add(row.GroupKey, row.Value)
	}

	keys := sortedKeysDesc(cells)
	buckets := make([]Bucket, len(keys))
	for i, key := range keys {
		c := cells[key]
		buckets[i] = Bucket{
			SequenceID: "R" + strconv.Itoa(i+1),
			Key:        key,
			Total:      c.total(),
			Count:      c.count,
			Subtotals:  c.subtotals,
		}
	}
	return buckets
}

// Grouped emits one series per GroupKey, ordered by key ascending. Each series
// holds its period buckets newest first, with sub-totals keyed by SubKey.
func Grouped(rows []Row, opts Options) []Series {
	type group struct {
		label string
		cells map[string]*cell
	}
	groups := make(map[string]*group)

	for _, row := range rows {
		if opts.Range != nil && !opts.Range.Contains(row.At) {
			continue
		}
		g, ok := groups[row.GroupKey]
		if !ok {
			g = &group{label: row.GroupLabel, cells: make(map[string]*cell)}
			groups[row.GroupKey] = g
		}
		key := opts.Period.Key(row.At, opts.Location)
		c, ok := g.cells[key]
		if !ok {
			c = newCell()
			g.cells[key] = c
		}
		c.add(row.SubKey, row.Value)
	}

	groupKeys := make([]string, 0, len(groups))
	for k := range groups {
		groupKeys = append(groupKeys, k)
	}
	sort.Strings(groupKeys)

	series := make([]Series, len(groupKeys))
	for i, gk := range groupKeys {
		g := groups[gk]
		bucketKeys := sortedKeysDesc(g.cells)
		points := make([]Point, len(bucketKeys))
		for j, bk := range bucketKeys {
			c := g.cells[bk]
			points[j] = Point{
				Key:       bk,
				Total:     c.total(),
				Count:     c.count,
				Subtotals: c.subtotals,
			}
		}
		series[i] = Series{GroupKey: gk, GroupLabel: g.label, Points: points}
	}
	return series
}

func sortedKeysDesc(cells map[string]*cell) []string {
	keys := make([]string, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
