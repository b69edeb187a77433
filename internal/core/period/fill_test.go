package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trendRow struct {
	Period string
	Total  float64
}

func zeroTrend(key string) trendRow {
	return trendRow{Period: key}
}

func TestFill_GapsGetZeroRows(t *testing.T) {
	keys := []string{"2024-03-01", "2024-03-02", "2024-03-03"}
	observed := map[string]trendRow{
		"2024-03-02": {Period: "2024-03-02", Total: 7},
	}

	series := Fill(keys, observed, zeroTrend)

	require.Len(t, series, len(keys))
	assert.Equal(t, []Entry[trendRow]{
		{Key: "2024-03-01", Row: trendRow{Period: "2024-03-01"}},
		{Key: "2024-03-02", Row: trendRow{Period: "2024-03-02", Total: 7}},
		{Key: "2024-03-03", Row: trendRow{Period: "2024-03-03"}},
	}, series)
}

func TestFill_OutputOrderFollowsExpectedKeys(t *testing.T) {
	rng := dateRange("2024-01-15", "2024-06-10")
	keys := Sequence(rng, Monthly)
	observed := map[string]trendRow{
		"2024-05": {Period: "2024-05", Total: 3},
		"2024-02": {Period: "2024-02", Total: 1},
	}

	series := Fill(keys, observed, zeroTrend)

	require.Len(t, series, Count(rng, Monthly))
	for i, e := range series {
		assert.Equal(t, keys[i], e.Key)
		assert.Equal(t, e.Key, e.Row.Period)
	}
}

func TestFill_EmptyExpectedKeys(t *testing.T) {
	observed := map[string]trendRow{"2024-03": {Period: "2024-03", Total: 9}}
	// Observed content is irrelevant when there are no expected buckets.
	assert.Empty(t, Fill(nil, observed, zeroTrend))
}

type mergedRow struct {
	Period   string
	Inbound  float64
	Outbound float64
}

func TestFillMerged_PartialSources(t *testing.T) {
	keys := []string{"2024-01", "2024-02", "2024-03"}
	inbound := map[string]float64{"2024-01": 5, "2024-02": 2}
	outbound := map[string]float64{"2024-02": 4}

	series := FillMerged(keys,
		func(k string) mergedRow { return mergedRow{Period: k} },
		func(k string, r *mergedRow) {
			if v, ok := inbound[k]; ok {
				r.Inbound = v
			}
		},
		func(k string, r *mergedRow) {
			if v, ok := outbound[k]; ok {
				r.Outbound = v
			}
		},
	)

	require.Len(t, series, 3)
	// Key in A but not B keeps A's value with B's field defaulted to zero.
	assert.Equal(t, mergedRow{Period: "2024-01", Inbound: 5, Outbound: 0}, series[0].Row)
	assert.Equal(t, mergedRow{Period: "2024-02", Inbound: 2, Outbound: 4}, series[1].Row)
	// Bucket absent from every source is an all-zero row, not a hole.
	assert.Equal(t, mergedRow{Period: "2024-03"}, series[2].Row)
}

func TestRows(t *testing.T) {
	series := Fill([]string{"2024", "2025"}, nil, zeroTrend)
	rows := Rows(series)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024", rows[0].Period)
	assert.Equal(t, "2025", rows[1].Period)
}
