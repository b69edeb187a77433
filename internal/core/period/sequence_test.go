package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dateRange(from, to string) Range {
	start, _ := time.Parse(DateLayout, from)
	end, _ := time.Parse(DateLayout, to)
	return newRange(start, end)
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name string
		rng  Range
		g    Granularity
		want []string
	}{
		{"daily three days", dateRange("2024-03-01", "2024-03-03"), Daily,
			[]string{"2024-03-01", "2024-03-02", "2024-03-03"}},
		{"daily single day", dateRange("2024-03-01", "2024-03-01"), Daily,
			[]string{"2024-03-01"}},
		{"daily across month end", dateRange("2024-02-28", "2024-03-01"), Daily,
			[]string{"2024-02-28", "2024-02-29", "2024-03-01"}},
		{"monthly mid-month endpoints truncate", dateRange("2024-01-15", "2024-03-10"), Monthly,
			[]string{"2024-01", "2024-02", "2024-03"}},
		{"monthly across year end", dateRange("2023-11-20", "2024-02-01"), Monthly,
			[]string{"2023-11", "2023-12", "2024-01", "2024-02"}},
		{"yearly", dateRange("2022-06-01", "2024-01-01"), Yearly,
			[]string{"2022", "2023", "2024"}},
		{"end before start is empty", dateRange("2024-05-10", "2024-05-01"), Daily, nil},
		{"same bucket despite reversed days", dateRange("2024-05-10", "2024-05-01"), Monthly,
			[]string{"2024-05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sequence(tt.rng, tt.g)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(got), Count(tt.rng, tt.g))
		})
	}
}

func TestSequence_StrictlyIncreasingAndUnique(t *testing.T) {
	rng := dateRange("2023-12-25", "2024-02-05")
	for _, g := range Granularities() {
		keys := Sequence(rng, g)
		seen := make(map[string]bool, len(keys))
		for i, k := range keys {
			if seen[k] {
				t.Fatalf("%s: duplicate key %q", g, k)
			}
			seen[k] = true
			if i > 0 && keys[i-1] >= k {
				// Zero-padded keys sort lexicographically in chronological order.
				t.Fatalf("%s: keys not strictly increasing: %q >= %q", g, keys[i-1], k)
			}
		}
	}
}
