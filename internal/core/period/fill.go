package period

// Entry pairs one bucket key with its (observed or zero-filled) row.
type Entry[T any] struct {
	Key string
	Row T
}

// Fill produces a complete ordered series over expectedKeys. Keys present in
// observed keep their row unchanged; absent keys get a fresh row from zero,
// which must populate the bucket key field and leave every other field at a
// well-defined default so consumers never see partial records. Output length
// and order equal expectedKeys exactly.
//
// Pure in-memory transform: no I/O, no retries. A panicking zero factory
// propagates to the caller.
func Fill[T any](expectedKeys []string, observed map[string]T, zero func(key string) T) []Entry[T] {
	series := make([]Entry[T], 0, len(expectedKeys))
	for _, key := range expectedKeys {
		row, ok := observed[key]
		if !ok {
			row = zero(key)
		}
		series = append(series, Entry[T]{Key: key, Row: row})
	}
	return series
}

// FillMerged builds the series from multiple independently aggregated
// sources keyed by the same buckets (e.g. receipts and issues computed by
// separate GROUP BY queries). Every bucket starts from zero(key); each
// source closure then writes its own fields into the row when it has data
// for that key, and leaves them untouched otherwise. A key present in one
// source and absent from another therefore carries the present source's
// values alongside the other's zero defaults, never nulls or omissions.
func FillMerged[T any](expectedKeys []string, zero func(key string) T, sources ...func(key string, row *T)) []Entry[T] {
	series := make([]Entry[T], 0, len(expectedKeys))
	for _, key := range expectedKeys {
		row := zero(key)
		for _, apply := range sources {
			apply(key, &row)
		}
		series = append(series, Entry[T]{Key: key, Row: row})
	}
	return series
}

// Rows flattens a series into its row values, preserving order. Handy for
// JSON responses that carry the key inside each row.
func Rows[T any](series []Entry[T]) []T {
	rows := make([]T, len(series))
	for i, e := range series {
		rows[i] = e.Row
	}
	return rows
}
