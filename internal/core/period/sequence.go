package period

import "time"

// Sequence returns every bucket key between r.Start and r.End inclusive, in
// chronological order, one entry per bucket, no duplicates. The first key is
// r.Start's bucket and the last is r.End's bucket. A range whose start falls
// after its end yields an empty sequence: Resolve deliberately does not
// reorder user-supplied endpoints, so this case is reachable and must not
// error.
func Sequence(r Range, g Granularity) []string {
	cursor := truncate(r.Start, g)
	limit := truncate(r.End, g)
	if cursor.After(limit) {
		return nil
	}

	var keys []string
	for !cursor.After(limit) {
		keys = append(keys, Key(cursor, g))
		cursor = next(cursor, g)
	}
	return keys
}

// Count returns the number of buckets Sequence would produce.
func Count(r Range, g Granularity) int {
	return len(Sequence(r, g))
}

func truncate(t time.Time, g Granularity) time.Time {
	switch g {
	case Daily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	}
}

func next(t time.Time, g Granularity) time.Time {
	switch g {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Monthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(1, 0, 0)
	}
}
