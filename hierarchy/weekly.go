// Package hierarchy - calendar roll-up helper.
//
// ResampleWeekly is independent of tree topology: it only re-buckets the
// time axis of long-format rows before Build sees them.

package hierarchy

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ResampleWeekly rolls rows of arbitrary granularity up to week-ending
// buckets, summing the value within each bucket per distinct tag
// combination. Weeks end on Sunday; a row's bucket timestamp is the
// midnight (UTC) of the Sunday on or after the observation.
//
// Output rows are sorted by bucket time, then by tag combination
// (lexicographic), so the result is deterministic regardless of input
// order. Returns ErrNoRows for empty input and ErrRaggedRows when rows
// disagree on tag count.
func ResampleWeekly(rows []Row) ([]Row, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	k := len(rows[0].Tags)

	type bucket struct {
		t    time.Time
		tags []string
	}
	sums := make(map[string]float64)
	meta := make(map[string]bucket)

	for i, r := range rows {
		if len(r.Tags) != k {
			return nil, fmt.Errorf("row %d has %d tags, want %d: %w", i, len(r.Tags), k, ErrRaggedRows)
		}
		we := weekEnding(r.Time)
		key := we.Format(time.RFC3339) + "\x00" + strings.Join(r.Tags, "\x00")
		sums[key] += r.Value
		if _, ok := meta[key]; !ok {
			meta[key] = bucket{t: we, tags: r.Tags}
		}
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	// RFC3339 sorts chronologically for UTC timestamps, and the NUL
	// separator keeps tag ordering lexicographic within a bucket.
	sort.Strings(keys)

	out := make([]Row, 0, len(keys))
	for _, key := range keys {
		b := meta[key]
		out = append(out, Row{
			Time:  b.t,
			Tags:  append([]string(nil), b.tags...),
			Value: sums[key],
		})
	}

	return out, nil
}

// weekEnding maps t to the midnight UTC of the Sunday on or after it.
// A timestamp already on a Sunday stays in that week.
func weekEnding(t time.Time) time.Time {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	ahead := (7 - int(day.Weekday())) % 7 // Sunday == 0 → stay

	return day.AddDate(0, 0, ahead)
}
