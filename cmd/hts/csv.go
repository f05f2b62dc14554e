package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/hts/hierarchy"
)

// timeLayouts are tried in order when parsing the time column.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// readRows loads a long-format CSV: a header row, then one observation per
// line with the time first, 1..4 tag columns in the middle, and the
// numeric value last.
func readRows(path string) ([]hierarchy.Row, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s: need a header row and at least one observation", path)
	}

	header := records[0]
	if len(header) < 3 {
		return nil, nil, fmt.Errorf("%s: need at least time, one tag, and value columns", path)
	}
	tagNames := header[1 : len(header)-1]

	rows := make([]hierarchy.Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, nil, fmt.Errorf("%s line %d: %d fields, header has %d", path, i+2, len(rec), len(header))
		}
		ts, err := parseTime(rec[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		v, err := strconv.ParseFloat(rec[len(rec)-1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: value %q: %w", path, i+2, rec[len(rec)-1], err)
		}
		rows = append(rows, hierarchy.Row{
			Time:  ts,
			Tags:  append([]string(nil), rec[1:len(rec)-1]...),
			Value: v,
		})
	}

	return rows, tagNames, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable time %q", s)
}

// defaultLevels assigns tag columns to levels in CSV order.
func defaultLevels(tagCount int) []int {
	levels := make([]int, tagCount)
	for i := range levels {
		levels[i] = i + 1
	}

	return levels
}
