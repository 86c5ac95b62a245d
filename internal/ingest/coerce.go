package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// serialEpoch is day zero of spreadsheet serial dates (the 1899-12-30
// convention, which absorbs the old Lotus leap-year bug).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// SerialToTime converts a serial day count to an absolute timestamp. The
// fractional part is the elapsed share of the day.
func SerialToTime(serial float64) time.Time {
	days := math.Floor(serial)
	frac := serial - days
	secs := math.Round(frac * 86400)
	return serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
}

// ParseDate parses a calendar date and normalizes it to date precision.
// It returns nil when no layout matches.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// coerceField converts one raw CSV cell per the field kind. The second return
// reports whether the field counts as present: empty cells and failed numeric
// or serial-date parses make the row invalid. An unparseable nullable date is
// the one exception: it is kept as an explicit NULL and the row stays valid.
func coerceField(f Field, raw string) (any, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	switch f.Kind {
	case KindInt:
		return parseInt(raw)
	case KindSerialTime:
		serial, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return SerialToTime(serial), true
	case KindNullableDate:
		d := ParseDate(raw)
		if d == nil {
			return (*time.Time)(nil), true
		}
		return d, true
	default:
		return raw, true
	}
}

// parseInt accepts plain integers and decimal strings, truncating the latter
// the way spreadsheet exports expect ("150.75" feeds an integer column as 150).
func parseInt(s string) (any, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(fl), true
	}
	return nil, false
}
