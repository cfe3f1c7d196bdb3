package utils

import (
	"math"
	"strings"
	"time"

	"github.com/username/orderlens/src/logger"
)

const (
	// DayFormat renders date-only fields, DateTimeFormat renders fields
	// carrying a time-of-day component. Both match the source locale.
	DayFormat      = "02/01/2006"
	DateTimeFormat = "02/01/2006 15:04:05"
	MonthFormat    = "01/2006"
)

// Explicit string layouts, tried in order. Day-first layouts come before
// month-first so ambiguous strings resolve as dd/MM; non-padded verbs
// accept single-digit day/month/hour variants. time.Parse rejects
// rolled-over dates (e.g. 31/04) with "day out of range", so no separate
// reconstruction check is needed.
var dateLayouts = []string{
	"2/1/2006 15:4:5",
	"2/1/2006",
	"2006-1-2 15:4:5",
	"2006-1-2",
	"1/2/2006 15:4:5",
	"1/2/2006",
}

// Generic ISO-8601 fallback layouts, tried only after every explicit
// layout has failed.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate converts a raw cell value into a wall-clock time. It tries,
// in order: native time values, spreadsheet serial numbers, explicit
// string layouts, then a generic ISO-8601 parse. The second return is
// false when nothing matched; callers must treat that as "unparseable",
// never as the zero time.
func ParseDate(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case float64:
		return fromSerial(v)
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, true
			}
		}
		for _, layout := range isoLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, true
			}
		}
		if logger.L != nil {
			logger.L.Debug("Unparseable date string", "value", s)
		}
		return time.Time{}, false
	case nil:
		return time.Time{}, false
	default:
		if logger.L != nil {
			logger.L.Debug("Unsupported raw date type", "value", raw)
		}
		return time.Time{}, false
	}
}

// fromSerial decodes a spreadsheet serial day count anchored at
// 1899-12-30. Serials above 59 are decremented by one day to compensate
// for the nonexistent 29/02/1900 the format counts. The result is built
// from wall-clock fields in local time so the calendar date and
// time-of-day match the serial regardless of zone.
func fromSerial(serial float64) (time.Time, bool) {
	if serial <= 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	adjusted := serial
	if serial > 59 {
		adjusted--
	}
	days := math.Floor(adjusted)
	secs := int(math.Round((adjusted - days) * 86400))
	d := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.Local).AddDate(0, 0, int(days))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, secs, 0, time.Local), true
}

// FormatDay renders a date as dd/MM/yyyy; zero time renders empty.
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DayFormat)
}

// FormatDateTime renders a date as dd/MM/yyyy HH:mm:ss; zero time
// renders empty.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeFormat)
}

// FormatMonth renders the MM/yyyy bucket key of a date.
func FormatMonth(t time.Time) string {
	return t.Format(MonthFormat)
}

// ParseDayString parses a strict dd/MM/yyyy string (as used by custom
// date-range parameters). Unlike ParseDate it fails rather than falling
// back to other layouts.
func ParseDayString(s string) (time.Time, error) {
	return time.ParseInLocation("2/1/2006", strings.TrimSpace(s), time.Local)
}
