package timeutil

import (
	"time"
)

// WIB is Western Indonesia Time (UTC+7). Report dates and "today" are
// resolved in this zone.
var WIB *time.Location

func init() {
	var err error
	WIB, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// Fallback when tzdata is not installed
		WIB = time.FixedZone("WIB", 7*60*60)
	}
}

// nowFunc is swapped in tests to pin the clock.
var nowFunc = time.Now

// Now returns the current time in WIB
func Now() time.Time {
	return nowFunc().In(WIB)
}

// SetClock overrides the clock and returns a function restoring it.
func SetClock(fn func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}

// ToWIB converts any time to WIB
func ToWIB(t time.Time) time.Time {
	return t.In(WIB)
}

// ParseDate parses a YYYY-MM-DD string as the start of that day in WIB.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, WIB)
}

// FormatDate formats t as YYYY-MM-DD in WIB.
func FormatDate(t time.Time) string {
	return t.In(WIB).Format(DateLayout)
}

// StartOfDay returns 00:00:00 in WIB for the given time
func StartOfDay(t time.Time) time.Time {
	w := t.In(WIB)
	return time.Date(w.Year(), w.Month(), w.Day(), 0, 0, 0, 0, WIB)
}

// EndOfDay returns 23:59:59.999999999 in WIB for the given time
func EndOfDay(t time.Time) time.Time {
	w := t.In(WIB)
	return time.Date(w.Year(), w.Month(), w.Day(), 23, 59, 59, 999999999, WIB)
}

// SameDay reports whether a and b fall on the same WIB calendar day.
func SameDay(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}

const (
	DateLayout     = "2006-01-02"
	CompactLayout  = "20060102"
	DateTimeLayout = "2006-01-02 15:04:05"
)
