package entity

import "time"

// TimestampLayout is the fixed-width local time format stored in TEXT columns.
// Values sort lexicographically in chronological order.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in local time using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
