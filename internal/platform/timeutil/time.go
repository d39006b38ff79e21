// Package timeutil holds the timestamp layouts shared by logs and responses.
package timeutil

import "time"

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision, used in response bodies.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used in log entries.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// FormatMillis renders t in UTC using RFC3339Millis.
func FormatMillis(t time.Time) string {
	return t.UTC().Format(RFC3339Millis)
}
