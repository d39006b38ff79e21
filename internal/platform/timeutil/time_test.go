package timeutil

import (
	"testing"
	"time"
)

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"truncates nanoseconds", time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC), "2024-01-15T10:30:00.123Z"},
		{"pads zero millis", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), "2024-01-15T10:30:00.000Z"},
		{"converts to UTC", time.Date(2024, 1, 15, 12, 30, 0, 0, time.FixedZone("EET", 2*60*60)), "2024-01-15T10:30:00.000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMillis(tt.input); got != tt.want {
				t.Fatalf("FormatMillis() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLayoutsParseBack(t *testing.T) {
	if _, err := time.Parse(RFC3339Millis, "2024-06-15T10:30:45.123Z"); err != nil {
		t.Fatalf("RFC3339Millis parse: %v", err)
	}
	if _, err := time.Parse(RFC3339Micros, "2024-06-15T10:30:45.123456Z"); err != nil {
		t.Fatalf("RFC3339Micros parse: %v", err)
	}
}
