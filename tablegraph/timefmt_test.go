package tablegraph

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	ts := time.Date(2018, time.September, 5, 15, 4, 7, 123_000_000, time.UTC)

	tests := []struct {
		format TimeFormat
		want   string
	}{
		{TimeFormatDefault, "09/05/2018 15:04:07.12"},
		{"MM/DD/YYYY HH:mm", "09/05/2018 15:04"},
		{"MM/DD/YYYY", "09/05/2018"},
		{"h:mm:ss A", "3:04:07 PM"},
		{"h:mm A", "3:04 PM"},
		{"MMMM D, YYYY", "September 5, 2018"},
		{"MMMM D, YYYY h:mm A", "September 5, 2018 3:04 PM"},
		{"dddd, MMMM D, YYYY h:mm A", "Wednesday, September 5, 2018 3:04 PM"},
		{"YY-M-D ddd MMM hh:m:s.SSS a", "18-9-5 Wed Sep 03:4:7.123 pm"},
		{"[at] HH[h]", "at 15h"},
		{TimeFormatCustom, "2018-09-05T15:04:07Z"},
	}
	for _, tt := range tests {
		if got := FormatTime(ts, tt.format); got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatTime_MidnightIsTwelveAM(t *testing.T) {
	ts := time.Date(2020, time.January, 1, 0, 30, 0, 0, time.UTC)
	if got := FormatTime(ts, "h:mm A"); got != "12:30 AM" {
		t.Fatalf("got %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	if ts, ok := ParseTimestamp("2018-09-05T15:04:07.5Z"); !ok || ts.Nanosecond() != 500_000_000 {
		t.Fatalf("RFC3339 parse failed: %v %v", ts, ok)
	}
	if ts, ok := ParseTimestamp("1536159847000"); !ok || ts.Unix() != 1536159847 {
		t.Fatalf("epoch ms parse failed: %v %v", ts, ok)
	}
	if _, ok := ParseTimestamp("yesterday"); ok {
		t.Fatal("expected failure")
	}
	if _, ok := ParseTimestamp("  "); ok {
		t.Fatal("expected failure for blank")
	}
}
