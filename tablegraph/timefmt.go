package tablegraph

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// momentTokens ordered so longer tokens match before their prefixes.
var momentTokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"dddd", "ddd",
	"DD", "D",
	"HH", "H", "hh", "h",
	"mm", "m",
	"ss", "s",
	"SSS", "SS", "S",
	"A", "a",
}

// FormatTime renders t with a moment style format. Text inside square
// brackets is copied literally. TimeFormatCustom renders RFC3339.
func FormatTime(t time.Time, format TimeFormat) string {
	if format == TimeFormatCustom || format == "" {
		return t.Format(time.RFC3339)
	}

	f := string(format)
	var b strings.Builder
	for i := 0; i < len(f); {
		if f[i] == '[' {
			if end := strings.IndexByte(f[i+1:], ']'); end >= 0 {
				b.WriteString(f[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}
		tok := matchToken(f[i:])
		if tok == "" {
			b.WriteByte(f[i])
			i++
			continue
		}
		b.WriteString(renderToken(t, tok))
		i += len(tok)
	}
	return b.String()
}

func matchToken(s string) string {
	for _, tok := range momentTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func renderToken(t time.Time, tok string) string {
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return fmt.Sprintf("%d", int(t.Month()))
	case "dddd":
		return t.Weekday().String()
	case "ddd":
		return t.Weekday().String()[:3]
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return fmt.Sprintf("%d", t.Day())
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return fmt.Sprintf("%d", t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t))
	case "h":
		return fmt.Sprintf("%d", hour12(t))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return fmt.Sprintf("%d", t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return fmt.Sprintf("%d", t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "SS":
		return fmt.Sprintf("%02d", t.Nanosecond()/(10*int(time.Millisecond)))
	case "S":
		return fmt.Sprintf("%d", t.Nanosecond()/(100*int(time.Millisecond)))
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	}
	return tok
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// ParseTimestamp accepts RFC3339 (with or without fractional seconds) or an
// integer epoch in milliseconds, which is what the query backend emits.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts, true
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}
