package bridge

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// timestampLayout is the canonical wire format of timestamps.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// offsetLayouts are the well-formed timestamp layouts accepted by
// ParseTimestamp. Fractional seconds of any precision are accepted by
// time.Parse after the seconds field.
var offsetLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
}

// FormatTimestamp returns the wire representation of t: RFC 3339 in
// UTC, with exactly three fractional digits.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp parses a wire timestamp.
//
// Timestamps with a "Z" suffix or a numeric UTC offset are parsed as
// RFC 3339. Some native sources emit malformed timestamps, so
// anything else falls back to taking the numeric runs between the
// "-", "T", ":", "." and "Z" separators as the year, month, day,
// hour, minute and second, in UTC. Missing fields default to the
// start of their range, and anything after the seconds is
// ignored. ParseTimestamp returns an error only if no numeric year
// can be found.
//
// The returned time is in UTC, truncated to millisecond precision.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Millisecond), nil
		}
	}

	parts := splitTimestamp(s)
	year, ok := leadingInt(parts[0])
	if !ok {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: no numeric date", s)
	}
	field := func(i, def int) int {
		if i >= len(parts) {
			return def
		}
		if n, ok := leadingInt(parts[i]); ok {
			return n
		}
		return def
	}
	ret := time.Date(year, time.Month(field(1, 1)), field(2, 1), field(3, 0), field(4, 0), field(5, 0), 0, time.UTC)
	return ret, nil
}

// splitTimestamp splits s on timestamp field separators. Empty
// fields are preserved.
func splitTimestamp(s string) []string {
	var ret []string
	start := 0
	for i, r := range s {
		if strings.ContainsRune("-T:.Z", r) {
			ret = append(ret, s[start:i])
			start = i + 1
		}
	}
	return append(ret, s[start:])
}

// leadingInt returns the value of the decimal digits at the start of
// s.
func leadingInt(s string) (int, bool) {
	n, i := 0, 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1e9 {
			return 0, false
		}
	}
	return n, i > 0
}

func newTimestampConverter() *converter {
	return &converter{
		Kind: KindString,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			return FormatTimestamp(v.Interface().(time.Time)), nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			s, ok := wire.(string)
			if !ok {
				return kindErr(KindString, wire)
			}
			t, err := ParseTimestamp(s)
			if err != nil {
				return err
			}
			v.Set(reflect.ValueOf(t))
			return nil
		},
	}
}
