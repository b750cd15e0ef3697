package todos

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// maxDeadlineMillis is the largest magnitude a JS Date accepts
const maxDeadlineMillis = 8.64e15

var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// parseDeadline accepts an RFC 3339 timestamp, a date or zone-less date-time
// (read as UTC), or a number of milliseconds since the Unix epoch.
// The result always falls within years 0 to 9999 so it can be encoded.
func parseDeadline(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, ErrInvalidDeadline
	}

	if raw[0] != '"' {
		var ms float64
		if err := json.Unmarshal(raw, &ms); err != nil {
			return time.Time{}, ErrInvalidDeadline
		}
		if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxDeadlineMillis {
			return time.Time{}, ErrInvalidDeadline
		}
		return checkYear(time.UnixMilli(int64(ms)).UTC())
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, ErrInvalidDeadline
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return checkYear(t.UTC())
		}
	}
	return time.Time{}, ErrInvalidDeadline
}

func checkYear(t time.Time) (time.Time, error) {
	if y := t.Year(); y < 0 || y > 9999 {
		return time.Time{}, ErrInvalidDeadline
	}
	return t, nil
}
