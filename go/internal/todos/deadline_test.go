package todos

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"date only", `"2025-01-01"`, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2025-01-01T10:30:00Z"`, time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 millis", `"2025-01-01T10:30:00.250Z"`, time.Date(2025, 1, 1, 10, 30, 0, 250_000_000, time.UTC)},
		{"rfc3339 offset", `"2025-01-01T12:00:00+02:00"`, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"no zone", `"2025-01-01T08:15:00"`, time.Date(2025, 1, 1, 8, 15, 0, 0, time.UTC)},
		{"no seconds", `"2025-01-01T08:15"`, time.Date(2025, 1, 1, 8, 15, 0, 0, time.UTC)},
		{"epoch millis", `1735689600000`, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"epoch zero", `0`, time.Unix(0, 0).UTC()},
		{"negative millis", `-1`, time.Date(1969, 12, 31, 23, 59, 59, 999_000_000, time.UTC)},
		{"fractional millis truncate", `1.9`, time.UnixMilli(1).UTC()},
		{"negative fractional truncate", `-1.9`, time.UnixMilli(-1).UTC()},
		{"exponent notation", `1.7356896e12`, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"first millisecond of year 0", `-62167219200000`, time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"last millisecond of year 9999", `253402300799999`, time.Date(9999, 12, 31, 23, 59, 59, 999_000_000, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDeadline(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDeadlineInvalid(t *testing.T) {
	for _, raw := range []string{
		``, `null`, `"tomorrow"`, `"2025-13-01"`, `true`, `{}`,
		`1e15`,
		`-1e15`,
		`253402300800000`,
		`-62167219200001`,
		`8640000000000001`,
		`-8640000000000001`,
		`1e19`,
		`-1e19`,
		`1e400`,
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := parseDeadline(json.RawMessage(raw))
			assert.ErrorIs(t, err, ErrInvalidDeadline)
		})
	}
}
