// Package duration parses the compact expiration syntax used by Pastery,
// e.g. "5m", "2d", "1mo".
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	minute = time.Minute
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
	month  = 4 * week // fixed 28 days, not a calendar month
	year   = 365 * day

	// Max is the longest accepted expiration, inclusive.
	Max = 100 * year
)

// units maps a unit suffix to its base span. Matching is case-sensitive
// and exact; the whole non-digit tail of the input is the unit token.
var units = map[string]time.Duration{
	"m":  minute,
	"h":  hour,
	"d":  day,
	"w":  week,
	"mo": month,
	"y":  year,
}

var (
	// ErrMissingUnit is returned when the input has no unit suffix.
	ErrMissingUnit = errors.New("did not find a unit, expected one of m, h, d, w, mo, y")
	// ErrUnknownUnit is returned when the unit suffix is not recognised.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrTooLong is returned when the duration exceeds Max.
	ErrTooLong = errors.New("duration too long")
)

// Parse converts a string like "90m" or "2w" into a time.Duration.
//
// The input is a run of ASCII digits followed by one of the units
// m, h, d, w, mo or y ("mo" is a fixed 28 days). The result is capped at
// 100 years; exactly "100y" is still accepted.
func Parse(s string) (time.Duration, error) {
	split := len(s)
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			split = i
			break
		}
	}
	if split == len(s) {
		return 0, ErrMissingUnit
	}

	amountStr, unit := s[:split], s[split:]

	amount, err := strconv.ParseUint(amountStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", amountStr, err)
	}

	base, ok := units[unit]
	if !ok {
		return 0, fmt.Errorf("%w %s, expected one of m, h, d, w, mo, y", ErrUnknownUnit, unit)
	}

	// amount fits in uint32, so the multiply overflows only for int64
	if amount != 0 && base > math.MaxInt64/time.Duration(amount) {
		return 0, fmt.Errorf("%w: duration %s is too long; maximum duration is 100y", ErrTooLong, s)
	}

	d := time.Duration(amount) * base
	if d > Max {
		return 0, fmt.Errorf("%w: duration %s is too long; maximum duration is 100y", ErrTooLong, s)
	}
	return d, nil
}

// Minutes returns d as a whole number of minutes, rounded down. This is
// the representation the Pastery API expects in the duration parameter.
func Minutes(d time.Duration) int64 {
	return int64(d / time.Minute)
}
