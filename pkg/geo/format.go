package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatFixed renders a scaled-integer degree value as a decimal string
// with exactly six fraction digits, e.g. FormatFixed(-180000000) returns
// "-180.000000". The widest valid value fills the full 11-character form
// including sign and decimal point.
func FormatFixed(value int32) string {
	var buf [11]byte
	v := int64(value)
	minus := v < 0
	if minus {
		v = -v
	}

	i := len(buf) - 1
	for n := 0; n < 6; n++ {
		buf[i] = byte('0' + v%10)
		v /= 10
		i--
	}
	buf[i] = '.'
	i--
	for {
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
		i--
	}
	if minus {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ParseFixed parses a decimal degree string back into its scaled-integer
// form. It accepts the output of FormatFixed exactly: up to six fraction
// digits, no precision is lost.
func ParseFixed(s string) (int32, error) {
	rest := s
	neg := false
	switch {
	case strings.HasPrefix(rest, "-"):
		neg = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(rest, ".")
	if intPart == "" || (hasFrac && (fracPart == "" || len(fracPart) > 6)) {
		return 0, fmt.Errorf("geo: malformed fixed-point value %q", s)
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("geo: malformed fixed-point value %q: %w", s, err)
	}

	var frac int64
	if hasFrac {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("geo: malformed fixed-point value %q: %w", s, err)
		}
		for i := len(fracPart); i < 6; i++ {
			frac *= 10
		}
	}

	v := whole*Precision + frac
	if neg {
		v = -v
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("geo: fixed-point value %q out of range", s)
	}
	return int32(v), nil
}

// String returns the coordinate as a comma-joined "lon,lat" pair in
// fixed-point decimal form.
func (c Coordinate) String() string {
	return FormatFixed(c.Lon) + "," + FormatFixed(c.Lat)
}

// ReversedString returns the coordinate as a "lat,lon" pair.
func (c Coordinate) ReversedString() string {
	return FormatFixed(c.Lat) + "," + FormatFixed(c.Lon)
}
