// internal/money/money.go
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedAmount is returned by ParseCents for input that is not a
// currency string produced by FormatCents.
var ErrMalformedAmount = errors.New("malformed currency amount")

// FormatCents renders an integer cent amount as a display string,
// e.g. 1050 -> "$10.50" and 123456789 -> "$1,234,567.89".
func FormatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

// ParseCents is the inverse of FormatCents. It accepts an optional leading
// minus and dollar sign and optional thousands separators.
func ParseCents(s string) (int, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	dollars, centsPart, ok := strings.Cut(s, ".")
	if !ok || len(centsPart) != 2 || dollars == "" {
		return 0, ErrMalformedAmount
	}

	d, err := strconv.Atoi(dollars)
	if err != nil || d < 0 {
		return 0, ErrMalformedAmount
	}
	c, err := strconv.Atoi(centsPart)
	if err != nil || c < 0 {
		return 0, ErrMalformedAmount
	}

	total := d*100 + c
	if neg {
		total = -total
	}
	return total, nil
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
