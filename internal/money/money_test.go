package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$3.00", FormatCents(300))
	assert.Equal(t, "$10.50", FormatCents(1050))
	assert.Equal(t, "$6.42", FormatCents(642))
	assert.Equal(t, "$1,234,567.89", FormatCents(123456789))
	assert.Equal(t, "-$2.50", FormatCents(-250))
}

func TestParseCents(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int
	}{
		{"$0.00", 0},
		{"$6.42", 642},
		{"$1,234,567.89", 123456789},
		{"-$2.50", -250},
		{"10.50", 1050},
	} {
		got, err := ParseCents(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseCentsMalformed(t *testing.T) {
	for _, in := range []string{"", "$", "abc", "$1", "$1.2", "$1.234", "$x.00"} {
		_, err := ParseCents(in)
		assert.ErrorIs(t, err, ErrMalformedAmount, in)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.IntRange(-1_000_000_00, 1_000_000_00).Draw(t, "cents")
		got, err := ParseCents(FormatCents(cents))
		if err != nil {
			t.Fatalf("parse back %q: %v", FormatCents(cents), err)
		}
		if got != cents {
			t.Fatalf("round trip mismatch: %d -> %q -> %d", cents, FormatCents(cents), got)
		}
	})
}
