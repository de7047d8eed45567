package reservation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2023-04-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC), got)

	for _, input := range []string{"", "15-04-2023", "2023-13-01", "2023-04-15T10:00:00Z", "not-a-date"} {
		_, err := ParseDate(input)
		assert.True(t, errors.Is(err, ErrInvalidDate), "input %q", input)
	}
}

func TestDayBoundaries(t *testing.T) {
	in := time.Date(2023, 4, 15, 13, 37, 42, 123456789, time.UTC)

	start := StartOfDayUTC(in)
	assert.Equal(t, time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC), start)

	end := EndOfDayUTC(in)
	assert.Equal(t, time.Date(2023, 4, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)

	// Non-UTC input is evaluated on its UTC calendar day.
	nyc := time.FixedZone("EST", -5*60*60)
	late := time.Date(2023, 4, 15, 22, 0, 0, 0, nyc) // 2023-04-16 03:00 UTC
	assert.Equal(t, time.Date(2023, 4, 16, 0, 0, 0, 0, time.UTC), StartOfDayUTC(late))
}

func TestOverlaps(t *testing.T) {
	from := StartOfDayUTC(day("2023-04-10"))
	to := EndOfDayUTC(day("2023-04-20"))

	cases := []struct {
		name  string
		rFrom time.Time
		rTo   time.Time
		want  bool
	}{
		{"inside", StartOfDayUTC(day("2023-04-12")), EndOfDayUTC(day("2023-04-14")), true},
		{"straddles start", StartOfDayUTC(day("2023-04-05")), EndOfDayUTC(day("2023-04-10")), true},
		{"straddles end", StartOfDayUTC(day("2023-04-20")), EndOfDayUTC(day("2023-04-25")), true},
		{"covers whole range", StartOfDayUTC(day("2023-04-01")), EndOfDayUTC(day("2023-04-30")), true},
		{"identical", from, to, true},
		{"touches start boundary", StartOfDayUTC(day("2023-04-01")), from, true},
		{"touches end boundary", to, EndOfDayUTC(day("2023-04-30")), true},
		{"before", StartOfDayUTC(day("2023-04-01")), EndOfDayUTC(day("2023-04-09")), false},
		{"after", StartOfDayUTC(day("2023-04-21")), EndOfDayUTC(day("2023-04-30")), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(from, to, tc.rFrom, tc.rTo))
		})
	}
}

func TestNormalizePeriod(t *testing.T) {
	p, err := normalizePeriod("2023-04-10", "2023-04-20")
	require.NoError(t, err)
	require.NotNil(t, p.RentedFrom)
	require.NotNil(t, p.RentedTo)
	assert.Equal(t, StartOfDayUTC(day("2023-04-10")), *p.RentedFrom)
	assert.Equal(t, EndOfDayUTC(day("2023-04-20")), *p.RentedTo)

	p, err = normalizePeriod("", "2023-04-20")
	require.NoError(t, err)
	assert.Nil(t, p.RentedFrom)
	require.NotNil(t, p.RentedTo)

	p, err = normalizePeriod("", "")
	require.NoError(t, err)
	assert.Nil(t, p.RentedFrom)
	assert.Nil(t, p.RentedTo)

	_, err = normalizePeriod("bad", "")
	assert.True(t, errors.Is(err, ErrInvalidDate))
}
