package reservation

import (
	"fmt"
	"time"

	"roomify/models"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}

// StartOfDayUTC returns 00:00:00.000 UTC on t's UTC calendar day.
// Time-of-day in the input is discarded.
func StartOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns 23:59:59.999 UTC on t's UTC calendar day.
func EndOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

// Overlaps reports whether the stored interval [rFrom, rTo] shares at
// least one instant with the candidate [from, to]. All bounds are
// inclusive: a stored interval touching the candidate at a day boundary
// counts as overlapping. The same three-clause disjunction backs the
// Mongo filters, so the two must be kept in sync.
func Overlaps(from, to, rFrom, rTo time.Time) bool {
	if within(rFrom, from, to) || within(rTo, from, to) {
		return true
	}
	return rFrom.Before(from) && rTo.After(to)
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// normalizePeriod turns optional YYYY-MM-DD bounds into a day-boundary
// period. Either bound may be empty.
func normalizePeriod(rentedFrom, rentedTo string) (models.ReservationPeriod, error) {
	var p models.ReservationPeriod
	if rentedFrom != "" {
		d, err := ParseDate(rentedFrom)
		if err != nil {
			return p, err
		}
		from := StartOfDayUTC(d)
		p.RentedFrom = &from
	}
	if rentedTo != "" {
		d, err := ParseDate(rentedTo)
		if err != nil {
			return p, err
		}
		to := EndOfDayUTC(d)
		p.RentedTo = &to
	}
	return p, nil
}
