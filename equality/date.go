package equality

import (
	"cmp"

	"github.com/cespare/xxhash/v2"
	"github.com/rickb777/date/v2"
)

// Date returns the calendar-day policy for date.Date values: two dates are
// equal iff they name the same day, ordered chronologically, hashed over the
// underlying day number.
func Date() HashingOrderingEquality[date.Date] {
	return &dateByDay{}
}

type dateByDay struct {
	_ instanceToken
}

func (dd *dateByDay) AreEqual(a date.Date, b any) bool {
	bd, ok := b.(date.Date)
	return ok && a == bd
}

func (dd *dateByDay) HashOf(a date.Date) uint64 {
	return xxhash.Sum64String(a.String())
}

func (dd *dateByDay) Compare(a, b date.Date) int {
	return cmp.Compare(a, b)
}
