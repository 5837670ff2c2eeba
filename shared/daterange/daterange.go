package daterange

import "time"

const dayDuration = 24 * time.Hour

// Midnight truncates a time to local midnight, discarding any time component.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Nights returns the number of nights between two dates. Both inputs are
// normalized to midnight first, so values carrying time components still
// produce whole nights.
func Nights(checkin, checkout time.Time) int {
	diff := Midnight(checkout).Sub(Midnight(checkin))

	nights := int(diff / dayDuration)
	if diff%dayDuration > 0 {
		nights++
	}

	return nights
}

// Overlaps reports whether two date ranges overlap using half-open interval
// semantics: a checkout on day X does not conflict with a checkin on day X.
// The same rule backs the occupancy query on the reservations table.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}
