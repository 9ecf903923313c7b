package schedule

import (
	"repairbook/internal/domain/booking"
)

// CountOverlapping counts busy intervals that overlap the query slot
// under strict half-open semantics. The busy set is expected to contain
// only active (new/confirmed/done) appointments; capacity is global
// across every device/repair combination, so no filtering by resource
// happens here.
func CountOverlapping(busy []booking.TimeSlot, query booking.TimeSlot) int {
	count := 0
	for _, b := range busy {
		if b.Overlaps(query) {
			count++
		}
	}
	return count
}

// HasCapacity reports whether one more appointment fits into the query
// interval without exceeding the ceiling.
func HasCapacity(busy []booking.TimeSlot, query booking.TimeSlot, ceiling int) bool {
	return CountOverlapping(busy, query) < ceiling
}
