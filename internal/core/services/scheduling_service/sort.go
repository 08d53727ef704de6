package scheduling_service

import "github.com/minhanhng/salon-availability/internal/core/domain"

type EntrySlice []domain.AvailabilityEntry

// quickSort orders entries by ascending priority. The three-way
// partition keeps the original relative order of equal priorities, so
// entries of the same rank come out in roster order.
func (s EntrySlice) quickSort() EntrySlice {
	if len(s) < 2 {
		return s
	}

	pivot := s[len(s)/2]

	less := EntrySlice{}
	equal := EntrySlice{}
	greater := EntrySlice{}

	for _, entry := range s {
		if entry.Priority < pivot.Priority {
			less = append(less, entry)
		} else if entry.Priority == pivot.Priority {
			equal = append(equal, entry)
		} else {
			greater = append(greater, entry)
		}
	}

	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}
