package reservation

// guard.go holds the in-process half of the conflict guard: the overlap
// predicate over a set of active reservations. It mirrors the SQL predicate
// (existing.start < new.end AND existing.end > new.start, status in PENDING,
// CONFIRMED) used by the creation-time check, and the exclusion constraint
// that arbitrates confirmation. Application-level checking alone cannot close
// the confirmation race across independent connections, so this side is
// advisory; the constraint is the final arbiter.

import "github.com/google/uuid"

// ActiveSlot is the minimal projection the guard needs from an existing
// reservation.
type ActiveSlot struct {
	ReservationID uuid.UUID
	Slot          TimeSlot
	Status        Status
}

// FindConflicts returns the active reservations overlapping the candidate
// slot, excluding the reservation being updated (uuid.Nil for creations).
func FindConflicts(existing []ActiveSlot, candidate TimeSlot, excludeID uuid.UUID) []ActiveSlot {
	var conflicts []ActiveSlot
	for _, e := range existing {
		if e.ReservationID == excludeID {
			continue
		}
		if !e.Status.IsActive() {
			continue
		}
		if e.Slot.Overlaps(candidate) {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

// ConfirmedOverlapExists reports a violation of the central invariant: two
// CONFIRMED reservations with overlapping half-open intervals.
func ConfirmedOverlapExists(existing []ActiveSlot) bool {
	for i := range existing {
		if existing[i].Status != StatusConfirmed {
			continue
		}
		for j := i + 1; j < len(existing); j++ {
			if existing[j].Status != StatusConfirmed {
				continue
			}
			if existing[i].Slot.Overlaps(existing[j].Slot) {
				return true
			}
		}
	}
	return false
}
