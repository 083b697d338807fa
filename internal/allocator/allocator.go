package allocator

import (
	"time"

	"rapidpark/internal/db"
)

// Overlaps reports whether two half-open intervals share elapsed time.
// Touching at a boundary instant is not an overlap, so back-to-back
// reservations on the same spot are fine.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FirstFree scans spots 1..capacity in ascending order and returns the first
// spot with no confirmed interval overlapping [start, end). Returns 0 when
// every spot conflicts. The ascending order is part of the contract: it
// decides which spot a caller is told about, so the same reservation set and
// candidate interval always yield the same answer.
//
// The linear scan is fine at tens of spots; a per-spot sorted interval
// structure would keep the same first-fit contract if capacity ever grows.
func FirstFree(capacity int, start, end time.Time, existing []db.SpotInterval) int {
	takenBySpot := make(map[int][]db.SpotInterval, len(existing))
	for _, iv := range existing {
		takenBySpot[iv.SpotNumber] = append(takenBySpot[iv.SpotNumber], iv)
	}

	for spot := 1; spot <= capacity; spot++ {
		free := true
		for _, iv := range takenBySpot[spot] {
			if Overlaps(start, end, iv.StartTime, iv.EndTime) {
				free = false
				break
			}
		}
		if free {
			return spot
		}
	}
	return 0
}
