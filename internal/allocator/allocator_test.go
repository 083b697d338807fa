package allocator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rapidpark/internal/db"
)

var base = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func at(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

func taken(spot, startHour, endHour int) db.SpotInterval {
	return db.SpotInterval{SpotNumber: spot, StartTime: at(startHour), EndTime: at(endHour)}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(at(0), at(2), at(1), at(3)))
	assert.True(t, Overlaps(at(1), at(3), at(0), at(2)))
	assert.True(t, Overlaps(at(0), at(4), at(1), at(2)))
	assert.True(t, Overlaps(at(0), at(2), at(0), at(2)))

	// Half-open: touching at a boundary is not an overlap.
	assert.False(t, Overlaps(at(0), at(2), at(2), at(4)))
	assert.False(t, Overlaps(at(2), at(4), at(0), at(2)))
	assert.False(t, Overlaps(at(0), at(1), at(3), at(4)))
}

func TestFirstFreeEmptyLot(t *testing.T) {
	assert.Equal(t, 1, FirstFree(50, at(0), at(2), nil))
}

func TestFirstFreeSkipsConflictingSpots(t *testing.T) {
	existing := []db.SpotInterval{
		taken(1, 0, 2),
		taken(2, 1, 3),
	}
	assert.Equal(t, 3, FirstFree(3, at(0), at(2), existing))
}

func TestFirstFreeReusesLowestFreedSpot(t *testing.T) {
	existing := []db.SpotInterval{
		taken(2, 0, 2),
		taken(3, 0, 2),
	}
	assert.Equal(t, 1, FirstFree(3, at(1), at(3), existing))
}

func TestFirstFreeBackToBackSharesSpot(t *testing.T) {
	existing := []db.SpotInterval{taken(1, 0, 2)}
	assert.Equal(t, 1, FirstFree(1, at(2), at(4), existing))
}

func TestFirstFreeFullLot(t *testing.T) {
	existing := []db.SpotInterval{
		taken(1, 0, 2),
		taken(2, 0, 2),
	}
	assert.Equal(t, 0, FirstFree(2, at(1), at(3), existing))
}

func TestFirstFreeDeterministic(t *testing.T) {
	existing := []db.SpotInterval{
		taken(1, 0, 2),
		taken(3, 0, 2),
	}
	first := FirstFree(5, at(1), at(3), existing)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FirstFree(5, at(1), at(3), existing))
	}
	assert.Equal(t, 2, first)
}
